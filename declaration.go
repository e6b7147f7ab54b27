package reduction

import (
	"context"
	"slices"
)

// Entry mounts a declaration under a key.
type Entry struct {
	Key         string
	Declaration any
}

// Mount creates an Entry. decl may be a Reducer, FallibleReducer, a plain
// reducer func, a Map, a map[string]any, a *Combined, or nil.
func Mount(key string, decl any) Entry {
	return Entry{Key: key, Declaration: decl}
}

// Map is an ordered mapping from keys to declarations.
type Map []Entry

type kind int

const (
	kindEmpty kind = iota
	kindFunction
	kindMap
	kindInvalid
)

// declaration is a classified Reducer Declaration.
type declaration struct {
	kind    kind
	invoke  invoker
	entries []Entry
}

func classify(v any) declaration {
	switch d := v.(type) {
	case nil:
		return declaration{kind: kindEmpty}

	case Reducer:
		if d == nil {
			return declaration{kind: kindEmpty}
		}
		return declaration{kind: kindFunction, invoke: d.invoker()}
	case func(any, Action) any:
		if d == nil {
			return declaration{kind: kindEmpty}
		}
		return declaration{kind: kindFunction, invoke: Reducer(d).invoker()}
	case FallibleReducer:
		if d == nil {
			return declaration{kind: kindEmpty}
		}
		return declaration{kind: kindFunction, invoke: d.invoker()}
	case func(any, Action) (any, error):
		if d == nil {
			return declaration{kind: kindEmpty}
		}
		return declaration{kind: kindFunction, invoke: FallibleReducer(d).invoker()}
	case *Combined:
		if d == nil {
			return declaration{kind: kindEmpty}
		}
		return declaration{kind: kindFunction, invoke: func(ctx context.Context, state any, action Action) (any, error) {
			return d.Reduce(ctx, state, action), nil
		}}

	case Map:
		return declaration{kind: kindMap, entries: d}
	case map[string]any:
		return declaration{kind: kindMap, entries: sortedEntries(d)}
	case map[string]Reducer:
		return declaration{kind: kindMap, entries: sortedEntries(d)}

	default:
		return declaration{kind: kindInvalid}
	}
}

func sortedEntries[V any](m map[string]V) []Entry {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	entries := make([]Entry, len(keys))
	for i, k := range keys {
		entries[i] = Entry{Key: k, Declaration: m[k]}
	}
	return entries
}
