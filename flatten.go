package reduction

import (
	"context"
	"fmt"
	"slices"

	"github.com/tailored-agentic-units/reduction/path"
)

// Pair is a reducer bound to its mount path.
type Pair struct {
	Path   path.Path
	invoke invoker
}

// call invokes the reducer, converting a panic or a returned error into a
// *FaultError.
func (p Pair) call(ctx context.Context, state any, action Action) (next any, err error) {
	defer func() {
		if r := recover(); r != nil {
			next, err = nil, newPanicFault(p.Path, r)
		}
	}()

	next, err = p.invoke(ctx, state, action)
	if err != nil {
		return nil, &FaultError{Path: p.Path, Err: err}
	}
	return next, nil
}

// Flatten expands declarations into dispatch pairs in declaration order, each
// mounted relative to the root.
func Flatten(decls ...any) ([]Pair, error) {
	var pairs []Pair
	for _, decl := range decls {
		found, err := flatten(decl, path.Path{})
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, found...)
	}
	return pairs, nil
}

func flatten(decl any, base path.Path) ([]Pair, error) {
	d := classify(decl)

	switch d.kind {
	case kindEmpty:
		return nil, nil
	case kindFunction:
		return []Pair{{Path: base, invoke: d.invoke}}, nil
	case kindMap:
		var pairs []Pair
		for _, entry := range d.entries {
			found, err := flatten(entry.Declaration, base.Append(entry.Key))
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, found...)
		}
		return pairs, nil
	default:
		return nil, &DeclarationError{
			Path: slices.Clone(base),
			Type: fmt.Sprintf("%T", decl),
		}
	}
}
