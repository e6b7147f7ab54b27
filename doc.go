// Package reduction composes independent reducers into a single reducer over
// a hierarchical state value.
//
// Reducers are declared either as bare functions, which operate on the whole
// state, or as maps from keys to further declarations, which mount reducers at
// locations inside the state tree:
//
//	root := reduction.MustCombine(
//	    reduction.Map{
//	        reduction.Mount("counter", counter),
//	        reduction.Mount("session", reduction.Map{
//	            reduction.Mount("user", user),
//	        }),
//	    },
//	    reset,
//	)
//	next := root(state, reduction.Action{Type: "INC"})
//
// # Composition
//
// Declarations are flattened once, at construction, into an ordered list of
// Pairs. A pair holds the mount path and the reducer. Order follows argument
// order and, within a Map, entry order. Plain map[string]any declarations have
// no inherent order and are flattened by sorted key. Nil declarations
// contribute nothing, which allows optional mounting:
//
//	reduction.Combine(base, maybeDebug) // maybeDebug may be nil
//
// Any other declaration is a programming error and fails composition with a
// *DeclarationError naming the offending type and path.
//
// # Dispatch
//
// Each call applies every pair in order. A pair reads its sub-state with
// path.Get, invokes the reducer and, when the result is not path.Same as the
// input, writes it back with path.Set. Writes never mutate the input state and
// untouched branches are shared. When no reducer changes anything the returned
// state is the input state.
//
// A reducer that panics or, for FallibleReducer, returns an error is isolated:
// the fault is reported to the observer as EventReducerFault with the mount
// path, that pair's contribution is dropped for this action, and dispatch
// continues. The composed reducer itself never panics because of a child.
//
// # Concurrency
//
// The pair list is fixed after construction, so a composed reducer can be
// called from any number of goroutines as long as the mounted reducers are
// themselves safe to call concurrently.
package reduction
