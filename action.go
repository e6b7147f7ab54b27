package reduction

import "context"

// Action is the input to a dispatch. Only Type is meaningful to composition;
// Payload is passed through to reducers untouched.
type Action struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// Reducer maps a sub-state and an action to the next sub-state. The sub-state
// is nil when nothing exists at the reducer's mount path yet; supplying an
// initial value is the reducer's responsibility. Returning the input unchanged
// signals that nothing changed.
type Reducer func(state any, action Action) any

// FallibleReducer is a Reducer that reports failure as an error instead of
// panicking. A non-nil error drops the result for that action.
type FallibleReducer func(state any, action Action) (any, error)

type invoker func(ctx context.Context, state any, action Action) (any, error)

func (r Reducer) invoker() invoker {
	return func(_ context.Context, state any, action Action) (any, error) {
		return r(state, action), nil
	}
}

func (r FallibleReducer) invoker() invoker {
	return func(_ context.Context, state any, action Action) (any, error) {
		return r(state, action)
	}
}
