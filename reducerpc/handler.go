package reducerpc

import (
	"context"
	"fmt"
	"net/http"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/tailored-agentic-units/reduction"
)

// ReduceProcedure is the fully-qualified Reduce procedure path.
const ReduceProcedure = "/reduction.v1.ReductionService/Reduce"

// Reducer is implemented by *reduction.Combined.
type Reducer interface {
	Reduce(ctx context.Context, state any, action reduction.Action) any
}

// ReducerFunc adapts a reduction.Reducer to Reducer.
type ReducerFunc reduction.Reducer

func (f ReducerFunc) Reduce(_ context.Context, state any, action reduction.Action) any {
	return f(state, action)
}

// NewHandler returns the procedure path and handler serving r. A panic
// escaping r, possible only for a bare ReducerFunc, fails the call with
// CodeInternal.
func NewHandler(r Reducer, opts ...connect.HandlerOption) (string, http.Handler) {
	handler := connect.NewUnaryHandler(
		ReduceProcedure,
		func(ctx context.Context, req *connect.Request[structpb.Struct]) (*connect.Response[structpb.Struct], error) {
			state, action, err := decodeRequest(req.Msg)
			if err != nil {
				return nil, connect.NewError(connect.CodeInvalidArgument, err)
			}

			next, err := reduce(ctx, r, state, action)
			if err != nil {
				return nil, connect.NewError(connect.CodeInternal, err)
			}
			msg, err := encodeResponse(next)
			if err != nil {
				return nil, connect.NewError(connect.CodeInternal, err)
			}
			return connect.NewResponse(msg), nil
		},
		opts...,
	)
	return ReduceProcedure, handler
}

func reduce(ctx context.Context, r Reducer, state any, action reduction.Action) (next any, err error) {
	defer func() {
		if p := recover(); p != nil {
			next, err = nil, fmt.Errorf("%w: %v", reduction.ErrReducerPanic, p)
		}
	}()
	return r.Reduce(ctx, state, action), nil
}
