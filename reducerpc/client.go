package reducerpc

import (
	"context"
	"strings"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/tailored-agentic-units/reduction"
)

// Client calls a remote Reduce procedure.
type Client struct {
	reduce *connect.Client[structpb.Struct, structpb.Struct]
}

// NewClient creates a Client for the server at baseURL.
func NewClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *Client {
	return &Client{
		reduce: connect.NewClient[structpb.Struct, structpb.Struct](
			httpClient,
			strings.TrimRight(baseURL, "/")+ReduceProcedure,
			opts...,
		),
	}
}

// Reduce sends state and action to the server and returns the next state.
func (c *Client) Reduce(ctx context.Context, state any, action reduction.Action) (any, error) {
	msg, err := encodeRequest(state, action)
	if err != nil {
		return nil, err
	}

	res, err := c.reduce.CallUnary(ctx, connect.NewRequest(msg))
	if err != nil {
		return nil, err
	}
	return decodeResponse(res.Msg), nil
}
