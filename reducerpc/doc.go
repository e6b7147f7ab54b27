// Package reducerpc exposes a composed reducer as a stateless connect RPC.
//
// The service has a single unary procedure, Reduce, whose request and
// response are google.protobuf.Struct messages:
//
//	request:  {"state": <value>, "action": {"type": "INC", "payload": <value>}}
//	response: {"state": <value>}
//
// The server holds no state between calls; callers send the current state and
// receive the next one. State and payload must be representable as Struct
// values (nil, bool, numbers, strings, map[string]any, []any). Numbers arrive
// on the other side as float64.
//
//	mux := http.NewServeMux()
//	mux.Handle(reducerpc.NewHandler(combined))
//
//	client := reducerpc.NewClient(http.DefaultClient, "http://localhost:8080")
//	next, err := client.Reduce(ctx, state, reduction.Action{Type: "INC"})
package reducerpc
