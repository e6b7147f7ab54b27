package reduction

import "github.com/tailored-agentic-units/reduction/observability"

const (
	EventCompose          observability.EventType = "reduction.compose"
	EventDispatchStart    observability.EventType = "reduction.dispatch.start"
	EventDispatchComplete observability.EventType = "reduction.dispatch.complete"
	EventReducerFault     observability.EventType = "reduction.reducer.fault"
	EventMergeFault       observability.EventType = "reduction.merge.fault"
)
