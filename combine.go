package reduction

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tailored-agentic-units/reduction/config"
	"github.com/tailored-agentic-units/reduction/observability"
	"github.com/tailored-agentic-units/reduction/path"
)

const tracerName = "github.com/tailored-agentic-units/reduction"

// Combined is a composed reducer. It is immutable after construction.
type Combined struct {
	name      string
	pairs     []Pair
	observer  observability.Observer
	silent    bool
	separator string
	tracing   bool
	tracer    trace.Tracer
}

// New composes decls using cfg.
//
// The observer is resolved by name from the observability registry.
//
// Example:
//
//	cfg := config.DefaultReductionConfig("app")
//	cfg.Observer = "noop"
//	combined, err := reduction.New(cfg, reduction.Map{
//	    reduction.Mount("counter", counter),
//	}, reset)
func New(cfg config.ReductionConfig, decls ...any) (*Combined, error) {
	observer, err := observability.GetObserver(cfg.Observer)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve observer: %w", err)
	}
	return NewWithObserver(cfg, observer, decls...)
}

// NewWithObserver composes decls reporting to observer. A nil observer
// discards events.
func NewWithObserver(cfg config.ReductionConfig, observer observability.Observer, decls ...any) (*Combined, error) {
	pairs, err := Flatten(decls...)
	if err != nil {
		return nil, err
	}

	separator := cfg.PathSeparator
	if separator == "" {
		separator = path.DefaultSeparator
	}

	c := &Combined{
		name:      cfg.Name,
		pairs:     pairs,
		observer:  observability.Resolve(observer),
		silent:    observability.Silent(observer),
		separator: separator,
		tracing:   cfg.Tracing(),
		tracer:    otel.Tracer(tracerName),
	}

	mounts := make([]string, len(pairs))
	for i, p := range pairs {
		mounts[i] = displayPath(p.Path, separator)
	}
	c.emit(context.Background(), EventCompose, observability.LevelVerbose, map[string]any{
		"pairs":  len(pairs),
		"mounts": mounts,
	})

	return c, nil
}

// Combine composes decls with the default configuration and returns the
// result as a Reducer, so composed reducers can themselves be mounted.
func Combine(decls ...any) (Reducer, error) {
	c, err := New(config.DefaultReductionConfig(""), decls...)
	if err != nil {
		return nil, err
	}
	return c.Reducer(), nil
}

// MustCombine is like Combine but panics if the declarations are invalid.
func MustCombine(decls ...any) Reducer {
	r, err := Combine(decls...)
	if err != nil {
		panic(err)
	}
	return r
}

// Name returns the configured name.
func (c *Combined) Name() string {
	return c.name
}

// Pairs returns a copy of the dispatch pairs in dispatch order.
func (c *Combined) Pairs() []Pair {
	pairs := make([]Pair, len(c.pairs))
	for i, p := range c.pairs {
		pairs[i] = Pair{Path: slices.Clone(p.Path), invoke: p.invoke}
	}
	return pairs
}

// WithTracerProvider returns a copy of c that opens dispatch spans from tp
// instead of the global provider.
func (c *Combined) WithTracerProvider(tp trace.TracerProvider) *Combined {
	clone := *c
	clone.tracer = tp.Tracer(tracerName)
	return &clone
}

// Reducer returns c as a Reducer.
func (c *Combined) Reducer() Reducer {
	return func(state any, action Action) any {
		return c.Reduce(context.Background(), state, action)
	}
}

// Reduce applies every mounted reducer to its slice of state in order and
// returns the resulting state. Faults are reported and skipped; Reduce does
// not panic on account of a mounted reducer. ctx carries tracing and
// observer context only.
func (c *Combined) Reduce(ctx context.Context, state any, action Action) any {
	if ctx == nil {
		ctx = context.Background()
	}

	var span trace.Span
	if c.tracing {
		ctx, span = c.tracer.Start(ctx, "reduction.dispatch", trace.WithAttributes(
			attribute.String("reduction.name", c.name),
			attribute.String("reduction.action", action.Type),
			attribute.Int("reduction.pairs", len(c.pairs)),
		))
		defer span.End()
	}

	var dispatchID string
	if !c.silent {
		dispatchID = newDispatchID()
	}
	if !c.silent {
		c.emit(ctx, EventDispatchStart, observability.LevelVerbose, map[string]any{
			"dispatch_id": dispatchID,
			"action":      action.Type,
		})
	}

	initial := state
	faults := 0

	for _, pair := range c.pairs {
		current := state
		if !pair.Path.Root() {
			current = path.Lookup(state, pair.Path)
		}

		next, err := pair.call(ctx, current, action)
		if err != nil {
			faults++
			c.fault(ctx, EventReducerFault, dispatchID, action, pair.Path, err)
			continue
		}
		if path.Same(current, next) {
			continue
		}

		updated, err := path.Set(state, pair.Path, next)
		if err != nil {
			faults++
			c.fault(ctx, EventMergeFault, dispatchID, action, pair.Path, err)
			continue
		}
		state = updated
	}

	if span != nil && faults > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%d reducer faults", faults))
	}

	if !c.silent {
		c.emit(ctx, EventDispatchComplete, observability.LevelVerbose, map[string]any{
			"dispatch_id": dispatchID,
			"action":      action.Type,
			"changed":     !path.Same(initial, state),
			"faults":      faults,
		})
	}

	return state
}

func (c *Combined) fault(ctx context.Context, eventType observability.EventType, dispatchID string, action Action, p path.Path, err error) {
	if c.silent {
		return
	}
	mount := displayPath(p, c.separator)

	var message string
	if eventType == EventMergeFault {
		message = fmt.Sprintf("error merging state for reducer mounted at %s", mount)
	} else {
		message = fmt.Sprintf("error in reducer mounted at %s", mount)
	}

	c.emit(ctx, eventType, observability.LevelError, map[string]any{
		"message":     message,
		"path":        mount,
		"error":       err,
		"dispatch_id": dispatchID,
		"action":      action.Type,
	})
}

// newDispatchID returns a UUIDv7, or an empty id when the random source
// fails; dispatch ids are diagnostic only.
func newDispatchID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return ""
	}
	return id.String()
}

func (c *Combined) emit(ctx context.Context, eventType observability.EventType, level observability.Level, data map[string]any) {
	data["name"] = c.name
	c.observer.OnEvent(ctx, observability.Event{
		Type:      eventType,
		Level:     level,
		Timestamp: time.Now(),
		Source:    "reduction",
		Data:      data,
	})
}
