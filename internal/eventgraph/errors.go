package eventgraph

import "errors"

var (
	// ErrInvalidDt is returned by New when dt is not positive.
	ErrInvalidDt = errors.New("eventgraph: dt must be positive")
	// ErrSelfLoop is returned by New when an input event's two endpoints
	// coincide; event list readers are expected to have already dropped
	// these.
	ErrSelfLoop = errors.New("eventgraph: self-loop event")
	// ErrDuplicateEvent is returned by New when two input events compare
	// equal under Less, violating the graph's no-duplicate-events
	// invariant.
	ErrDuplicateEvent = errors.New("eventgraph: duplicate event")
)
