package search

import (
	"github.com/temponet/internal/counter"
	"github.com/temponet/internal/sketch"
)

// Measure selects which of a counter's two sketches the largest
// out-component search optimises for.
type Measure int

const (
	// MeasureEvents ranks candidates by out-component event count.
	MeasureEvents Measure = iota
	// MeasureNodes ranks candidates by out-component distinct-vertex count.
	MeasureNodes
)

func (m Measure) of(c *counter.Counter) sketch.Sketch {
	if m == MeasureNodes {
		return c.Nodes()
	}
	return c.Events()
}

func (m Measure) String() string {
	if m == MeasureNodes {
		return "nodes"
	}
	return "events"
}
