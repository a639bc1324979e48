package eventgraph

import "github.com/temponet/internal/temporal"

// Adjacent reports whether b could possibly follow a in the event graph:
// b occurs no earlier than a, and some vertex a mutates is one b reads from.
// This is the structural precondition checked before a's probability
// function and the hash-stable coin flip decide whether the edge actually
// exists.
func Adjacent(a, b temporal.Event) bool {
	if b.Time() < a.Time() {
		return false
	}
	return sharesVertex(a.MutatedVerts(), b.MutatorVerts())
}

func sharesVertex(mutated, mutator []temporal.Vertex) bool {
	for _, v := range mutated {
		for _, u := range mutator {
			if v == u {
				return true
			}
		}
	}
	return false
}
