// Package ioformat reads event-list files and writes the analysis
// pipeline's summary, out-component-size, weakly-component-size, and
// real-vs-estimate output files.
package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	apperrors "github.com/temponet/pkg/errors"

	"github.com/temponet/internal/temporal"
)

// Kind selects which Event variant an event-list file's rows construct.
type Kind int

const (
	// KindUndirected reads "u v t" rows into temporal.Undirected events.
	KindUndirected Kind = iota
	// KindDirected reads "u v t" rows into temporal.Directed events.
	KindDirected
	// KindDirectedDelayed reads "u v t delay" rows into
	// temporal.DirectedDelayed events.
	KindDirectedDelayed
)

// ReadEvents parses an event-list file at path: one event per line,
// whitespace-separated fields, blank lines and lines starting with '#'
// ignored. Self-loop rows (u == v) are silently dropped, matching how the
// format has always treated them. kind selects whether each row has 3
// fields (u v t) or 4 (u v t delay).
func ReadEvents(path string, kind Kind) ([]temporal.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUsageError, "opening event list", err)
	}
	defer f.Close()

	events, err := ParseEvents(f, kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(events) == 0 {
		return nil, apperrors.ErrEmptyFile
	}
	return events, nil
}

// ParseEvents is ReadEvents' line-parsing core, split out so callers (and
// tests) can feed it an arbitrary io.Reader.
func ParseEvents(r io.Reader, kind Kind) ([]temporal.Event, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var events []temporal.Event
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		e, ok, err := parseLine(line, kind)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CodeParseError,
				fmt.Sprintf("line %d: %s", lineNo, line), err)
		}
		if !ok {
			continue // self-loop, dropped
		}
		events = append(events, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeParseError, "reading event list", err)
	}
	return events, nil
}

func parseLine(line string, kind Kind) (temporal.Event, bool, error) {
	fields := strings.Fields(line)

	wantFields := 3
	if kind == KindDirectedDelayed {
		wantFields = 4
	}
	if len(fields) != wantFields {
		return nil, false, fmt.Errorf("expected %d fields, got %d", wantFields, len(fields))
	}

	v1, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return nil, false, fmt.Errorf("bad v1: %w", err)
	}
	v2, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return nil, false, fmt.Errorf("bad v2: %w", err)
	}
	if v1 == v2 {
		return nil, false, nil
	}

	t, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return nil, false, fmt.Errorf("bad t: %w", err)
	}

	switch kind {
	case KindUndirected:
		return temporal.NewUndirected(temporal.Vertex(v1), temporal.Vertex(v2), temporal.Time(t)), true, nil
	case KindDirected:
		return temporal.NewDirected(temporal.Vertex(v1), temporal.Vertex(v2), temporal.Time(t)), true, nil
	case KindDirectedDelayed:
		delay, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, false, fmt.Errorf("bad delay: %w", err)
		}
		return temporal.NewDirectedDelayed(temporal.Vertex(v1), temporal.Vertex(v2), temporal.Time(t), temporal.Time(delay)), true, nil
	default:
		return nil, false, fmt.Errorf("unknown event kind %d", kind)
	}
}
