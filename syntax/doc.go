/*
Package syntax provides grammar detectors for terminal markdown.

Detectors are pure functions over a Source: given a byte position, a
detector either fully recognizes a construct starting exactly there and
reports the total consumed length plus structured spans, or it reports
no match. Detectors never have side effects, so callers are free to
probe them speculatively (the block parser tries them in priority order
per line; the inline tokenizer probes them per byte).

Block-level detectors consume whole lines, including the terminating
newline where present. Inline-level detectors operate inside one block
and are bounded by an end position.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2025-26, the tidemark authors

Please refer to the License file in the repository root.
*/
package syntax

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Source is the read-only text access detectors operate on.
// *buffer.Buffer satisfies it.
type Source interface {
	Len() int
	ByteAt(pos int) byte
	Substring(i, j int) string
}

// Span is a byte range [Start,End) into the source.
type Span struct {
	Start int
	End   int
}

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.End <= s.Start
}

// Len returns the span length in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Text extracts the span content from src.
func (s Span) Text(src Source) string {
	return src.Substring(s.Start, s.End)
}

// Style is a bitmask of inline styles toggled by delimiter runs.
type Style uint16

const (
	StyleBold Style = 1 << iota
	StyleItalic
	StyleCode
	StyleStrike
	StyleHighlight
)

// Alignment is a table column alignment taken from the delimiter row.
type Alignment int

const (
	AlignDefault Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)
