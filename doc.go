/*
Package tidemark is the document model of a terminal markdown editor.

The model couples four layers, leaves first:

▪︎ a gap-buffer text store (package buffer) with grapheme- and
width-aware iteration,

▪︎ grammar detectors (package syntax): pure functions which recognize
markdown constructs at exact byte positions,

▪︎ an inline tokenizer (package inline) emitting ordered styled runs,

▪︎ and, in this package, the block parser, the per-block virtual-row
layout, and binary-search position indices.

Data flows one way: buffer → block parser → inline tokenizer → layout →
position queries. A Document owns all of it.

Virtual rows

A virtual row (vrow) is one visually wrapped terminal row. Every block
knows its starting vrow and its row count, computed for the current
wrap width: headers scale with their font size, images derive rows from
their pixel aspect ratio, code blocks count literal lines, tables wrap
per cell, everything else packs grapheme clusters greedily. Cursor
placement and viewport scrolling both run on the same per-type row
arithmetic, so they can never desynchronize from what is rendered.

Consistency model

The model is single-threaded and synchronous. Every structural edit
invalidates the block cache; the next read triggers a full reparse of
the whole buffer. This is deliberately simple: documents are bounded
(≈1MB) and a linear pass is cheap compared to the bookkeeping of
incremental reparsing. External services (image sizing, math
rendering, code highlighting) are called synchronously and their
results cached per block for the lifetime of one parse generation.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2025-26, the tidemark authors

Please refer to the License file in the repository root.
*/
package tidemark

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// DocError is an error type for the tidemark module.
type DocError string

func (e DocError) Error() string {
	return string(e)
}

// ErrInvalidCache signals a query against a cache which has been
// invalidated and not reparsed. Queries return sentinel values in that
// case; this error is only used by operations that must refuse to run.
const ErrInvalidCache = DocError("block cache is invalid; reparse required")
