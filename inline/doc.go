/*
Package inline tokenizes the inline content of a markdown block.

The tokenizer performs a single left-to-right pass over a byte range
and emits an ordered sequence of styled runs: plain text, style
delimiters, links, footnote references, inline math, autolinks,
entities, escapes, emoji and heading ids. Emphasis nesting is tracked
on a bounded stack whose entries pre-bind their close position at open
time, which keeps greedy bracket matching unambiguous.

Emitted runs are contiguous and exhaustive: concatenating their byte
ranges in order reconstructs exactly the tokenized range.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2025-26, the tidemark authors

Please refer to the License file in the repository root.
*/
package inline

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
