/*
Package highlight colorizes code-block content for terminal display.

It wraps chroma's lexer/formatter pipeline behind the document model's
Highlighter interface. Highlighting is best-effort: unknown languages
and tokenizer failures degrade to the plain source text.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2025-26, the tidemark authors

Please refer to the License file in the repository root.
*/
package highlight

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
