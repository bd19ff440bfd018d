package highlight

/*
BSD 3-Clause License

Copyright (c) 2025-26, the tidemark authors

Please refer to the License file in the repository root.
*/

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "monokai"

// DefaultFormatter emits 24-bit ANSI color sequences.
const DefaultFormatter = "terminal16m"

// Chroma highlights code through a chroma lexer/formatter pipeline.
// The zero value is not usable; call New.
type Chroma struct {
	style     *chroma.Style
	formatter chroma.Formatter
}

// New creates a highlighter with the given chroma style name. An
// unknown name falls back to the chroma default style.
func New(styleName string) *Chroma {
	if styleName == "" {
		styleName = DefaultStyle
	}
	sty := styles.Get(styleName)
	fmtr := formatters.Get(DefaultFormatter)
	if fmtr == nil {
		fmtr = formatters.Fallback
	}
	return &Chroma{style: sty, formatter: fmtr}
}

// Highlight colorizes code written in lang. Unknown languages return
// the source unchanged; only formatter failures surface as errors.
func (c *Chroma) Highlight(lang, code string) (string, error) {
	lex := lexers.Get(lang)
	if lex == nil {
		T().Debugf("no lexer for language %q", lang)
		return code, nil
	}
	lex = chroma.Coalesce(lex)
	it, err := lex.Tokenise(nil, code)
	if err != nil {
		return code, err
	}
	var buf strings.Builder
	if err := c.formatter.Format(&buf, c.style, it); err != nil {
		return code, err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
