package syntax

/*
BSD 3-Clause License

Copyright (c) 2025-26, the tidemark authors

Please refer to the License file in the repository root.
*/

import (
	"golang.org/x/net/html"
)

// Inline-level detectors. All of them are bounded by an end position
// (the owning block's end) and never cross a newline unless stated.

// IsPunct reports whether c is ASCII punctuation (escapable).
func IsPunct(c byte) bool {
	return c >= '!' && c <= '/' ||
		c >= ':' && c <= '@' ||
		c >= '[' && c <= '`' ||
		c >= '{' && c <= '~'
}

// --- Links and footnote references ------------------------------------------

// LinkSpec describes an inline link [text](url "title").
type LinkSpec struct {
	Text  Span
	URL   Span
	Title Span
}

// Link recognizes an inline link starting exactly at pos.
func Link(src Source, pos, end int) (LinkSpec, int, bool) {
	i := pos
	if i >= end || src.ByteAt(i) != '[' {
		return LinkSpec{}, 0, false
	}
	i++
	textStart := i
	depth := 0
	for i < end {
		switch src.ByteAt(i) {
		case '\\':
			i++
		case '\n':
			return LinkSpec{}, 0, false
		case '[':
			depth++
		case ']':
			if depth == 0 {
				goto closed
			}
			depth--
		}
		i++
	}
	return LinkSpec{}, 0, false
closed:
	spec := LinkSpec{Text: Span{textStart, i}}
	i++ // ']'
	if i >= end || src.ByteAt(i) != '(' {
		return LinkSpec{}, 0, false
	}
	i++
	urlStart := i
	for i < end && src.ByteAt(i) != ')' && src.ByteAt(i) != ' ' && src.ByteAt(i) != '\n' {
		i++
	}
	spec.URL = Span{urlStart, i}
	i = skipSpaces(src, i, end)
	if i < end && src.ByteAt(i) == '"' {
		i++
		titleStart := i
		for i < end && src.ByteAt(i) != '"' && src.ByteAt(i) != '\n' {
			i++
		}
		if i >= end || src.ByteAt(i) != '"' {
			return LinkSpec{}, 0, false
		}
		spec.Title = Span{titleStart, i}
		i = skipSpaces(src, i+1, end)
	}
	if i >= end || src.ByteAt(i) != ')' {
		return LinkSpec{}, 0, false
	}
	return spec, i + 1 - pos, true
}

// FootnoteRef recognizes a [^id] footnote reference.
func FootnoteRef(src Source, pos, end int) (Span, int, bool) {
	i := pos
	if i+1 >= end || src.ByteAt(i) != '[' || src.ByteAt(i+1) != '^' {
		return Span{}, 0, false
	}
	i += 2
	idStart := i
	for i < end && isIdentByte(src.ByteAt(i)) {
		i++
	}
	if i == idStart || i >= end || src.ByteAt(i) != ']' {
		return Span{}, 0, false
	}
	// "[^id]:" is a definition, not a reference
	if i+1 < end && src.ByteAt(i+1) == ':' {
		return Span{}, 0, false
	}
	return Span{idStart, i}, i + 1 - pos, true
}

// --- Autolinks ---------------------------------------------------------------

// Autolink recognizes either an angle autolink <scheme:...> / <user@host>
// or a bare http(s) URL. The returned span covers the URL itself.
func Autolink(src Source, pos, end int) (Span, int, bool) {
	if src.ByteAt(pos) == '<' {
		return angleAutolink(src, pos, end)
	}
	return bareAutolink(src, pos, end)
}

func angleAutolink(src Source, pos, end int) (Span, int, bool) {
	i := pos + 1
	urlStart := i
	hasScheme := false
	hasAt := false
	for i < end {
		c := src.ByteAt(i)
		switch {
		case c == '>':
			if i == urlStart || (!hasScheme && !hasAt) {
				return Span{}, 0, false
			}
			return Span{urlStart, i}, i + 1 - pos, true
		case c == ' ' || c == '\n' || c == '<':
			return Span{}, 0, false
		case c == ':' && i+2 < end && src.ByteAt(i+1) == '/' && src.ByteAt(i+2) == '/':
			hasScheme = true
		case c == '@':
			hasAt = true
		}
		i++
	}
	return Span{}, 0, false
}

// bareAutolink matches http:// and https:// URLs in running text,
// trimming trailing punctuation that usually belongs to the sentence.
func bareAutolink(src Source, pos, end int) (Span, int, bool) {
	const h, hs = "http://", "https://"
	var schemeLen int
	switch {
	case matchAt(src, pos, end, hs):
		schemeLen = len(hs)
	case matchAt(src, pos, end, h):
		schemeLen = len(h)
	default:
		return Span{}, 0, false
	}
	i := pos + schemeLen
	for i < end {
		c := src.ByteAt(i)
		if c == ' ' || c == '\n' || c == '\t' || c == '<' || c == '>' {
			break
		}
		i++
	}
	for i > pos+schemeLen {
		switch src.ByteAt(i - 1) {
		case '.', ',', ';', ':', '!', '?', ')', ']', '"', '\'':
			i--
			continue
		}
		break
	}
	if i == pos+schemeLen {
		return Span{}, 0, false
	}
	return Span{pos, i}, i - pos, true
}

func matchAt(src Source, pos, end int, lit string) bool {
	if pos+len(lit) > end {
		return false
	}
	return src.Substring(pos, pos+len(lit)) == lit
}

// --- HTML entities -----------------------------------------------------------

// maxEntityLen bounds the scan for an entity terminator.
const maxEntityLen = 48

// Entity recognizes an HTML entity (&name;, &#N;, &#xH;) and returns
// its decoded replacement. Validation delegates to x/net/html: a
// candidate that UnescapeString leaves unchanged is not an entity.
func Entity(src Source, pos, end int) (decoded string, length int, ok bool) {
	if src.ByteAt(pos) != '&' {
		return "", 0, false
	}
	limit := pos + maxEntityLen
	if limit > end {
		limit = end
	}
	i := pos + 1
	for i < limit && src.ByteAt(i) != ';' {
		c := src.ByteAt(i)
		if c == ' ' || c == '\n' || c == '&' {
			return "", 0, false
		}
		i++
	}
	if i >= limit || i == pos+1 {
		return "", 0, false
	}
	candidate := src.Substring(pos, i+1)
	decoded = html.UnescapeString(candidate)
	if decoded == candidate {
		return "", 0, false
	}
	return decoded, i + 1 - pos, true
}

// --- Inline math --------------------------------------------------------------

// InlineMath recognizes $...$ within one line. The opening $ must not
// be followed by whitespace and the content must be non-empty.
func InlineMath(src Source, pos, end int) (Span, int, bool) {
	i := pos
	if src.ByteAt(i) != '$' || i+1 >= end {
		return Span{}, 0, false
	}
	i++
	if src.ByteAt(i) == ' ' || src.ByteAt(i) == '$' || src.ByteAt(i) == '\n' {
		return Span{}, 0, false
	}
	contentStart := i
	for i < end {
		switch src.ByteAt(i) {
		case '\n':
			return Span{}, 0, false
		case '\\':
			i++
		case '$':
			return Span{contentStart, i}, i + 1 - pos, true
		}
		i++
	}
	return Span{}, 0, false
}

// --- Heading ids ---------------------------------------------------------------

// HeadingID recognizes a {#id} group.
func HeadingID(src Source, pos, end int) (Span, int, bool) {
	i := pos
	if i+1 >= end || src.ByteAt(i) != '{' || src.ByteAt(i+1) != '#' {
		return Span{}, 0, false
	}
	i += 2
	idStart := i
	for i < end && isIdentByte(src.ByteAt(i)) {
		i++
	}
	if i == idStart || i >= end || src.ByteAt(i) != '}' {
		return Span{}, 0, false
	}
	return Span{idStart, i}, i + 1 - pos, true
}

// --- Emoji shortcodes ------------------------------------------------------------

// Emoji recognizes a :shortcode: from the built-in table and returns
// the replacement glyph.
func Emoji(src Source, pos, end int) (glyph string, length int, ok bool) {
	if src.ByteAt(pos) != ':' {
		return "", 0, false
	}
	i := pos + 1
	nameStart := i
	for i < end && (isIdentByte(src.ByteAt(i)) || src.ByteAt(i) == '+') {
		i++
	}
	if i == nameStart || i >= end || src.ByteAt(i) != ':' {
		return "", 0, false
	}
	glyph, found := emojiTable[src.Substring(nameStart, i)]
	if !found {
		return "", 0, false
	}
	return glyph, i + 1 - pos, true
}

// --- Style delimiters ---------------------------------------------------------------

// DelimSpec describes a style delimiter occurrence.
type DelimSpec struct {
	Style  Style
	Length int
}

// Delimiter recognizes a style delimiter starting exactly at pos:
// ** or __ (bold), * or _ (italic), a backtick run (code), ~~ (strike),
// == (highlight).
func Delimiter(src Source, pos int) (DelimSpec, bool) {
	c := src.ByteAt(pos)
	switch c {
	case '`':
		n := runLength(src, pos, '`')
		return DelimSpec{Style: StyleCode, Length: n}, true
	case '*', '_':
		if src.ByteAt(pos+1) == c {
			return DelimSpec{Style: StyleBold, Length: 2}, true
		}
		return DelimSpec{Style: StyleItalic, Length: 1}, true
	case '~':
		if src.ByteAt(pos+1) == '~' {
			return DelimSpec{Style: StyleStrike, Length: 2}, true
		}
	case '=':
		if src.ByteAt(pos+1) == '=' {
			return DelimSpec{Style: StyleHighlight, Length: 2}, true
		}
	}
	return DelimSpec{}, false
}

func runLength(src Source, pos int, c byte) int {
	n := 0
	for pos+n < src.Len() && src.ByteAt(pos+n) == c {
		n++
	}
	return n
}

// FindDelimiterClose scans forward from 'from' for the closer matching
// a delimiter of the given marker byte and length opened before 'from'.
// Escaped characters are skipped; a closer is an exact-length run of
// the same marker (so ** does not close inside ***, and an inline code
// span closes only on a backtick run of the opening length).
// Returns the closer position, or -1.
func FindDelimiterClose(src Source, from, end int, marker byte, length int) int {
	for i := from; i < end; i++ {
		c := src.ByteAt(i)
		if c == '\\' {
			i++
			continue
		}
		if c != marker {
			continue
		}
		run := runLength(src, i, marker)
		if i+run > end {
			run = end - i
		}
		if run == length {
			return i
		}
		i += run - 1
	}
	return -1
}
