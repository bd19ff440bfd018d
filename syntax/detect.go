package syntax

/*
BSD 3-Clause License

Copyright (c) 2025-26, the tidemark authors

Please refer to the License file in the repository root.
*/

// Block-level detectors. Each one consumes whole lines, through the
// terminating newline where one exists.

// LineEnd returns the position of the newline terminating the line
// containing pos, or src.Len() when the line is unterminated, together
// with the position of the next line start.
func LineEnd(src Source, pos int) (textEnd, next int) {
	n := src.Len()
	i := pos
	for i < n && src.ByteAt(i) != '\n' {
		i++
	}
	if i < n {
		return i, i + 1
	}
	return i, i
}

// IsBlankLine reports whether the line starting at pos holds only
// spaces and tabs.
func IsBlankLine(src Source, pos int) bool {
	textEnd, _ := LineEnd(src, pos)
	for i := pos; i < textEnd; i++ {
		if c := src.ByteAt(i); c != ' ' && c != '\t' {
			return false
		}
	}
	return true
}

func skipSpaces(src Source, pos, end int) int {
	for pos < end && src.ByteAt(pos) == ' ' {
		pos++
	}
	return pos
}

// skipIndent skips up to three leading spaces; four or more spaces put
// a line outside the block grammar handled here.
func skipIndent(src Source, pos, end int) (int, bool) {
	i := skipSpaces(src, pos, end)
	if i-pos >= 4 {
		return pos, false
	}
	return i, true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || isDigit(c) || c == '-' || c == '_'
}

// --- Images ----------------------------------------------------------------

// ImageSpec describes a whole-line image construct
//
//	![alt](path "title" =WxH)
//
// Width/Height follow the size spec: positive values are literal
// columns/rows, a negative Width is a percentage of the wrap width
// (from "=N%"), zero means unspecified.
type ImageSpec struct {
	Alt    Span
	Path   Span
	Title  Span
	Width  int
	Height int
}

// Image recognizes an image block starting exactly at pos. The image
// markup must be the only content of its line.
func Image(src Source, pos int) (ImageSpec, int, bool) {
	textEnd, next := LineEnd(src, pos)
	i := pos
	if i+1 >= textEnd || src.ByteAt(i) != '!' || src.ByteAt(i+1) != '[' {
		return ImageSpec{}, 0, false
	}
	i += 2
	altStart := i
	for i < textEnd && src.ByteAt(i) != ']' {
		if src.ByteAt(i) == '\\' {
			i++
		}
		i++
	}
	if i >= textEnd {
		return ImageSpec{}, 0, false
	}
	spec := ImageSpec{Alt: Span{altStart, i}}
	i++ // ']'
	if i >= textEnd || src.ByteAt(i) != '(' {
		return ImageSpec{}, 0, false
	}
	i = skipSpaces(src, i+1, textEnd)
	pathStart := i
	for i < textEnd && src.ByteAt(i) != ' ' && src.ByteAt(i) != ')' {
		i++
	}
	if i == pathStart {
		return ImageSpec{}, 0, false
	}
	spec.Path = Span{pathStart, i}
	i = skipSpaces(src, i, textEnd)
	if i < textEnd && src.ByteAt(i) == '"' {
		i++
		titleStart := i
		for i < textEnd && src.ByteAt(i) != '"' {
			i++
		}
		if i >= textEnd {
			return ImageSpec{}, 0, false
		}
		spec.Title = Span{titleStart, i}
		i = skipSpaces(src, i+1, textEnd)
	}
	if i < textEnd && src.ByteAt(i) == '=' {
		var ok bool
		i, ok = parseSizeSpec(src, i+1, textEnd, &spec)
		if !ok {
			return ImageSpec{}, 0, false
		}
		i = skipSpaces(src, i, textEnd)
	}
	if i >= textEnd || src.ByteAt(i) != ')' {
		return ImageSpec{}, 0, false
	}
	if skipSpaces(src, i+1, textEnd) != textEnd {
		return ImageSpec{}, 0, false // trailing content: not a standalone image
	}
	return spec, next - pos, true
}

// parseSizeSpec parses "W", "WxH" or "N%" after the '=' of a size spec.
func parseSizeSpec(src Source, i, end int, spec *ImageSpec) (int, bool) {
	start := i
	for i < end && isDigit(src.ByteAt(i)) {
		i++
	}
	if i == start {
		return i, false
	}
	v := atoi(src, start, i)
	if i < end && src.ByteAt(i) == '%' {
		if v > 100 {
			v = 100
		}
		spec.Width = -v
		return i + 1, true
	}
	spec.Width = v
	if i < end && src.ByteAt(i) == 'x' {
		i++
		hStart := i
		for i < end && isDigit(src.ByteAt(i)) {
			i++
		}
		if i == hStart {
			return i, false
		}
		spec.Height = atoi(src, hStart, i)
	}
	return i, true
}

func atoi(src Source, i, j int) int {
	v := 0
	for ; i < j; i++ {
		v = v*10 + int(src.ByteAt(i)-'0')
		if v > 1<<20 {
			return 1 << 20
		}
	}
	return v
}

// --- Fenced code blocks ----------------------------------------------------

// FenceSpec describes a fenced code block. Lang is the trimmed info
// string; Content covers the lines between the fences.
type FenceSpec struct {
	Lang    Span
	Content Span
}

// Fence recognizes a fenced code block (backtick or tilde fences of
// length >= 3). An unterminated fence runs to the end of the buffer.
func Fence(src Source, pos int) (FenceSpec, int, bool) {
	textEnd, next := LineEnd(src, pos)
	i, ok := skipIndent(src, pos, textEnd)
	if !ok {
		return FenceSpec{}, 0, false
	}
	if i >= textEnd {
		return FenceSpec{}, 0, false
	}
	marker := src.ByteAt(i)
	if marker != '`' && marker != '~' {
		return FenceSpec{}, 0, false
	}
	runStart := i
	for i < textEnd && src.ByteAt(i) == marker {
		i++
	}
	runLen := i - runStart
	if runLen < 3 {
		return FenceSpec{}, 0, false
	}
	infoStart := skipSpaces(src, i, textEnd)
	infoEnd := textEnd
	for infoEnd > infoStart && src.ByteAt(infoEnd-1) == ' ' {
		infoEnd--
	}
	spec := FenceSpec{Lang: Span{infoStart, infoEnd}}
	contentStart := next
	lp := next
	n := src.Len()
	for lp < n {
		le, ln := LineEnd(src, lp)
		if isClosingFence(src, lp, le, marker, runLen) {
			spec.Content = Span{contentStart, lp}
			return spec, ln - pos, true
		}
		lp = ln
	}
	spec.Content = Span{contentStart, n}
	return spec, n - pos, true
}

func isClosingFence(src Source, pos, textEnd int, marker byte, minLen int) bool {
	i, ok := skipIndent(src, pos, textEnd)
	if !ok {
		return false
	}
	runStart := i
	for i < textEnd && src.ByteAt(i) == marker {
		i++
	}
	if i-runStart < minLen {
		return false
	}
	return skipSpaces(src, i, textEnd) == textEnd
}

// --- Block math ------------------------------------------------------------

// MathSpec describes a display-math block delimited by $$.
type MathSpec struct {
	Content Span
}

// MathBlock recognizes a $$-delimited math block, either single-line
// ($$e=mc^2$$) or spanning lines until a line holding only $$.
// An unterminated block runs to the end of the buffer.
func MathBlock(src Source, pos int) (MathSpec, int, bool) {
	textEnd, next := LineEnd(src, pos)
	i, ok := skipIndent(src, pos, textEnd)
	if !ok {
		return MathSpec{}, 0, false
	}
	if i+1 >= textEnd || src.ByteAt(i) != '$' || src.ByteAt(i+1) != '$' {
		return MathSpec{}, 0, false
	}
	i += 2
	// single-line form: closing $$ on the same line
	for j := i; j+1 < textEnd; j++ {
		if src.ByteAt(j) == '$' && src.ByteAt(j+1) == '$' {
			if skipSpaces(src, j+2, textEnd) != textEnd {
				return MathSpec{}, 0, false
			}
			return MathSpec{Content: Span{i, j}}, next - pos, true
		}
	}
	if skipSpaces(src, i, textEnd) != textEnd {
		return MathSpec{}, 0, false // opening $$ must stand alone in multi-line form
	}
	contentStart := next
	lp := next
	n := src.Len()
	for lp < n {
		le, ln := LineEnd(src, lp)
		j := skipSpaces(src, lp, le)
		if j+1 < le && src.ByteAt(j) == '$' && src.ByteAt(j+1) == '$' &&
			skipSpaces(src, j+2, le) == le {
			return MathSpec{Content: Span{contentStart, lp}}, ln - pos, true
		}
		lp = ln
	}
	return MathSpec{Content: Span{contentStart, n}}, n - pos, true
}

// --- Horizontal rules ------------------------------------------------------

// Rule recognizes a thematic break: three or more of the same marker
// from -, * or _, optionally separated by spaces, alone on the line.
func Rule(src Source, pos int) (int, bool) {
	textEnd, next := LineEnd(src, pos)
	i, ok := skipIndent(src, pos, textEnd)
	if !ok {
		return 0, false
	}
	if i >= textEnd {
		return 0, false
	}
	marker := src.ByteAt(i)
	if marker != '-' && marker != '*' && marker != '_' {
		return 0, false
	}
	count := 0
	for ; i < textEnd; i++ {
		switch src.ByteAt(i) {
		case marker:
			count++
		case ' ', '\t':
		default:
			return 0, false
		}
	}
	if count < 3 {
		return 0, false
	}
	return next - pos, true
}

// --- ATX headers -----------------------------------------------------------

// HeaderSpec describes an ATX or setext header. Content excludes the
// marker prefix, trailing spaces and a trailing {#id} span.
type HeaderSpec struct {
	Level   int
	Content Span
	ID      Span
}

// ATXHeader recognizes a #-prefixed header of level 1-6 with an
// optional trailing {#id} heading id.
func ATXHeader(src Source, pos int) (HeaderSpec, int, bool) {
	textEnd, next := LineEnd(src, pos)
	i, ok := skipIndent(src, pos, textEnd)
	if !ok {
		return HeaderSpec{}, 0, false
	}
	level := 0
	for i < textEnd && src.ByteAt(i) == '#' {
		level++
		i++
	}
	if level == 0 || level > 6 {
		return HeaderSpec{}, 0, false
	}
	if i < textEnd && src.ByteAt(i) != ' ' && src.ByteAt(i) != '\t' {
		return HeaderSpec{}, 0, false
	}
	i = skipSpaces(src, i, textEnd)
	spec := HeaderSpec{Level: level}
	contentEnd := textEnd
	if id, idStart, ok := trailingHeadingID(src, i, textEnd); ok {
		spec.ID = id
		contentEnd = idStart
	}
	for contentEnd > i && src.ByteAt(contentEnd-1) == ' ' {
		contentEnd--
	}
	spec.Content = Span{i, contentEnd}
	return spec, next - pos, true
}

// trailingHeadingID matches a {#id} group ending the line (ignoring
// trailing spaces) and returns the id span plus the '{' position.
func trailingHeadingID(src Source, start, textEnd int) (Span, int, bool) {
	j := textEnd
	for j > start && src.ByteAt(j-1) == ' ' {
		j--
	}
	if j <= start || src.ByteAt(j-1) != '}' {
		return Span{}, 0, false
	}
	idEnd := j - 1
	k := idEnd
	for k > start && isIdentByte(src.ByteAt(k-1)) {
		k--
	}
	if k == idEnd || k < start+2 {
		return Span{}, 0, false
	}
	if src.ByteAt(k-1) != '#' || src.ByteAt(k-2) != '{' {
		return Span{}, 0, false
	}
	return Span{k, idEnd}, k - 2, true
}

// SetextUnderline recognizes a line of two or more '=' or '-'
// characters (and nothing else) and returns the header level it
// implies: 1 for '=', 2 for '-'.
func SetextUnderline(src Source, pos int) (level, length int, ok bool) {
	textEnd, next := LineEnd(src, pos)
	i, ok := skipIndent(src, pos, textEnd)
	if !ok {
		return 0, 0, false
	}
	if i >= textEnd {
		return 0, 0, false
	}
	marker := src.ByteAt(i)
	if marker != '=' && marker != '-' {
		return 0, 0, false
	}
	count := 0
	for i < textEnd && src.ByteAt(i) == marker {
		count++
		i++
	}
	if count < 2 || skipSpaces(src, i, textEnd) != textEnd {
		return 0, 0, false
	}
	if marker == '=' {
		return 1, next - pos, true
	}
	return 2, next - pos, true
}

// --- Footnote definitions --------------------------------------------------

// FootnoteSpec describes a footnote definition "[^id]: text".
type FootnoteSpec struct {
	ID      Span
	Content Span // first-line content; continuation is the parser's concern
}

// FootnoteDef recognizes a footnote definition line.
func FootnoteDef(src Source, pos int) (FootnoteSpec, int, bool) {
	textEnd, next := LineEnd(src, pos)
	i := pos
	if i+1 >= textEnd || src.ByteAt(i) != '[' || src.ByteAt(i+1) != '^' {
		return FootnoteSpec{}, 0, false
	}
	i += 2
	idStart := i
	for i < textEnd && isIdentByte(src.ByteAt(i)) {
		i++
	}
	if i == idStart || i+1 >= textEnd || src.ByteAt(i) != ']' || src.ByteAt(i+1) != ':' {
		return FootnoteSpec{}, 0, false
	}
	spec := FootnoteSpec{ID: Span{idStart, i}}
	i = skipSpaces(src, i+2, textEnd)
	spec.Content = Span{i, textEnd}
	return spec, next - pos, true
}

// --- Blockquotes -----------------------------------------------------------

// QuoteSpec describes a blockquote prefix. Level counts the '>' marks.
type QuoteSpec struct {
	Level   int
	Content Span // first-line content after the prefix
}

// Blockquote recognizes a '>'-prefixed line. Nested quotes raise the
// level per additional '>' (optionally space-separated).
func Blockquote(src Source, pos int) (QuoteSpec, int, bool) {
	textEnd, next := LineEnd(src, pos)
	i, ok := skipIndent(src, pos, textEnd)
	if !ok {
		return QuoteSpec{}, 0, false
	}
	level := 0
	for i < textEnd && src.ByteAt(i) == '>' {
		level++
		i++
		if i < textEnd && src.ByteAt(i) == ' ' {
			if i+1 < textEnd && src.ByteAt(i+1) == '>' {
				i++
			}
		}
	}
	if level == 0 {
		return QuoteSpec{}, 0, false
	}
	if i < textEnd && src.ByteAt(i) == ' ' {
		i++
	}
	return QuoteSpec{Level: level, Content: Span{i, textEnd}}, next - pos, true
}

// --- List items ------------------------------------------------------------

// ListKind discriminates ordered from unordered list items.
type ListKind int

const (
	ListUnordered ListKind = iota
	ListOrdered
)

// TaskState is the checkbox state of a task-list item.
type TaskState int

const (
	TaskNone TaskState = iota
	TaskOpen
	TaskDone
)

// ListSpec describes a list item marker line.
type ListSpec struct {
	Kind        ListKind
	Indent      int // leading spaces before the marker
	MarkerWidth int // bytes from marker start through the space after it (and task box)
	Ordinal     int // 1-based number for ordered items
	Task        TaskState
	Content     Span // first-line content after marker and task box
}

// ListItem recognizes an ordered, unordered or task list item line.
func ListItem(src Source, pos int) (ListSpec, int, bool) {
	textEnd, next := LineEnd(src, pos)
	i := skipSpaces(src, pos, textEnd)
	indent := i - pos
	if i >= textEnd {
		return ListSpec{}, 0, false
	}
	spec := ListSpec{Indent: indent}
	markerStart := i
	switch c := src.ByteAt(i); {
	case c == '-' || c == '*' || c == '+':
		i++
	case isDigit(c):
		numStart := i
		for i < textEnd && isDigit(src.ByteAt(i)) && i-numStart < 9 {
			i++
		}
		if i >= textEnd || (src.ByteAt(i) != '.' && src.ByteAt(i) != ')') {
			return ListSpec{}, 0, false
		}
		spec.Kind = ListOrdered
		spec.Ordinal = atoi(src, numStart, i)
		i++
	default:
		return ListSpec{}, 0, false
	}
	if i >= textEnd || src.ByteAt(i) != ' ' {
		return ListSpec{}, 0, false
	}
	i++
	// task-list checkbox: "[ ] ", "[x] ", "[X] "
	if i+3 < textEnd && src.ByteAt(i) == '[' && src.ByteAt(i+2) == ']' && src.ByteAt(i+3) == ' ' {
		switch src.ByteAt(i + 1) {
		case ' ':
			spec.Task = TaskOpen
			i += 4
		case 'x', 'X':
			spec.Task = TaskDone
			i += 4
		}
	}
	spec.MarkerWidth = i - markerStart
	spec.Content = Span{i, textEnd}
	return spec, next - pos, true
}
