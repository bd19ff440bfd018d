package syntax

/*
BSD 3-Clause License

Copyright (c) 2025-26, the tidemark authors

Please refer to the License file in the repository root.
*/

// TableSpec describes a pipe table. Cells is a flat row-major slice of
// exactly Rows*Cols trimmed cell spans; row 0 is the header row and the
// delimiter row is not represented (its information lives in Align).
type TableSpec struct {
	Align []Alignment
	Rows  int
	Cols  int
	Cells []Span
}

// MaxTableCells bounds the flat cell allocation of a single table.
// A table that would exceed it does not commit and the span falls back
// to paragraph parsing.
const MaxTableCells = 16384

// Table recognizes a pipe table starting exactly at pos: a header row
// containing '|', a delimiter row of -/: cells, then body rows while
// lines keep containing '|'. The commit is all-or-nothing: either every
// row parses into exactly Cols cells and the spec is returned complete,
// or the detector reports no match.
func Table(src Source, pos int) (TableSpec, int, bool) {
	headEnd, next := LineEnd(src, pos)
	if !lineHasPipe(src, pos, headEnd) {
		return TableSpec{}, 0, false
	}
	if next >= src.Len() {
		return TableSpec{}, 0, false // no room for a delimiter row
	}
	delimEnd, afterDelim := LineEnd(src, next)
	align, ok := parseDelimiterRow(src, next, delimEnd)
	if !ok {
		return TableSpec{}, 0, false
	}
	cols := len(align)
	head := splitRow(src, pos, headEnd, cols)
	if head == nil {
		return TableSpec{}, 0, false
	}
	spec := TableSpec{Align: align, Cols: cols, Rows: 1}
	cells := make([]Span, 0, 4*cols)
	cells = append(cells, head...)
	end := afterDelim
	lp := afterDelim
	n := src.Len()
	for lp < n {
		le, ln := LineEnd(src, lp)
		if !lineHasPipe(src, lp, le) || IsBlankLine(src, lp) {
			break
		}
		row := splitRow(src, lp, le, cols)
		if row == nil || len(cells)+cols > MaxTableCells {
			// a row that cannot be shaped voids the whole table
			return TableSpec{}, 0, false
		}
		cells = append(cells, row...)
		spec.Rows++
		end = ln
		lp = ln
	}
	if spec.Rows < 2 {
		return TableSpec{}, 0, false // header plus at least one body row
	}
	spec.Cells = cells
	return spec, end - pos, true
}

func lineHasPipe(src Source, pos, textEnd int) bool {
	for i := pos; i < textEnd; i++ {
		switch src.ByteAt(i) {
		case '\\':
			i++
		case '|':
			return true
		}
	}
	return false
}

// parseDelimiterRow validates a row of cells shaped like ---, :---,
// ---: or :---: and returns one alignment per cell.
func parseDelimiterRow(src Source, pos, textEnd int) ([]Alignment, bool) {
	bounds := cellBounds(src, pos, textEnd)
	if len(bounds) == 0 {
		return nil, false
	}
	align := make([]Alignment, 0, len(bounds))
	for _, cell := range bounds {
		i, j := cell.Start, cell.End
		for i < j && src.ByteAt(i) == ' ' {
			i++
		}
		for j > i && src.ByteAt(j-1) == ' ' {
			j--
		}
		if i >= j {
			return nil, false
		}
		left := src.ByteAt(i) == ':'
		right := src.ByteAt(j-1) == ':'
		if left {
			i++
		}
		if right {
			j--
		}
		if i >= j {
			return nil, false
		}
		dashes := 0
		for ; i < j; i++ {
			if src.ByteAt(i) != '-' {
				return nil, false
			}
			dashes++
		}
		if dashes == 0 {
			return nil, false
		}
		switch {
		case left && right:
			align = append(align, AlignCenter)
		case left:
			align = append(align, AlignLeft)
		case right:
			align = append(align, AlignRight)
		default:
			align = append(align, AlignDefault)
		}
	}
	return align, true
}

// splitRow splits a row line into exactly cols trimmed cell spans.
// Missing trailing cells become empty spans at the line end; surplus
// cells void the row (nil return).
func splitRow(src Source, pos, textEnd, cols int) []Span {
	bounds := cellBounds(src, pos, textEnd)
	if len(bounds) > cols {
		return nil
	}
	row := make([]Span, cols)
	for i := range row {
		if i < len(bounds) {
			row[i] = trimSpan(src, bounds[i])
		} else {
			row[i] = Span{textEnd, textEnd}
		}
	}
	return row
}

// cellBounds splits a row at unescaped pipes, dropping the leading and
// trailing empty segments produced by outer pipes.
func cellBounds(src Source, pos, textEnd int) []Span {
	var bounds []Span
	start := pos
	for i := pos; i < textEnd; i++ {
		switch src.ByteAt(i) {
		case '\\':
			i++
		case '|':
			bounds = append(bounds, Span{start, i})
			start = i + 1
		}
	}
	bounds = append(bounds, Span{start, textEnd})
	if len(bounds) > 0 && trimSpan(src, bounds[0]).IsEmpty() {
		bounds = bounds[1:]
	}
	if len(bounds) > 0 && trimSpan(src, bounds[len(bounds)-1]).IsEmpty() {
		bounds = bounds[:len(bounds)-1]
	}
	return bounds
}

func trimSpan(src Source, s Span) Span {
	for s.Start < s.End && src.ByteAt(s.Start) == ' ' {
		s.Start++
	}
	for s.End > s.Start && src.ByteAt(s.End-1) == ' ' {
		s.End--
	}
	return s
}
