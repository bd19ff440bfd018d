package inline

/*
BSD 3-Clause License

Copyright (c) 2025-26, the tidemark authors

Please refer to the License file in the repository root.
*/

import "github.com/mvickers/tidemark/syntax"

// MaxNesting is the emphasis/style stack depth. Delimiters beyond this
// depth are treated as plain text.
const MaxNesting = 8

// MaxRuns bounds run-slice growth for one block. When the ceiling is
// hit the pass stops and the remainder of the range is appended as one
// text run, so coverage stays exhaustive.
const MaxRuns = 4096

// stackEntry is one open style delimiter. The close position is bound
// once, when the delimiter opens.
type stackEntry struct {
	style    syntax.Style
	marker   byte
	length   int
	openPos  int
	closePos int
}

// Tokenize scans [start,end) of src in a single pass and returns the
// ordered run sequence plus the delimiters left open (a diagnostic, not
// an error). Run ranges are contiguous and exhaustive over the range.
func Tokenize(src syntax.Source, start, end int) (runs []Run, unclosed []Delim) {
	tk := tokenizer{src: src, end: end, textStart: start}
	tk.scan(start)
	return tk.runs, tk.unclosed
}

type tokenizer struct {
	src       syntax.Source
	end       int
	runs      []Run
	unclosed  []Delim
	textStart int
	active    syntax.Style
	stack     []stackEntry
}

// flush closes the pending text run up to pos.
func (tk *tokenizer) flush(pos int) {
	if pos > tk.textStart {
		tk.runs = append(tk.runs, Run{
			Start: tk.textStart,
			End:   pos,
			Kind:  KindText,
			Style: tk.active,
		})
	}
	tk.textStart = pos
}

// emit appends a non-text run and re-opens text accumulation after it.
func (tk *tokenizer) emit(r Run) {
	tk.flush(r.Start)
	tk.runs = append(tk.runs, r)
	tk.textStart = r.End
}

func (tk *tokenizer) scan(start int) {
	src, end := tk.src, tk.end
	pos := start
	for pos < end {
		if len(tk.runs) >= MaxRuns {
			break
		}
		c := src.ByteAt(pos)
		inCode := tk.active&syntax.StyleCode != 0

		if c == '\n' {
			// flush; the newline byte opens the next text run, so
			// coverage over the range stays gapless
			tk.flush(pos)
			pos++
			continue
		}
		if !inCode {
			if c == '\\' && pos+1 < end && syntax.IsPunct(src.ByteAt(pos+1)) {
				tk.emit(Run{Start: pos, End: pos + 2, Kind: KindEscape,
					Style: tk.active, Payload: Escape{Char: src.ByteAt(pos + 1)}})
				pos += 2
				continue
			}
			if url, n, ok := syntax.Autolink(src, pos, end); ok {
				tk.emit(Run{Start: pos, End: pos + n, Kind: KindAutolink,
					Style: tk.active, Payload: Autolink{URL: url}})
				pos += n
				continue
			}
			if decoded, n, ok := syntax.Entity(src, pos, end); ok {
				tk.emit(Run{Start: pos, End: pos + n, Kind: KindEntity,
					Style: tk.active, Payload: Entity{Decoded: decoded}})
				pos += n
				continue
			}
			if link, n, ok := syntax.Link(src, pos, end); ok {
				tk.emit(Run{Start: pos, End: pos + n, Kind: KindLink,
					Style: tk.active, Payload: Link{Text: link.Text, URL: link.URL, Title: link.Title}})
				pos += n
				continue
			}
			if id, n, ok := syntax.FootnoteRef(src, pos, end); ok {
				tk.emit(Run{Start: pos, End: pos + n, Kind: KindFootnoteRef,
					Style: tk.active, Payload: Footnote{ID: id}})
				pos += n
				continue
			}
			if content, n, ok := syntax.InlineMath(src, pos, end); ok {
				tk.emit(Run{Start: pos, End: pos + n, Kind: KindMath,
					Style: tk.active, Payload: Math{Content: content}})
				pos += n
				continue
			}
			if id, n, ok := syntax.HeadingID(src, pos, end); ok {
				tk.emit(Run{Start: pos, End: pos + n, Kind: KindHeadingID,
					Style: tk.active, Payload: HeadingID{ID: id}})
				pos += n
				continue
			}
			if glyph, n, ok := syntax.Emoji(src, pos, end); ok {
				tk.emit(Run{Start: pos, End: pos + n, Kind: KindEmoji,
					Style: tk.active, Payload: EmojiGlyph{Glyph: glyph}})
				pos += n
				continue
			}
		}
		if d, ok := syntax.Delimiter(src, pos); ok {
			if n, handled := tk.delimiter(pos, c, d); handled {
				pos += n
				continue
			}
		}
		pos++
	}
	if pos < end {
		// run ceiling hit: the tail stays one big text run
		pos = end
	}
	tk.flush(pos)
	for i := len(tk.stack) - 1; i >= 0; i-- {
		e := tk.stack[i]
		tk.unclosed = append(tk.unclosed, Delim{Style: e.style, Length: e.length, Open: true})
	}
}

// delimiter handles a style delimiter at pos. It reports the bytes
// consumed and false when the delimiter did not act (plain text).
func (tk *tokenizer) delimiter(pos int, marker byte, d syntax.DelimSpec) (int, bool) {
	// close: only against the pre-bound close position of a compatible
	// open entry, searched top-down
	inCode := tk.active&syntax.StyleCode != 0
	for i := len(tk.stack) - 1; i >= 0; i-- {
		e := tk.stack[i]
		if e.closePos != pos || e.style != d.Style {
			continue
		}
		if inCode && e.style != syntax.StyleCode {
			continue // inside code only the bound backtick close counts
		}
		tk.emit(Run{Start: pos, End: pos + e.length, Kind: KindDelimiter,
			Style: tk.active, Payload: Delim{Style: e.style, Length: e.length, Open: false}})
		// entries above the matched one never got their close; keep
		// them visible in the diagnostics
		for j := len(tk.stack) - 1; j > i; j-- {
			inner := tk.stack[j]
			tk.unclosed = append(tk.unclosed, Delim{Style: inner.style, Length: inner.length, Open: true})
			tk.active &^= inner.style
		}
		tk.active &^= e.style
		tk.stack = tk.stack[:i]
		return e.length, true
	}
	if inCode {
		return 0, false // and no new opens either
	}
	if tk.active&d.Style != 0 || len(tk.stack) >= MaxNesting {
		return 0, false
	}
	closePos := syntax.FindDelimiterClose(tk.src, pos+d.Length, tk.end, marker, d.Length)
	if closePos < 0 {
		return 0, false
	}
	tk.emit(Run{Start: pos, End: pos + d.Length, Kind: KindDelimiter,
		Style: tk.active | d.Style, Payload: Delim{Style: d.Style, Length: d.Length, Open: true}})
	tk.stack = append(tk.stack, stackEntry{
		style:    d.Style,
		marker:   marker,
		length:   d.Length,
		openPos:  pos,
		closePos: closePos,
	})
	tk.active |= d.Style
	return d.Length, true
}
