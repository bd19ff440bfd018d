package buffer

/*
BSD 3-Clause License

Copyright (c) 2025-26, the tidemark authors

Please refer to the License file in the repository root.
*/

import (
	"bufio"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
	"github.com/rivo/uniseg"
)

// TabWidth is the display width accounted for a tab character.
// Tabs are treated as fixed-width; elastic tab stops are a concern of
// the rendering backend, not of row accounting.
const TabWidth = 4

// graphemeWindow is the initial window size for grapheme extraction.
// Clusters longer than this (deep ZWJ sequences) grow the window.
const graphemeWindow = 32

// DecodeRuneAt decodes the UTF-8 rune starting at pos and returns it
// together with its byte length. Invalid encodings yield
// (utf8.RuneError, 1).
func (b *Buffer) DecodeRuneAt(pos int) (rune, int) {
	n := b.Len()
	if pos < 0 || pos >= n {
		return utf8.RuneError, 0
	}
	end := pos + utf8.UTFMax
	if end > n {
		end = n
	}
	return utf8.DecodeRuneInString(b.Substring(pos, end))
}

// GraphemeAt returns the display width of the grapheme cluster starting
// at pos and the byte position immediately after it. At or past the end
// of the buffer it returns (0, pos).
func (b *Buffer) GraphemeAt(pos int) (width, next int) {
	n := b.Len()
	if pos < 0 || pos >= n {
		return 0, pos
	}
	win := graphemeWindow
	for {
		end := pos + win
		if end > n {
			end = n
		}
		s := b.Substring(pos, end)
		cluster, _, w, _ := uniseg.FirstGraphemeClusterInString(s, -1)
		if len(cluster) == len(s) && end < n {
			win *= 2 // cluster may continue past the window
			continue
		}
		return clusterWidth(cluster, w), pos + len(cluster)
	}
}

// clusterWidth post-processes a uniseg cluster width: tabs get their
// fixed width, and zero-width results fall back to go-runewidth, which
// handles a few terminal-dependent cases differently.
func clusterWidth(cluster string, w int) int {
	if cluster == "\t" {
		return TabWidth
	}
	if w <= 0 {
		if fb := runewidth.StringWidth(cluster); fb > 0 {
			return fb
		}
		return 0
	}
	return w
}

// WidthBetween returns the total display width of the text in [i,j).
// Newlines contribute zero width.
func (b *Buffer) WidthBetween(i, j int) int {
	s := b.Substring(i, j)
	total := 0
	state := -1
	var cluster string
	var w int
	for len(s) > 0 {
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		total += clusterWidth(cluster, w)
	}
	return total
}

// FindWrapPoint greedily packs grapheme clusters from start against
// maxWidth and returns the first position that no longer fits, together
// with the display width actually consumed. The first cluster is always
// consumed, even when it is wider than maxWidth, so progress is
// guaranteed. Scanning stops at end.
func (b *Buffer) FindWrapPoint(start, end, maxWidth int) (breakPos, consumed int) {
	if maxWidth < 1 {
		maxWidth = 1
	}
	s := b.Substring(start, end)
	pos := start
	state := -1
	var cluster string
	var w int
	for len(s) > 0 {
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		cw := clusterWidth(cluster, w)
		if consumed > 0 && consumed+cw > maxWidth {
			return pos, consumed
		}
		consumed += cw
		pos += len(cluster)
	}
	return pos, consumed
}

// FindBreakPoint is the word-aware variant of FindWrapPoint. It packs
// UAX#14 line-break segments against maxWidth and breaks at the last
// segment boundary that fits. When not even the first segment fits, it
// degrades to grapheme packing so a break position is always found.
func (b *Buffer) FindBreakPoint(start, end, maxWidth int) (breakPos, consumed int) {
	if maxWidth < 1 {
		maxWidth = 1
	}
	text := b.Substring(start, end)
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(strings.NewReader(text)))
	pos := start
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		w := b.widthOfString(frag)
		if consumed > 0 && consumed+w > maxWidth {
			return pos, consumed
		}
		if consumed == 0 && w > maxWidth {
			// first segment overflows the line on its own
			return b.FindWrapPoint(start, end, maxWidth)
		}
		consumed += w
		pos += len(frag)
	}
	return pos, consumed
}

func (b *Buffer) widthOfString(s string) int {
	total := 0
	state := -1
	var cluster string
	var w int
	for len(s) > 0 {
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		total += clusterWidth(cluster, w)
	}
	return total
}
