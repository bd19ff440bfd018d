package buffer

import (
	"strings"
	"testing"
)

func TestDecodeRuneAt(t *testing.T) {
	b := FromString("a€b")
	r, n := b.DecodeRuneAt(0)
	if r != 'a' || n != 1 {
		t.Errorf("expected ('a',1), got (%q,%d)", r, n)
	}
	r, n = b.DecodeRuneAt(1)
	if r != '€' || n != 3 {
		t.Errorf("expected ('€',3), got (%q,%d)", r, n)
	}
	if r, n = b.DecodeRuneAt(100); n != 0 {
		t.Errorf("expected zero length past the end, got (%q,%d)", r, n)
	}
}

func TestGraphemeWidths(t *testing.T) {
	b := FromString("a\t宽é") // ASCII, tab, CJK, combining accent
	w, next := b.GraphemeAt(0)
	if w != 1 || next != 1 {
		t.Errorf("'a': expected (1,1), got (%d,%d)", w, next)
	}
	w, next = b.GraphemeAt(1)
	if w != TabWidth || next != 2 {
		t.Errorf("tab: expected (%d,2), got (%d,%d)", TabWidth, w, next)
	}
	w, next = b.GraphemeAt(2)
	if w != 2 || next != 5 {
		t.Errorf("CJK: expected (2,5), got (%d,%d)", w, next)
	}
	w, next = b.GraphemeAt(5)
	if w != 1 || next != b.Len() {
		t.Errorf("e+accent: expected one cluster of width 1, got (%d,%d)", w, next)
	}
}

func TestGraphemeAtZWJSequence(t *testing.T) {
	// family emoji: 4 codepoints joined by ZWJ, a single cluster
	b := FromString("\U0001F468‍\U0001F469‍\U0001F466x")
	w, next := b.GraphemeAt(0)
	if next != b.Len()-1 {
		t.Fatalf("expected ZWJ sequence to be one cluster ending at %d, got %d", b.Len()-1, next)
	}
	if w < 2 {
		t.Errorf("expected emoji width >= 2, got %d", w)
	}
}

func TestWidthBetween(t *testing.T) {
	b := FromString("ab\ncd")
	if w := b.WidthBetween(0, b.Len()); w != 4 {
		t.Errorf("newline must not contribute width, got %d", w)
	}
}

func TestFindWrapPointGreedy(t *testing.T) {
	b := FromString(strings.Repeat("a", 25))
	pos, consumed := b.FindWrapPoint(0, 25, 10)
	if pos != 10 || consumed != 10 {
		t.Fatalf("expected break at 10, got (%d,%d)", pos, consumed)
	}
	pos, consumed = b.FindWrapPoint(10, 25, 10)
	if pos != 20 || consumed != 10 {
		t.Fatalf("expected break at 20, got (%d,%d)", pos, consumed)
	}
	pos, consumed = b.FindWrapPoint(20, 25, 10)
	if pos != 25 || consumed != 5 {
		t.Fatalf("expected final segment of 5, got (%d,%d)", pos, consumed)
	}
}

func TestFindWrapPointConsumesOversizedCluster(t *testing.T) {
	b := FromString("宽宽")
	// width 1 cannot hold a double-width cluster, but progress is
	// guaranteed: the first cluster is consumed anyway
	pos, consumed := b.FindWrapPoint(0, b.Len(), 1)
	if pos != 3 || consumed != 2 {
		t.Errorf("expected (3,2), got (%d,%d)", pos, consumed)
	}
}

func TestFindBreakPointPrefersWordBoundaries(t *testing.T) {
	b := FromString("lorem ipsum dolor")
	pos, _ := b.FindBreakPoint(0, b.Len(), 10)
	// "lorem " fits, "lorem ipsum " does not: break before "ipsum"
	if pos != 6 {
		t.Errorf("expected word break at 6, got %d", pos)
	}
}

func TestFindBreakPointDegradesToGraphemes(t *testing.T) {
	b := FromString("incomprehensibilities")
	pos, consumed := b.FindBreakPoint(0, b.Len(), 10)
	if pos != 10 || consumed != 10 {
		t.Errorf("expected grapheme fallback at (10,10), got (%d,%d)", pos, consumed)
	}
}
