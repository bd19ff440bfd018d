package highlight

import (
	"strings"
	"testing"
)

func TestHighlightGoCode(t *testing.T) {
	h := New("")
	out, err := h.Highlight("go", "func main() {}\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("expected ANSI sequences in highlighted output")
	}
	if !strings.Contains(out, "main") {
		t.Errorf("the source text must survive highlighting")
	}
}

func TestHighlightUnknownLanguagePassesThrough(t *testing.T) {
	h := New("monokai")
	code := "some ??? content"
	out, err := h.Highlight("no-such-language-zzz", code)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != code {
		t.Errorf("unknown language must return the source unchanged, got %q", out)
	}
}

func TestHighlightUnknownStyleFallsBack(t *testing.T) {
	h := New("no-such-style-zzz")
	if _, err := h.Highlight("go", "package x\n"); err != nil {
		t.Errorf("unknown styles fall back, not fail: %v", err)
	}
}
