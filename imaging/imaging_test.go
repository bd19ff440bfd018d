package imaging

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveRelativePath(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, dir, "cat.png", 4, 4)
	svc := New(dir)
	p, err := svc.Resolve("cat.png")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if p != filepath.Join(dir, "cat.png") {
		t.Errorf("resolved to %q", p)
	}
	if _, err := svc.Resolve("missing.png"); err == nil {
		t.Errorf("a missing file must not resolve")
	}
}

func TestIsSupported(t *testing.T) {
	svc := New(".")
	for _, p := range []string{"a.png", "b.JPG", "c.jpeg", "d.gif", "e.webp"} {
		if !svc.IsSupported(p) {
			t.Errorf("%q should be supported", p)
		}
	}
	for _, p := range []string{"a.bmp", "b.svg", "c.txt"} {
		if svc.IsSupported(p) {
			t.Errorf("%q should not be supported", p)
		}
	}
}

func TestSizeReadsHeader(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "wide.png", 64, 16)
	svc := New(dir)
	w, h, err := svc.Size(path)
	if err != nil {
		t.Fatalf("size failed: %v", err)
	}
	if w != 64 || h != 16 {
		t.Errorf("got %dx%d, want 64x16", w, h)
	}
}

func TestCalcRows(t *testing.T) {
	svc := New(".")
	// square image over 40 columns: 40/2 = 20 rows under the cell aspect
	if rows := svc.CalcRows(100, 100, 40, 0); rows != 20 {
		t.Errorf("square image rows %d, want 20", rows)
	}
	if rows := svc.CalcRows(100, 100, 40, 5); rows != 5 {
		t.Errorf("capped rows %d, want 5", rows)
	}
	if rows := svc.CalcRows(1000, 10, 40, 0); rows != 1 {
		t.Errorf("flat image rows %d, want 1", rows)
	}
	if rows := svc.CalcRows(0, 100, 40, 0); rows != 1 {
		t.Errorf("degenerate input rows %d, want 1", rows)
	}
}
