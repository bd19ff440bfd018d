package tidemark

/*
BSD 3-Clause License

Copyright (c) 2025-26, the tidemark authors

Please refer to the License file in the repository root.
*/

// External collaborators of the document model. All calls are
// synchronous; results are cached per block for one parse generation.

// ImageService resolves image paths and computes terminal row counts
// from pixel dimensions. Package imaging ships a filesystem-backed
// implementation.
type ImageService interface {
	// Resolve turns a raw markdown path into a local path, caching as
	// it sees fit.
	Resolve(raw string) (string, error)
	// IsSupported reports whether the image format is displayable.
	IsSupported(path string) bool
	// Size returns the pixel dimensions of the image.
	Size(path string) (width, height int, err error)
	// CalcRows derives a terminal row count from pixel dimensions and
	// the target cell box. targetRows <= 0 means unbounded.
	CalcRows(pxWidth, pxHeight, targetCols, targetRows int) int
}

// Sketch is a rendered math image. The document model releases it when
// the owning cache entry is freed.
type Sketch interface {
	// Height returns the sketch height in terminal rows.
	Height() int
	// Release frees resources held by the sketch.
	Release()
}

// MathRenderer typesets LaTeX into terminal sketches.
type MathRenderer interface {
	Render(tex string) (Sketch, error)
}

// Highlighter colorizes code block content. Package highlight ships a
// chroma-backed implementation.
type Highlighter interface {
	Highlight(lang, code string) (string, error)
}

// Services bundles the optional external collaborators of a Document.
// Any field may be nil; the corresponding layout paths then use their
// fallbacks (1 row for images and math, plain text for code).
type Services struct {
	Images ImageService
	Math   MathRenderer
	Code   Highlighter
}
