package imaging

/*
BSD 3-Clause License

Copyright (c) 2025-26, the tidemark authors

Please refer to the License file in the repository root.
*/

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp"
)

// cellAspect is the assumed height:width ratio of one terminal cell.
// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2

// Service resolves image paths against a base directory and reads
// their dimensions from the image header. Resolved paths and sizes are
// cached; the cache lives as long as the service.
type Service struct {
	baseDir string
	paths   map[string]string
	sizes   map[string][2]int
}

// New creates a service resolving relative image paths against baseDir
// (typically the directory of the markdown file).
func New(baseDir string) *Service {
	return &Service{
		baseDir: baseDir,
		paths:   make(map[string]string),
		sizes:   make(map[string][2]int),
	}
}

// Resolve turns a raw markdown path into an absolute local path. The
// file must exist; misses are not cached so a later save can heal them.
func (s *Service) Resolve(raw string) (string, error) {
	if p, ok := s.paths[raw]; ok {
		return p, nil
	}
	p := raw
	if !filepath.IsAbs(p) {
		p = filepath.Join(s.baseDir, p)
	}
	p = filepath.Clean(p)
	if _, err := os.Stat(p); err != nil {
		return "", err
	}
	s.paths[raw] = p
	return p, nil
}

// IsSupported reports whether a registered decoder handles the file,
// judged by extension.
func (s *Service) IsSupported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return true
	}
	return false
}

// Size returns the pixel dimensions of the image at path, decoding
// only the header.
func (s *Service) Size(path string) (width, height int, err error) {
	if wh, ok := s.sizes[path]; ok {
		return wh[0], wh[1], nil
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		if err == image.ErrFormat {
			return 0, 0, ErrUnsupported
		}
		return 0, 0, err
	}
	T().Debugf("image %q: %s, %dx%d px", path, format, cfg.Width, cfg.Height)
	s.sizes[path] = [2]int{cfg.Width, cfg.Height}
	return cfg.Width, cfg.Height, nil
}

// CalcRows converts pixel dimensions into terminal rows for a target
// column count, preserving the aspect ratio under the cell aspect.
// targetRows > 0 caps the result.
func (s *Service) CalcRows(pxWidth, pxHeight, targetCols, targetRows int) int {
	if pxWidth <= 0 || pxHeight <= 0 || targetCols < 1 {
		return 1
	}
	rows := pxHeight * targetCols / (pxWidth * cellAspect)
	if rows < 1 {
		rows = 1
	}
	if targetRows > 0 && rows > targetRows {
		rows = targetRows
	}
	return rows
}
