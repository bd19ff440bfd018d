package tidemark

/*
BSD 3-Clause License

Copyright (c) 2025-26, the tidemark authors

Please refer to the License file in the repository root.
*/

import (
	"golang.org/x/term"
)

// TerminalLayout probes the controlling terminal for the document's
// wrap width and text height. Without a terminal (tests, pipes) it
// falls back to the defaults.
func TerminalLayout() (wrapWidth, textHeight int) {
	wrapWidth, textHeight = DefaultWrapWidth, DefaultTextHeight
	if !term.IsTerminal(0) {
		return
	}
	w, h, err := term.GetSize(0)
	if err != nil {
		T().Infof("terminal size unavailable: %v", err)
		return
	}
	if w > 0 {
		wrapWidth = w
	}
	if h > 0 {
		textHeight = h
	}
	return
}
