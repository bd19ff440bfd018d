package inline

/*
BSD 3-Clause License

Copyright (c) 2025-26, the tidemark authors

Please refer to the License file in the repository root.
*/

import "github.com/mvickers/tidemark/syntax"

// Kind discriminates run variants.
type Kind int

const (
	KindText Kind = iota
	KindDelimiter
	KindLink
	KindAutolink
	KindFootnoteRef
	KindMath
	KindEntity
	KindEscape
	KindEmoji
	KindHeadingID
)

// Run is a contiguous styled span [Start,End) within one block.
// Style holds the styles active over the span; Payload carries the
// variant-specific fields and is nil for plain text.
type Run struct {
	Start   int
	End     int
	Kind    Kind
	Style   syntax.Style
	Payload Payload
}

// Payload is the sealed sum of run-specific data.
type Payload interface {
	isRunPayload()
}

// Delim is the payload of a style delimiter run.
type Delim struct {
	Style  syntax.Style
	Length int
	Open   bool
}

// Link is the payload of an inline link run.
type Link struct {
	Text  syntax.Span
	URL   syntax.Span
	Title syntax.Span
}

// Footnote is the payload of a footnote reference run.
type Footnote struct {
	ID syntax.Span
}

// Math is the payload of an inline math run.
type Math struct {
	Content syntax.Span
}

// Entity is the payload of an HTML entity run.
type Entity struct {
	Decoded string
}

// Escape is the payload of a backslash escape run.
type Escape struct {
	Char byte
}

// EmojiGlyph is the payload of an emoji shortcode run.
type EmojiGlyph struct {
	Glyph string
}

// HeadingID is the payload of a {#id} run.
type HeadingID struct {
	ID syntax.Span
}

// Autolink is the payload of an autolink run.
type Autolink struct {
	URL syntax.Span
}

func (Delim) isRunPayload()      {}
func (Link) isRunPayload()       {}
func (Footnote) isRunPayload()   {}
func (Math) isRunPayload()       {}
func (Entity) isRunPayload()     {}
func (Escape) isRunPayload()     {}
func (EmojiGlyph) isRunPayload() {}
func (HeadingID) isRunPayload()  {}
func (Autolink) isRunPayload()   {}
