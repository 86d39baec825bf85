package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrSourceClosed is returned when a closed FontSource is queried.
	ErrSourceClosed = errors.New("text: font source is closed")

	// ErrColoredGlyph is returned for glyphs that only have bitmap or
	// color data and no vector outline.
	ErrColoredGlyph = errors.New("text: glyph has no vector outline")
)

// UnknownParserError is returned when a FontSource is created with a parser
// name that was never registered.
type UnknownParserError struct {
	Name string
}

func (e *UnknownParserError) Error() string {
	return "text: unknown font parser " + e.Name
}
