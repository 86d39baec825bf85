package text

import (
	"maps"
	"slices"
	"sync"
)

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (golang.org/x/image/font/sfnt or github.com/go-text/typesetting).
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
// Implementations must be safe for concurrent use.
//
// All metrics are in font units. Outlines use a Y-down coordinate system
// with the glyph origin on the baseline.
type ParsedFont interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune.
	// Returns 0 (.notdef) if the font has no glyph for r.
	GlyphIndex(r rune) GlyphID

	// GlyphAdvance returns the horizontal advance of a glyph in font units.
	GlyphAdvance(gid GlyphID) float64

	// GlyphOutline returns the unhinted vector outline of a glyph in font
	// units. Glyphs without contours (such as space) return an empty outline.
	GlyphOutline(gid GlyphID) (*GlyphOutline, error)
}

// parserRegistry holds registered font parsers.
// The default parser is "ximage" (golang.org/x/image).
var (
	parserMu       sync.RWMutex
	parserRegistry = map[string]FontParser{
		"ximage": &ximageParser{},
		"gotext": &gotextParser{},
	}
)

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parser.
// This allows users to provide their own parsing implementation.
func RegisterParser(name string, parser FontParser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// Parsers returns the names of all registered parsers in sorted order.
func Parsers() []string {
	parserMu.RLock()
	defer parserMu.RUnlock()
	return slices.Sorted(maps.Keys(parserRegistry))
}

// getParser returns the parser registered under name.
func getParser(name string) (FontParser, error) {
	parserMu.RLock()
	defer parserMu.RUnlock()
	if p, ok := parserRegistry[name]; ok {
		return p, nil
	}
	return nil, &UnknownParserError{Name: name}
}
