package text

// GlyphID is a unique identifier for a glyph within a font.
// The glyph ID is assigned by the font file and is font-specific.
// Glyph 0 is the font's .notdef glyph.
type GlyphID uint16
