// Package text loads fonts and exposes their glyph outlines.
//
// The package is organized around two types:
//
//   - FontSource: heavyweight, shared, read-only font resource
//   - FontParser: pluggable font parsing backend (default: golang.org/x/image)
//
// Outlines are returned in font units with the Y axis pointing down, so a
// caller only has to scale by size/UnitsPerEm and translate to a pen
// position to place a glyph.
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("OldStandardTT-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	gid, err := source.GlyphIndex('A')
//	if err != nil {
//	    log.Fatal(err)
//	}
//	outline, err := source.Outline(gid)
//
// # Pluggable Parser Backend
//
// Two backends are registered:
//
//   - "ximage": golang.org/x/image/font/sfnt (default)
//   - "gotext": github.com/go-text/typesetting/font
//
// Select one with WithParser:
//
//	source, err := text.NewFontSource(data, text.WithParser("gotext"))
//
// Custom parsers can be added with RegisterParser.
package text
