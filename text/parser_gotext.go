package text

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
)

// gotextParser implements FontParser using github.com/go-text/typesetting.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	// ParseTTF returns a *Face which embeds the thread-safe *Font.
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &gotextParsedFont{font: face.Font}, nil
}

// gotextParsedFont implements ParsedFont on top of a go-text font.Font.
// font.Font is read-only and safe for concurrent use; font.Face is not,
// so each query creates its own lightweight Face.
type gotextParsedFont struct {
	font *font.Font
}

// Name implements ParsedFont.Name.
// go-text does not expose the name table through font.Font.
func (f *gotextParsedFont) Name() string { return "" }

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextParsedFont) UnitsPerEm() int {
	return int(f.font.Upem())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *gotextParsedFont) GlyphIndex(r rune) GlyphID {
	gid, ok := f.font.NominalGlyph(r)
	if !ok {
		return 0
	}
	return GlyphID(uint16(gid)) //nolint:gosec // TrueType glyph indices fit in 16 bits
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *gotextParsedFont) GlyphAdvance(gid GlyphID) float64 {
	face := font.NewFace(f.font)
	return float64(face.HorizontalAdvance(font.GID(gid)))
}

// GlyphOutline implements ParsedFont.GlyphOutline.
func (f *gotextParsedFont) GlyphOutline(gid GlyphID) (*GlyphOutline, error) {
	face := font.NewFace(f.font)
	data, ok := face.GlyphData(font.GID(gid)).(font.GlyphOutline)
	if !ok {
		return nil, ErrColoredGlyph
	}

	outline := &GlyphOutline{
		Segments: make([]OutlineSegment, 0, len(data.Segments)),
		GID:      gid,
		Advance:  float64(face.HorizontalAdvance(font.GID(gid))),
	}
	for _, seg := range data.Segments {
		var out OutlineSegment
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			out.Op = OutlineOpMoveTo
		case ot.SegmentOpLineTo:
			out.Op = OutlineOpLineTo
		case ot.SegmentOpQuadTo:
			out.Op = OutlineOpQuadTo
		case ot.SegmentOpCubeTo:
			out.Op = OutlineOpCubicTo
		default:
			continue
		}
		for i := 0; i < out.Op.PointCount(); i++ {
			// go-text outlines are Y-up.
			out.Points[i] = OutlinePoint{
				X: float64(seg.Args[i].X),
				Y: -float64(seg.Args[i].Y),
			}
		}
		outline.Segments = append(outline.Segments, out)
	}
	return outline, nil
}
