package text

import (
	"errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f, upem: fixed.I(int(f.UnitsPerEm()))}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
//
// Every query is made at ppem == unitsPerEm so that the 26.6 values
// sfnt returns are font units.
type ximageParsedFont struct {
	font *opentype.Font
	upem fixed.Int26_6
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.font.Name(nil, sfnt.NameIDFull); err == nil {
		return name
	}
	return ""
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) GlyphID {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageParsedFont) GlyphAdvance(gid GlyphID) float64 {
	var buf sfnt.Buffer
	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(gid), f.upem, font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat64(advance)
}

// GlyphOutline implements ParsedFont.GlyphOutline.
func (f *ximageParsedFont) GlyphOutline(gid GlyphID) (*GlyphOutline, error) {
	var buf sfnt.Buffer
	segments, err := f.font.LoadGlyph(&buf, sfnt.GlyphIndex(gid), f.upem, nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			return nil, ErrColoredGlyph
		}
		return nil, fmt.Errorf("text: load glyph %d: %w", gid, err)
	}

	outline := &GlyphOutline{
		Segments: make([]OutlineSegment, 0, len(segments)),
		GID:      gid,
	}
	for _, seg := range segments {
		var out OutlineSegment
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			out.Op = OutlineOpMoveTo
		case sfnt.SegmentOpLineTo:
			out.Op = OutlineOpLineTo
		case sfnt.SegmentOpQuadTo:
			out.Op = OutlineOpQuadTo
		case sfnt.SegmentOpCubeTo:
			out.Op = OutlineOpCubicTo
		default:
			continue
		}
		for i := 0; i < out.Op.PointCount(); i++ {
			out.Points[i] = fixedPointToOutline(seg.Args[i])
		}
		outline.Segments = append(outline.Segments, out)
	}
	outline.Advance = f.GlyphAdvance(gid)
	return outline, nil
}

// fixedPointToOutline converts a fixed.Point26_6 to OutlinePoint.
// sfnt already reports Y growing downwards.
func fixedPointToOutline(p fixed.Point26_6) OutlinePoint {
	return OutlinePoint{
		X: fixedToFloat64(p.X),
		Y: fixedToFloat64(p.Y),
	}
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
