package warp

import (
	"fmt"
	"math"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/warp/text"
)

// Glyph is the positioned outline of one character.
type Glyph struct {
	// Rune is the character this glyph was extracted for.
	Rune rune

	// GID is the glyph index in the font; 0 is .notdef.
	GID text.GlyphID

	// X is the pen position the glyph was placed at.
	X float64

	// Advance is the scaled horizontal advance.
	Advance float64

	// Commands is the outline in absolute path coordinates. Every contour
	// ends with Close.
	Commands []PathCommand
}

// CenterX returns the horizontal center of the glyph's advance box.
func (g Glyph) CenterX() float64 {
	return g.X + g.Advance/2
}

// OutlineExtractor turns a string into positioned glyph outlines.
// It performs no shaping: one glyph per character, left to right.
//
// OutlineExtractor is stateless and safe for concurrent use.
type OutlineExtractor struct {
	normalize bool
}

// defaultExtractor normalizes input to NFC.
var defaultExtractor = NewOutlineExtractor()

// NewOutlineExtractor creates an extractor that normalizes input to
// Unicode NFC before mapping characters to glyphs.
func NewOutlineExtractor() *OutlineExtractor {
	return &OutlineExtractor{normalize: true}
}

// NewRawOutlineExtractor creates an extractor that maps the input runes
// as given, without normalization.
func NewRawOutlineExtractor() *OutlineExtractor {
	return &OutlineExtractor{}
}

// Extract returns one Glyph per character of s. The pen starts at x=0 and
// advances by each glyph's advance scaled to fontSize; outlines are scaled
// to fontSize and placed on the baseline at baselineY.
//
// Empty s yields no glyphs and no error. A nil or closed source fails with
// a *FontLoadError.
func (e *OutlineExtractor) Extract(src *text.FontSource, s string, fontSize, baselineY float64) ([]Glyph, error) {
	if !(fontSize > 0) || math.IsInf(fontSize, 0) {
		return nil, ErrInvalidFontSize
	}
	if src == nil {
		return nil, &FontLoadError{Err: text.ErrSourceClosed}
	}
	if src.Closed() {
		return nil, &FontLoadError{Path: src.Name(), Err: text.ErrSourceClosed}
	}
	if s == "" {
		return nil, nil
	}
	if e.normalize {
		s = norm.NFC.String(s)
	}

	scale := fontSize / float64(src.UnitsPerEm())
	glyphs := make([]Glyph, 0, len(s))
	var x float64
	for _, r := range s {
		gid, err := src.GlyphIndex(r)
		if err != nil {
			return nil, &FontLoadError{Path: src.Name(), Err: err}
		}
		if gid == 0 {
			Logger().Warn("warp: no glyph for character, using .notdef", "rune", string(r))
		}

		outline, err := src.Outline(gid)
		if err != nil {
			return nil, &FontLoadError{Path: src.Name(), Err: fmt.Errorf("glyph %q: %w", r, err)}
		}
		placed := outline.Place(scale, x, baselineY)

		glyphs = append(glyphs, Glyph{
			Rune:     r,
			GID:      gid,
			X:        x,
			Advance:  placed.Advance,
			Commands: outlineCommands(placed),
		})
		x += placed.Advance
	}
	return glyphs, nil
}

// outlineCommands converts outline segments into path commands, closing
// every contour: a MoveTo closes the previous contour and the last one is
// closed at the end.
func outlineCommands(o *text.GlyphOutline) []PathCommand {
	if o.IsEmpty() {
		return nil
	}

	cmds := make([]PathCommand, 0, len(o.Segments)+4)
	open := false
	for _, seg := range o.Segments {
		p := seg.Points
		switch seg.Op {
		case text.OutlineOpMoveTo:
			if open {
				cmds = append(cmds, Close{})
			}
			cmds = append(cmds, MoveTo{Point: Pt(p[0].X, p[0].Y)})
			open = true
		case text.OutlineOpLineTo:
			cmds = append(cmds, LineTo{Point: Pt(p[0].X, p[0].Y)})
		case text.OutlineOpQuadTo:
			cmds = append(cmds, QuadTo{
				Control: Pt(p[0].X, p[0].Y),
				Point:   Pt(p[1].X, p[1].Y),
			})
		case text.OutlineOpCubicTo:
			cmds = append(cmds, CubicTo{
				Control1: Pt(p[0].X, p[0].Y),
				Control2: Pt(p[1].X, p[1].Y),
				Point:    Pt(p[2].X, p[2].Y),
			})
		}
	}
	if open {
		cmds = append(cmds, Close{})
	}
	return cmds
}
