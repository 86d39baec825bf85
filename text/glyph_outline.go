package text

// OutlinePoint represents a point in a glyph outline.
type OutlinePoint struct {
	X, Y float64
}

// OutlineSegment represents a segment of a glyph outline.
type OutlineSegment struct {
	// Op is the segment operation type.
	Op OutlineOp

	// Points contains the control and end points for this segment.
	// - MoveTo: Points[0] is the target point
	// - LineTo: Points[0] is the target point
	// - QuadTo: Points[0] is control, Points[1] is target
	// - CubicTo: Points[0], Points[1] are controls, Points[2] is target
	Points [3]OutlinePoint
}

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo starts a new contour.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	default:
		return "Unknown"
	}
}

// PointCount returns how many entries of OutlineSegment.Points the
// operation uses.
func (op OutlineOp) PointCount() int {
	switch op {
	case OutlineOpQuadTo:
		return 2
	case OutlineOpCubicTo:
		return 3
	default:
		return 1
	}
}

// GlyphOutline represents the vector outline of a glyph in font units.
// Contours are implicitly closed: each MoveTo starts a new one.
type GlyphOutline struct {
	// Segments is the list of path segments that make up the outline.
	Segments []OutlineSegment

	// Advance is the horizontal advance width of the glyph.
	Advance float64

	// GID is the glyph ID this outline represents.
	GID GlyphID
}

// IsEmpty returns true if the outline has no segments.
func (o *GlyphOutline) IsEmpty() bool {
	return len(o.Segments) == 0
}

// Place returns a new outline scaled by factor and then translated by
// (dx, dy). Advance is scaled along with the points.
func (o *GlyphOutline) Place(factor, dx, dy float64) *GlyphOutline {
	if o == nil {
		return nil
	}

	placed := &GlyphOutline{
		Segments: make([]OutlineSegment, len(o.Segments)),
		Advance:  o.Advance * factor,
		GID:      o.GID,
	}
	for i, seg := range o.Segments {
		out := OutlineSegment{Op: seg.Op}
		for j := 0; j < seg.Op.PointCount(); j++ {
			out.Points[j] = OutlinePoint{
				X: seg.Points[j].X*factor + dx,
				Y: seg.Points[j].Y*factor + dy,
			}
		}
		placed.Segments[i] = out
	}
	return placed
}
