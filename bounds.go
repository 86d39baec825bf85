package warp

import "honnef.co/go/curve"

// toBezPath converts cmds to a curve.BezPath.
func toBezPath(cmds []PathCommand) curve.BezPath {
	bp := make(curve.BezPath, 0, len(cmds))
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case MoveTo:
			bp.MoveTo(curvePt(c.Point))
		case LineTo:
			bp.LineTo(curvePt(c.Point))
		case QuadTo:
			bp.QuadTo(curvePt(c.Control), curvePt(c.Point))
		case CubicTo:
			bp.CubicTo(curvePt(c.Control1), curvePt(c.Control2), curvePt(c.Point))
		case Close:
			bp.ClosePath()
		}
	}
	return bp
}

func curvePt(p Point) curve.Point { return curve.Pt(p.X, p.Y) }

// PathBounds returns the tight bounding box of the curves described by
// cmds, taking curve extrema into account rather than control points.
// A path without segments has a zero Rect.
func PathBounds(cmds []PathCommand) Rect {
	bp := toBezPath(cmds)
	if !bp.HasSegments() {
		return Rect{}
	}
	r := bp.BoundingBox()
	return Rect{MinX: r.MinX(), MinY: r.MinY(), MaxX: r.MaxX(), MaxY: r.MaxY()}
}
