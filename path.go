package warp

// PathCommand is a single drawing instruction of a glyph outline.
//
// The set of implementations is closed: MoveTo, LineTo, QuadTo, CubicTo and
// Close. Each variant carries exactly the coordinate pairs it needs, so code
// that transforms or serializes commands switches on the concrete type.
type PathCommand interface {
	// Verb returns the SVG path letter of the command.
	Verb() byte

	isPathCommand()
}

// MoveTo starts a new contour at Point.
type MoveTo struct {
	Point Point
}

func (MoveTo) Verb() byte     { return 'M' }
func (MoveTo) isPathCommand() {}

// LineTo draws a straight line to Point.
type LineTo struct {
	Point Point
}

func (LineTo) Verb() byte     { return 'L' }
func (LineTo) isPathCommand() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) Verb() byte     { return 'Q' }
func (QuadTo) isPathCommand() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) Verb() byte     { return 'C' }
func (CubicTo) isPathCommand() {}

// Close closes the current contour.
type Close struct{}

func (Close) Verb() byte     { return 'Z' }
func (Close) isPathCommand() {}

// MapPoints returns a copy of cmd with fn applied to every coordinate pair
// it carries, control points first and endpoint last. The kind of the
// command never changes.
func MapPoints(cmd PathCommand, fn func(Point) Point) PathCommand {
	switch c := cmd.(type) {
	case MoveTo:
		return MoveTo{Point: fn(c.Point)}
	case LineTo:
		return LineTo{Point: fn(c.Point)}
	case QuadTo:
		return QuadTo{Control: fn(c.Control), Point: fn(c.Point)}
	case CubicTo:
		return CubicTo{Control1: fn(c.Control1), Control2: fn(c.Control2), Point: fn(c.Point)}
	case Close:
		return c
	default:
		panic("warp: unknown path command")
	}
}

// Verbs returns the verbs of cmds as a string, e.g. "MLLQZ".
func Verbs(cmds []PathCommand) string {
	b := make([]byte, len(cmds))
	for i, c := range cmds {
		b[i] = c.Verb()
	}
	return string(b)
}
