package warp

import (
	"strconv"
	"strings"
)

// Viewport returns the viewport width needed for text of the given width:
// the width plus margin.
func Viewport(totalWidth, margin float64) float64 {
	return totalWidth + margin
}

// SerializePath converts cmds to an SVG path description.
//
// Tokens are joined by single spaces in command order:
//
//	M x y | L x y | Q x1 y1, x y | C x1 y1, x2 y2, x y | Z
//
// Coordinates are printed with at most precision decimals; trailing zeros
// are dropped and negative zero prints as 0. No commands yields "".
func SerializePath(cmds []PathCommand, precision int) string {
	if len(cmds) == 0 {
		return ""
	}
	precision = max(precision, 0)

	var sb strings.Builder
	sb.Grow(len(cmds) * 24)
	buf := make([]byte, 0, 32)
	pair := func(p Point) {
		buf = appendCoord(buf[:0], p.X, precision)
		buf = append(buf, ' ')
		buf = appendCoord(buf, p.Y, precision)
		sb.Write(buf)
	}

	for i, cmd := range cmds {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(cmd.Verb())
		switch c := cmd.(type) {
		case MoveTo:
			sb.WriteByte(' ')
			pair(c.Point)
		case LineTo:
			sb.WriteByte(' ')
			pair(c.Point)
		case QuadTo:
			sb.WriteByte(' ')
			pair(c.Control)
			sb.WriteString(", ")
			pair(c.Point)
		case CubicTo:
			sb.WriteByte(' ')
			pair(c.Control1)
			sb.WriteString(", ")
			pair(c.Control2)
			sb.WriteString(", ")
			pair(c.Point)
		case Close:
		}
	}
	return sb.String()
}

// appendCoord appends v with at most prec decimals, trimming trailing
// zeros and a trailing decimal point.
func appendCoord(dst []byte, v float64, prec int) []byte {
	start := len(dst)
	dst = strconv.AppendFloat(dst, v, 'f', prec, 64)
	if prec > 0 {
		for dst[len(dst)-1] == '0' {
			dst = dst[:len(dst)-1]
		}
		if dst[len(dst)-1] == '.' {
			dst = dst[:len(dst)-1]
		}
	}
	if string(dst[start:]) == "-0" {
		dst = append(dst[:start], '0')
	}
	return dst
}
