package warp

import "math"

// Amplitudes a strength of 1 maps to.
const (
	// MaxOffset is the largest vertical offset of the offset warps, in pixels.
	MaxOffset = 100.0

	// MaxBulgeGain is the largest extra vertical scale of the scaling warps.
	// At the text center a gain g scales by 1+g.
	MaxBulgeGain = 2.0

	// WaveLength is the divisor applied to x before taking the sine, so one
	// period spans 2π·WaveLength pixels.
	WaveLength = 40.0
)

// offset returns the pixel amplitude of an offset warp.
func (c *Context) offset() float64 { return c.Strength * MaxOffset }

// bell is 1 at the text center and 0 at both edges.
func (c *Context) bell(x float64) float64 {
	n := c.NormX(x)
	return 1 - n*n
}

func arcLowerWarp(p Point, ctx *Context) Point {
	return Pt(p.X, p.Y+ctx.offset()*ctx.bell(p.X))
}

func arcUpperWarp(p Point, ctx *Context) Point {
	return Pt(p.X, p.Y-ctx.offset()*ctx.bell(p.X))
}

func waveWarp(p Point, ctx *Context) Point {
	return Pt(p.X, p.Y+ctx.offset()*math.Sin(p.X/WaveLength))
}

func riseWarp(p Point, ctx *Context) Point {
	return Pt(p.X, p.Y-ctx.offset()*ctx.NormX(p.X))
}

// staggerWarp moves each glyph rigidly along a sine of its center.
func staggerWarp(p Point, ctx *Context) Point {
	return Pt(p.X, p.Y+ctx.offset()*math.Sin(ctx.GlyphCenterX/WaveLength))
}

// bulgeScale returns the vertical scale factor minus one at x.
func (c *Context) bulgeScale(x float64) float64 {
	return c.Strength * MaxBulgeGain * c.bell(x)
}

// bulgeWarp scales y about the anchor line. y + (y-A)·(s-1) equals
// A + (y-A)·s and keeps y exact when s == 1 or y == A.
func bulgeWarp(p Point, ctx *Context) Point {
	return Pt(p.X, p.Y+(p.Y-ctx.AnchorY)*ctx.bulgeScale(p.X))
}

// bulgeDownWarp only scales points below the anchor line.
func bulgeDownWarp(p Point, ctx *Context) Point {
	if p.Y <= ctx.AnchorY {
		return p
	}
	return bulgeWarp(p, ctx)
}
