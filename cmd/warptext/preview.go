package main

import (
	"image/color"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"

	"github.com/gogpu/warp"
)

// savePreview rasterizes the warped path onto a white canvas the size of
// the result's viewBox.
func savePreview(path string, res warp.RenderResult, fill string) error {
	dc := gg.NewContext(int(math.Ceil(res.ViewBoxWidth)), int(math.Ceil(res.ViewBoxHeight)))
	defer func() { _ = dc.Close() }()

	dc.ClearWithColor(gg.White)
	setFill(dc, fill)
	for _, cmd := range res.Path {
		switch c := cmd.(type) {
		case warp.MoveTo:
			dc.MoveTo(c.Point.X, c.Point.Y)
		case warp.LineTo:
			dc.LineTo(c.Point.X, c.Point.Y)
		case warp.QuadTo:
			dc.QuadraticTo(c.Control.X, c.Control.Y, c.Point.X, c.Point.Y)
		case warp.CubicTo:
			dc.CubicTo(c.Control1.X, c.Control1.Y, c.Control2.X, c.Control2.Y, c.Point.X, c.Point.Y)
		case warp.Close:
			dc.ClosePath()
		}
	}
	if err := dc.Fill(); err != nil {
		return err
	}
	return dc.SavePNG(path)
}

// setFill accepts the same fill values as the SVG output: a color keyword
// or a hex value.
func setFill(dc *gg.Context, fill string) {
	if strings.HasPrefix(fill, "#") {
		dc.SetHexColor(fill)
		return
	}
	c, ok := colornames.Map[strings.ToLower(fill)]
	if !ok {
		c = color.RGBA{A: 0xff}
	}
	dc.SetColor(c)
}
