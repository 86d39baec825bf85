// Package warp renders text as a single warped vector path.
//
// # Overview
//
// warp takes a string, extracts each character's glyph outline from a font
// and moves every anchor and control point of the outline through a
// parametric warp (arc, wave, bulge, ...). The result is an SVG path
// description plus the viewport needed to show it.
//
// # Quick Start
//
//	source, err := text.NewFontSource(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := warp.Render(warp.RenderRequest{
//	    Text:     "HAVE FUN",
//	    Warp:     warp.BulgeDown,
//	    Strength: 0.45,
//	}, source)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = res.WriteSVG(os.Stdout, "hotpink")
//
// # Pipeline
//
// Data flows strictly in one direction:
//
//	font + text -> OutlineExtractor -> Run (Registry) -> SerializePath
//
// Every stage returns new values; nothing is modified in place, so a font
// can be shared by any number of concurrent render passes.
//
// # Strength
//
// Strength is always a normalized value in [0, 1]. Offset warps map it to
// at most MaxOffset pixels, scaling warps to a gain of at most MaxBulgeGain.
// Strength 0 leaves every point where it was.
//
// # Coordinate System
//
// Path coordinates are in pixels with the origin at the top-left, X growing
// right and Y growing down, which is what SVG expects.
package warp
