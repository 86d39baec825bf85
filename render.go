package warp

import (
	"fmt"
	"html"
	"io"
	"strconv"

	"github.com/gogpu/warp/text"
)

// RenderRequest is everything a caller can vary between render passes.
type RenderRequest struct {
	Text     string
	Warp     Type
	Strength float64 // normalized, in [0, 1]
}

// DefaultRequest returns the request an interactive session starts with.
func DefaultRequest() RenderRequest {
	return RenderRequest{Text: "HAVE FUN", Warp: BulgeDown, Strength: 0.45}
}

// RenderResult is the warped text ready for a vector surface.
type RenderResult struct {
	// PathData is the SVG path description of the whole text.
	PathData string

	// ViewBoxWidth is Viewport(TotalWidth, margin).
	ViewBoxWidth float64

	// ViewBoxHeight is the configured fixed viewport height.
	ViewBoxHeight float64

	// TotalWidth is the sum of the glyph advances.
	TotalWidth float64

	// Bounds is the tight bounding box of the warped path.
	Bounds Rect

	// Path holds the warped commands PathData was serialized from.
	Path []PathCommand

	// Glyphs is the number of characters rendered.
	Glyphs int
}

// Render runs a complete pass: extract outlines for req.Text from src, warp
// them and serialize the result.
//
// Unknown warp types and invalid strengths are rejected before the font is
// touched. Empty text is not an error: it yields empty PathData and a
// viewport that is only the margin wide.
func Render(req RenderRequest, src *text.FontSource, opts ...Option) (RenderResult, error) {
	w, err := Lookup(req.Warp)
	if err != nil {
		return RenderResult{}, err
	}
	if err := validateStrength(req.Strength); err != nil {
		return RenderResult{}, err
	}
	cfg := newConfig(opts)

	glyphs, err := cfg.extractor.Extract(src, req.Text, cfg.fontSize, cfg.baselineY)
	if err != nil {
		return RenderResult{}, err
	}
	out := run(glyphs, w, req.Strength, &cfg)

	res := RenderResult{
		PathData:      SerializePath(out.Commands, cfg.precision),
		ViewBoxWidth:  Viewport(out.TotalWidth, cfg.margin),
		ViewBoxHeight: cfg.viewportHeight,
		TotalWidth:    out.TotalWidth,
		Bounds:        PathBounds(out.Commands),
		Path:          out.Commands,
		Glyphs:        len(glyphs),
	}

	Logger().Debug("warp: rendered",
		"warp", string(w.Type),
		"strength", req.Strength,
		"glyphs", res.Glyphs,
		"commands", len(res.Path),
		"width", res.TotalWidth,
	)
	return res, nil
}

// WriteSVG writes a standalone SVG document with the path filled in fill,
// which may be any SVG paint value.
func (r RenderResult) WriteSVG(w io.Writer, fill string) error {
	_, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s">`+"\n"+
			`  <path d="%s" fill="%s"/>`+"\n"+
			`</svg>`+"\n",
		formatNumber(r.ViewBoxWidth), formatNumber(r.ViewBoxHeight),
		r.PathData, html.EscapeString(fill),
	)
	return err
}

// formatNumber prints v with the default coordinate precision.
func formatNumber(v float64) string {
	return string(appendCoord(nil, v, DefaultPrecision))
}

// String implements fmt.Stringer for logging.
func (r RenderResult) String() string {
	return "RenderResult{glyphs=" + strconv.Itoa(r.Glyphs) +
		" commands=" + strconv.Itoa(len(r.Path)) +
		" width=" + formatNumber(r.ViewBoxWidth) + "}"
}
