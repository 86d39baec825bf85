package warp

import (
	"errors"
	"strings"
	"testing"
)

func TestRender_Empty(t *testing.T) {
	res, err := Render(RenderRequest{Text: "", Warp: ArcLower, Strength: 0.5}, newTestSource(t))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if res.PathData != "" {
		t.Errorf("PathData = %q, want empty", res.PathData)
	}
	if res.ViewBoxWidth != 40 || res.ViewBoxHeight != 500 {
		t.Errorf("viewBox = %vx%v, want 40x500", res.ViewBoxWidth, res.ViewBoxHeight)
	}
	if res.Glyphs != 0 || !res.Bounds.Empty() {
		t.Errorf("empty render = %v with bounds %+v", res, res.Bounds)
	}
}

func TestRender_Default(t *testing.T) {
	src := newTestSource(t)
	req := DefaultRequest()

	res, err := Render(req, src)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if res.Glyphs != len(req.Text) {
		t.Errorf("Glyphs = %d, want %d", res.Glyphs, len(req.Text))
	}
	if res.ViewBoxWidth != res.TotalWidth+DefaultMargin {
		t.Errorf("ViewBoxWidth = %v, want TotalWidth+%v", res.ViewBoxWidth, DefaultMargin)
	}
	if res.PathData != SerializePath(res.Path, DefaultPrecision) {
		t.Error("PathData does not match the serialized Path")
	}
	if !strings.HasPrefix(res.PathData, "M ") || !strings.HasSuffix(res.PathData, " Z") {
		t.Errorf("PathData = %.40q..., want a closed path", res.PathData)
	}
	if res.Bounds.Empty() || res.Bounds.MinX < 0 || res.Bounds.MaxX > res.ViewBoxWidth {
		t.Errorf("Bounds = %+v outside viewBox width %v", res.Bounds, res.ViewBoxWidth)
	}
}

func TestRender_Options(t *testing.T) {
	src := newTestSource(t)
	req := RenderRequest{Text: "Go", Warp: Wave, Strength: 0.1}

	base, err := Render(req, src)
	if err != nil {
		t.Fatal(err)
	}
	big, err := Render(req, src,
		WithFontSize(160),
		WithMargin(0),
		WithViewportHeight(900),
		WithPrecision(1),
	)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(big.TotalWidth, 2*base.TotalWidth) {
		t.Errorf("TotalWidth at 160px = %v, want %v", big.TotalWidth, 2*base.TotalWidth)
	}
	if big.ViewBoxWidth != Viewport(big.TotalWidth, 0) || big.ViewBoxHeight != 900 {
		t.Errorf("viewBox = %vx%v, want %vx900", big.ViewBoxWidth, big.ViewBoxHeight, big.TotalWidth)
	}
	if big.PathData != SerializePath(big.Path, 1) {
		t.Error("WithPrecision was not applied")
	}
}

func TestRender_ViewportFollowsMargin(t *testing.T) {
	src := newTestSource(t)
	for _, margin := range []float64{0, 10, DefaultMargin, 75.5} {
		for _, s := range []string{"", "Go"} {
			res, err := Render(RenderRequest{Text: s, Warp: Rise, Strength: 0.1}, src, WithMargin(margin))
			if err != nil {
				t.Fatal(err)
			}
			if want := Viewport(res.TotalWidth, margin); res.ViewBoxWidth != want {
				t.Errorf("margin %v, text %q: ViewBoxWidth = %v, want %v", margin, s, res.ViewBoxWidth, want)
			}
		}
	}
}

func TestRender_ErrorsBeforeFontUse(t *testing.T) {
	// A nil font would fail extraction; validation must fail first.
	tests := []struct {
		name string
		req  RenderRequest
		want error
	}{
		{"unknown type", RenderRequest{Text: "A", Warp: "melt", Strength: 0.5}, ErrUnknownWarpType},
		{"bad strength", RenderRequest{Text: "A", Warp: Wave, Strength: 2}, ErrInvalidStrength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Render(tt.req, nil); !errors.Is(err, tt.want) {
				t.Errorf("Render() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Render(RenderRequest{Text: "A", Warp: Wave}, nil); !errors.Is(err, ErrFontLoad) {
		t.Errorf("Render(nil font) error = %v, want ErrFontLoad", err)
	}
}

func TestRender_WithExtractor(t *testing.T) {
	src := newTestSource(t)
	req := RenderRequest{Text: "e\u0301", Warp: Bulge, Strength: 0.3}

	res, err := Render(req, src, WithExtractor(NewRawOutlineExtractor()))
	if err != nil {
		t.Fatal(err)
	}
	if res.Glyphs != 2 {
		t.Errorf("Glyphs = %d, want 2 with the raw extractor", res.Glyphs)
	}
}

func TestRenderResult_WriteSVG(t *testing.T) {
	res := RenderResult{
		PathData:      "M 0 0 L 10 0 L 5 8 Z",
		ViewBoxWidth:  50.25,
		ViewBoxHeight: 500,
	}

	var sb strings.Builder
	if err := res.WriteSVG(&sb, `hot"pink`); err != nil {
		t.Fatalf("WriteSVG() error = %v", err)
	}
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 50.25 500">` + "\n" +
		`  <path d="M 0 0 L 10 0 L 5 8 Z" fill="hot&#34;pink"/>` + "\n" +
		`</svg>` + "\n"
	if got := sb.String(); got != want {
		t.Errorf("WriteSVG() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderResult_String(t *testing.T) {
	res := RenderResult{Glyphs: 2, Path: make([]PathCommand, 7), ViewBoxWidth: 140}
	if got, want := res.String(), "RenderResult{glyphs=2 commands=7 width=140}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
