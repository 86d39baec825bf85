package warp

import "golang.org/x/text/language"

// Type identifies a warp function.
type Type string

// Registered warp types.
const (
	ArcLower  Type = "arcLower"
	Wave      Type = "wave"
	Bulge     Type = "bulge"
	BulgeDown Type = "bulgeDown"
	ArcUpper  Type = "arcUpper"
	Rise      Type = "rise"
	Stagger   Type = "stagger"
)

// Context is the layout information a warp function sees. It is computed
// once per render pass from the whole glyph sequence before any point is
// moved; only GlyphCenterX changes from glyph to glyph.
type Context struct {
	// TotalWidth is the sum of all glyph advances.
	TotalWidth float64

	// CenterX is the horizontal center of the text, TotalWidth/2.
	CenterX float64

	// Strength is the normalized warp strength in [0, 1].
	Strength float64

	// AnchorY is the fixed line the scaling warps expand away from.
	AnchorY float64

	// GlyphCenterX is the horizontal center of the glyph being warped.
	GlyphCenterX float64
}

// NormX maps x to the text's normalized horizontal position: -1 at the
// left edge, 0 at the center, 1 at the right edge. It is 0 for text
// without width.
func (c *Context) NormX(x float64) float64 {
	if c.TotalWidth == 0 {
		return 0
	}
	return (x - c.CenterX) / (c.TotalWidth / 2)
}

// Func is a pure geometric transform. It must not keep state between calls.
type Func func(p Point, ctx *Context) Point

// Warp is a registered warp function and its metadata.
type Warp struct {
	Type Type

	// Label is the English display name.
	Label string

	// Transform maps a single point.
	Transform Func

	// AnchorOffset places the anchor line of scaling warps relative to the
	// baseline, in ems (negative is above the baseline).
	AnchorOffset float64

	labelZH string
}

// labelTags are the languages labels exist in, in matcher order.
var labelTags = []language.Tag{language.English, language.Chinese}

var labelMatcher = language.NewMatcher(labelTags)

// LocalizedLabel returns the label best matching the preferred languages.
// English is used when nothing matches.
func (w Warp) LocalizedLabel(prefs ...language.Tag) string {
	if len(prefs) == 0 {
		return w.Label
	}
	_, idx, conf := labelMatcher.Match(prefs...)
	if conf == language.No || labelTags[idx] != language.Chinese || w.labelZH == "" {
		return w.Label
	}
	return w.labelZH
}

// registry holds every warp in display order.
var registry = []Warp{
	{Type: ArcLower, Label: "Arc Lower", labelZH: "下弧形", Transform: arcLowerWarp},
	{Type: Wave, Label: "Wave", labelZH: "波浪形", Transform: waveWarp},
	{Type: Bulge, Label: "Bulge", labelZH: "上膨胀形", Transform: bulgeWarp},
	{Type: BulgeDown, Label: "Bulge Down", labelZH: "下膨胀形", Transform: bulgeDownWarp, AnchorOffset: -0.625},
	{Type: ArcUpper, Label: "Arc Upper", labelZH: "上弧形", Transform: arcUpperWarp},
	{Type: Rise, Label: "Rise", labelZH: "上升形", Transform: riseWarp},
	{Type: Stagger, Label: "Stagger", labelZH: "错落形", Transform: staggerWarp},
}

var registryIndex = func() map[Type]int {
	m := make(map[Type]int, len(registry))
	for i, w := range registry {
		m[w.Type] = i
	}
	return m
}()

// Lookup returns the warp registered for t.
func Lookup(t Type) (Warp, error) {
	i, ok := registryIndex[t]
	if !ok {
		return Warp{}, &UnknownWarpTypeError{Type: t}
	}
	return registry[i], nil
}

// Types returns all registered warp types in display order.
func Types() []Type {
	types := make([]Type, len(registry))
	for i, w := range registry {
		types[i] = w.Type
	}
	return types
}

// Warps returns all registered warps in display order.
func Warps() []Warp {
	return append([]Warp(nil), registry...)
}
