package warp

// Defaults taken from the reference layout: 80px glyphs sitting on a
// baseline at y=150 inside a 500px tall viewport with a 40px margin.
const (
	DefaultFontSize       = 80.0
	DefaultBaseline       = 150.0
	DefaultMargin         = 40.0
	DefaultViewportHeight = 500.0

	// DefaultPrecision is the number of decimals emitted per coordinate.
	DefaultPrecision = 3
)

// Option configures extraction, warping and serialization.
//
// Example:
//
//	res, err := warp.Render(req, source,
//	    warp.WithFontSize(120),
//	    warp.WithBaseline(200),
//	)
type Option func(*config)

// config holds optional configuration shared by Render, Run and Renderer.
type config struct {
	fontSize       float64
	baselineY      float64
	margin         float64
	viewportHeight float64
	precision      int

	anchorY   float64
	hasAnchor bool

	extractor *OutlineExtractor
}

// defaultConfig returns the default configuration.
func defaultConfig() config {
	return config{
		fontSize:       DefaultFontSize,
		baselineY:      DefaultBaseline,
		margin:         DefaultMargin,
		viewportHeight: DefaultViewportHeight,
		precision:      DefaultPrecision,
	}
}

func newConfig(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if c.extractor == nil {
		c.extractor = defaultExtractor
	}
	return c
}

// WithFontSize sets the glyph size in pixels per em.
func WithFontSize(size float64) Option {
	return func(c *config) {
		c.fontSize = size
	}
}

// WithBaseline sets the y coordinate of the text baseline.
func WithBaseline(y float64) Option {
	return func(c *config) {
		c.baselineY = y
	}
}

// WithMargin sets the horizontal space added to the text width to get the
// viewport width.
func WithMargin(m float64) Option {
	return func(c *config) {
		c.margin = m
	}
}

// WithViewportHeight sets the fixed viewport height reported in results.
func WithViewportHeight(h float64) Option {
	return func(c *config) {
		c.viewportHeight = h
	}
}

// WithPrecision sets the number of decimals per serialized coordinate.
// Negative values are treated as 0.
func WithPrecision(decimals int) Option {
	return func(c *config) {
		c.precision = max(decimals, 0)
	}
}

// WithAnchorY fixes the anchor line of the scaling warps (bulge,
// bulgeDown) instead of deriving it from the baseline.
func WithAnchorY(y float64) Option {
	return func(c *config) {
		c.anchorY = y
		c.hasAnchor = true
	}
}

// WithExtractor sets the outline extractor used by Render.
func WithExtractor(e *OutlineExtractor) Option {
	return func(c *config) {
		c.extractor = e
	}
}

// anchorFor returns the anchor line for w under this configuration.
func (c *config) anchorFor(w Warp) float64 {
	if c.hasAnchor {
		return c.anchorY
	}
	return c.baselineY + w.AnchorOffset*c.fontSize
}
