package warp

import "math"

// Output is the result of warping a glyph sequence.
type Output struct {
	// Commands holds every glyph's warped commands in input order.
	Commands []PathCommand

	// TotalWidth is the sum of the glyph advances.
	TotalWidth float64
}

// Run warps glyphs with the warp registered for t.
//
// The layout context (total width, center, anchor) is computed from the
// whole sequence first; then every coordinate pair of every command is
// moved with that same context. Run never adds, drops or reorders
// commands, so the output has exactly the kinds and count of the input.
//
// An unknown t or a strength outside [0, 1] is rejected before any work is
// done. Empty input yields zero width and no commands.
func Run(glyphs []Glyph, t Type, strength float64, opts ...Option) (Output, error) {
	w, err := Lookup(t)
	if err != nil {
		return Output{}, err
	}
	if err := validateStrength(strength); err != nil {
		return Output{}, err
	}
	cfg := newConfig(opts)
	return run(glyphs, w, strength, &cfg), nil
}

func validateStrength(strength float64) error {
	if math.IsNaN(strength) || strength < 0 || strength > 1 {
		return ErrInvalidStrength
	}
	return nil
}

// run is Run after validation.
func run(glyphs []Glyph, w Warp, strength float64, cfg *config) Output {
	var total float64
	n := 0
	for _, g := range glyphs {
		total += g.Advance
		n += len(g.Commands)
	}

	ctx := Context{
		TotalWidth: total,
		CenterX:    total / 2,
		Strength:   strength,
		AnchorY:    cfg.anchorFor(w),
	}

	out := Output{TotalWidth: total}
	if n == 0 {
		return out
	}
	out.Commands = make([]PathCommand, 0, n)
	apply := func(p Point) Point { return w.Transform(p, &ctx) }
	for _, g := range glyphs {
		ctx.GlyphCenterX = g.CenterX()
		for _, cmd := range g.Commands {
			out.Commands = append(out.Commands, MapPoints(cmd, apply))
		}
	}
	return out
}
