package warp

import (
	"errors"
	"math"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/warp/text"
)

func newTestSource(t testing.TB) *text.FontSource {
	t.Helper()
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}
	t.Cleanup(func() { _ = src.Close() })
	return src
}

// scaledAdvance returns the advance of r at size, computed directly from
// the font.
func scaledAdvance(t *testing.T, src *text.FontSource, r rune, size float64) float64 {
	t.Helper()
	gid, err := src.GlyphIndex(r)
	if err != nil {
		t.Fatal(err)
	}
	o, err := src.Outline(gid)
	if err != nil {
		t.Fatal(err)
	}
	return o.Advance * size / float64(src.UnitsPerEm())
}

func totalAdvance(glyphs []Glyph) float64 {
	var w float64
	for _, g := range glyphs {
		w += g.Advance
	}
	return w
}

func TestExtract_Empty(t *testing.T) {
	glyphs, err := NewOutlineExtractor().Extract(newTestSource(t), "", 80, 150)
	if err != nil {
		t.Fatalf("Extract(\"\") error = %v", err)
	}
	if len(glyphs) != 0 {
		t.Errorf("Extract(\"\") = %d glyphs, want 0", len(glyphs))
	}
}

func TestExtract_WidthIsSumOfAdvances(t *testing.T) {
	src := newTestSource(t)
	glyphs, err := NewOutlineExtractor().Extract(src, "AB", 80, 150)
	if err != nil {
		t.Fatal(err)
	}
	if len(glyphs) != 2 {
		t.Fatalf("got %d glyphs, want 2", len(glyphs))
	}

	a := scaledAdvance(t, src, 'A', 80)
	b := scaledAdvance(t, src, 'B', 80)
	if got := totalAdvance(glyphs); math.Abs(got-(a+b)) > 1e-9 {
		t.Errorf("total width = %v, want %v", got, a+b)
	}
	if glyphs[0].X != 0 {
		t.Errorf("first glyph at x=%v, want 0", glyphs[0].X)
	}
	if math.Abs(glyphs[1].X-a) > 1e-9 {
		t.Errorf("second glyph at x=%v, want %v", glyphs[1].X, a)
	}
	if want := glyphs[1].X + glyphs[1].Advance/2; glyphs[1].CenterX() != want {
		t.Errorf("CenterX() = %v, want %v", glyphs[1].CenterX(), want)
	}
}

func TestExtract_ScalesWithFontSize(t *testing.T) {
	src := newTestSource(t)
	e := NewOutlineExtractor()

	small, err := e.Extract(src, "W", 40, 150)
	if err != nil {
		t.Fatal(err)
	}
	large, err := e.Extract(src, "W", 80, 150)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(large[0].Advance-2*small[0].Advance) > 1e-9 {
		t.Errorf("advance at 80 = %v, want twice %v", large[0].Advance, small[0].Advance)
	}
}

func TestExtract_SitsOnBaseline(t *testing.T) {
	src := newTestSource(t)
	glyphs, err := NewOutlineExtractor().Extract(src, "H", 80, 150)
	if err != nil {
		t.Fatal(err)
	}

	b := PathBounds(glyphs[0].Commands)
	// H has no descender: its bottom is the baseline and its top is the
	// cap height above it.
	if math.Abs(b.MaxY-150) > 0.5 {
		t.Errorf("bottom of H at y=%v, want 150", b.MaxY)
	}
	if b.MinY >= 150-40 || b.MinY < 150-80 {
		t.Errorf("top of H at y=%v, want between 70 and 110", b.MinY)
	}
}

func TestExtract_ContoursAreClosed(t *testing.T) {
	src := newTestSource(t)
	// "O" and "B" have several contours.
	glyphs, err := NewOutlineExtractor().Extract(src, "OB", 80, 150)
	if err != nil {
		t.Fatal(err)
	}

	for _, g := range glyphs {
		verbs := Verbs(g.Commands)
		if !strings.HasPrefix(verbs, "M") || !strings.HasSuffix(verbs, "Z") {
			t.Errorf("%q: verbs %q do not start with M and end with Z", g.Rune, verbs)
		}
		if moves, closes := strings.Count(verbs, "M"), strings.Count(verbs, "Z"); moves != closes || moves < 2 {
			t.Errorf("%q: %d contours and %d closes, want equal and at least 2", g.Rune, moves, closes)
		}
		if strings.Contains(verbs, "ZZ") {
			t.Errorf("%q: empty contour in %q", g.Rune, verbs)
		}
		if i := strings.Index(verbs[1:], "M"); i >= 0 && verbs[i] != 'Z' {
			t.Errorf("%q: second contour not preceded by Z in %q", g.Rune, verbs)
		}
	}
}

func TestExtract_SpaceHasAdvanceOnly(t *testing.T) {
	src := newTestSource(t)
	glyphs, err := NewOutlineExtractor().Extract(src, "A B", 80, 150)
	if err != nil {
		t.Fatal(err)
	}
	if len(glyphs) != 3 {
		t.Fatalf("got %d glyphs, want 3", len(glyphs))
	}
	if len(glyphs[1].Commands) != 0 {
		t.Errorf("space has %d commands, want 0", len(glyphs[1].Commands))
	}
	if glyphs[1].Advance <= 0 {
		t.Errorf("space advance = %v, want > 0", glyphs[1].Advance)
	}
}

func TestExtract_Normalization(t *testing.T) {
	src := newTestSource(t)
	const decomposed = "e\u0301"

	glyphs, err := NewOutlineExtractor().Extract(src, decomposed, 80, 150)
	if err != nil {
		t.Fatal(err)
	}
	if len(glyphs) != 1 || glyphs[0].Rune != '\u00e9' {
		t.Errorf("normalized extraction = %d glyphs, want a single precomposed e", len(glyphs))
	}

	raw, err := NewRawOutlineExtractor().Extract(src, decomposed, 80, 150)
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) != 2 {
		t.Errorf("raw extraction = %d glyphs, want 2", len(raw))
	}
}

func TestExtract_MissingCharacterUsesNotdef(t *testing.T) {
	buf := captureLogs(t)
	src := newTestSource(t)

	glyphs, err := NewOutlineExtractor().Extract(src, "\U000F0000", 80, 150)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(glyphs) != 1 || glyphs[0].GID != 0 {
		t.Fatalf("got %+v, want one .notdef glyph", glyphs)
	}
	if !strings.Contains(buf.String(), ".notdef") {
		t.Errorf("missing character was not logged: %q", buf.String())
	}
}

func TestExtract_Errors(t *testing.T) {
	closed := newTestSource(t)
	_ = closed.Close()

	tests := []struct {
		name string
		src  *text.FontSource
		size float64
		want error
	}{
		{"zero size", newTestSource(t), 0, ErrInvalidFontSize},
		{"negative size", newTestSource(t), -12, ErrInvalidFontSize},
		{"NaN size", newTestSource(t), math.NaN(), ErrInvalidFontSize},
		{"infinite size", newTestSource(t), math.Inf(1), ErrInvalidFontSize},
		{"nil source", nil, 80, ErrFontLoad},
		{"closed source", closed, 80, ErrFontLoad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOutlineExtractor().Extract(tt.src, "A", tt.size, 150)
			if !errors.Is(err, tt.want) {
				t.Errorf("Extract() error = %v, want %v", err, tt.want)
			}
		})
	}

	_, err := NewOutlineExtractor().Extract(closed, "A", 80, 150)
	if !errors.Is(err, text.ErrSourceClosed) {
		t.Errorf("closed source error %v does not wrap ErrSourceClosed", err)
	}
}
