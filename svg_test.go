package warp

import (
	"math"
	"testing"
)

func TestSerializePath(t *testing.T) {
	tests := []struct {
		name string
		cmds []PathCommand
		prec int
		want string
	}{
		{"empty", nil, 3, ""},
		{"close only", []PathCommand{Close{}}, 3, "Z"},
		{
			"all kinds",
			[]PathCommand{
				MoveTo{Point: Pt(1, 2)},
				LineTo{Point: Pt(3.5, 4.25)},
				QuadTo{Control: Pt(5, 6), Point: Pt(7, 8)},
				CubicTo{Control1: Pt(9, 10), Control2: Pt(11, 12), Point: Pt(13, 14)},
				Close{},
			},
			3,
			"M 1 2 L 3.5 4.25 Q 5 6, 7 8 C 9 10, 11 12, 13 14 Z",
		},
		{
			"rounding",
			[]PathCommand{MoveTo{Point: Pt(1.23456, 150.0004)}},
			3,
			"M 1.235 150",
		},
		{
			"negative zero",
			[]PathCommand{MoveTo{Point: Pt(math.Copysign(0, -1), -0.0001)}},
			3,
			"M 0 0",
		},
		{
			"negative",
			[]PathCommand{LineTo{Point: Pt(-12.5, -0.125)}},
			3,
			"L -12.5 -0.125",
		},
		{
			"zero precision",
			[]PathCommand{LineTo{Point: Pt(100, 2.6)}, LineTo{Point: Pt(-0.4, 10)}},
			0,
			"L 100 3 L 0 10",
		},
		{
			"negative precision",
			[]PathCommand{LineTo{Point: Pt(1.7, 20)}},
			-2,
			"L 2 20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SerializePath(tt.cmds, tt.prec); got != tt.want {
				t.Errorf("SerializePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestViewport(t *testing.T) {
	tests := []struct {
		width, margin, want float64
	}{
		{0, DefaultMargin, 40},
		{312.5, DefaultMargin, 352.5},
		{0, 10, 10},
		{100, 0, 100},
	}
	for _, tt := range tests {
		if got := Viewport(tt.width, tt.margin); got != tt.want {
			t.Errorf("Viewport(%v, %v) = %v, want %v", tt.width, tt.margin, got, tt.want)
		}
	}
}

func BenchmarkSerializePath(b *testing.B) {
	glyphs, err := NewOutlineExtractor().Extract(newTestSource(b), "HAVE FUN", DefaultFontSize, DefaultBaseline)
	if err != nil {
		b.Fatal(err)
	}
	cmds := flatten(glyphs)

	b.ReportAllocs()
	for b.Loop() {
		_ = SerializePath(cmds, DefaultPrecision)
	}
}
