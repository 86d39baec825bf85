// Command warptext renders a line of text bent by one of the warp functions
// and writes it as an SVG document, optionally with a PNG preview.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"

	"github.com/gogpu/warp"
	"github.com/gogpu/warp/text"
)

func main() {
	def := warp.DefaultRequest()
	var (
		input    = flag.String("text", def.Text, "text to render")
		warpType = flag.String("warp", string(def.Warp), "warp type (see -list)")
		strength = flag.Float64("strength", def.Strength, "warp strength in [0, 1]")
		fontName = flag.String("font", "", "font file or system font name (default Go Regular)")
		parser   = flag.String("parser", "ximage", "font parser backend: "+strings.Join(text.Parsers(), ", "))
		size     = flag.Float64("size", warp.DefaultFontSize, "font size in pixels")
		output   = flag.String("o", "-", "SVG output file, - for stdout")
		pngOut   = flag.String("png", "", "also write a PNG preview to this file")
		fill     = flag.String("fill", "hotpink", "fill color (SVG color name or #rrggbb)")
		lang     = flag.String("lang", "en", "language for -list labels")
		list     = flag.Bool("list", false, "list warp types and exit")
		timeout  = flag.Duration("timeout", 10*time.Second, "font load timeout")
		verbose  = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		warp.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *list {
		listWarps(os.Stdout, *lang)
		return
	}

	if err := checkParser(*parser); err != nil {
		log.Fatalf("Invalid -parser: %v", err)
	}
	load, err := fontLoader(*fontName, text.WithParser(*parser))
	if err != nil {
		log.Fatalf("Failed to find font: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	r := warp.NewRenderer(warp.LoadFont(ctx, load), warp.WithFontSize(*size))
	res, err := r.Submit(ctx, warp.RenderRequest{
		Text:     *input,
		Warp:     warp.Type(*warpType),
		Strength: *strength,
	})
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if err := writeSVG(*output, res, *fill); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	if *pngOut != "" {
		if err := savePreview(*pngOut, res, *fill); err != nil {
			log.Fatalf("Failed to save preview: %v", err)
		}
		log.Printf("Preview saved to %s (%s)\n", *pngOut, res)
	}
}

// fontLoader resolves name to a loader. An empty name selects the embedded
// Go Regular font; anything that is not an existing file is looked up among
// the system fonts.
func fontLoader(name string, opts ...text.SourceOption) (warp.FontLoader, error) {
	if name == "" {
		return warp.BytesLoader(goregular.TTF, opts...), nil
	}
	if _, err := os.Stat(name); err == nil {
		return warp.FileLoader(name, opts...), nil
	}
	path, err := findfont.Find(name)
	if err != nil {
		return nil, err
	}
	return warp.FileLoader(path, opts...), nil
}

// checkParser rejects parser names no backend is registered under.
func checkParser(name string) error {
	if !slices.Contains(text.Parsers(), name) {
		return &text.UnknownParserError{Name: name}
	}
	return nil
}

func listWarps(w io.Writer, lang string) {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	for _, wp := range warp.Warps() {
		fmt.Fprintf(w, "%-10s %s\n", wp.Type, wp.LocalizedLabel(tag))
	}
}

func writeSVG(path string, res warp.RenderResult, fill string) error {
	if path == "-" {
		return res.WriteSVG(os.Stdout, fill)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := res.WriteSVG(f, fill); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
