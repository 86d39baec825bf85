package warp

import (
	"context"

	"github.com/gogpu/warp/text"
)

// FontLoader produces a loaded font. It is the only blocking step of the
// system; everything downstream of a loaded font is synchronous.
type FontLoader func(ctx context.Context) (*text.FontSource, error)

// FileLoader loads the font file at path.
func FileLoader(path string, opts ...text.SourceOption) FontLoader {
	return func(ctx context.Context) (*text.FontSource, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		src, err := text.NewFontSourceFromFile(path, opts...)
		if err != nil {
			return nil, &FontLoadError{Path: path, Err: err}
		}
		return src, nil
	}
}

// BytesLoader parses font data that is already in memory.
func BytesLoader(data []byte, opts ...text.SourceOption) FontLoader {
	return func(ctx context.Context) (*text.FontSource, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		src, err := text.NewFontSource(data, opts...)
		if err != nil {
			return nil, &FontLoadError{Err: err}
		}
		return src, nil
	}
}

// FontPromise is a font that is being loaded in the background.
// The load happens exactly once; every Await observes the same result.
type FontPromise struct {
	done chan struct{}
	src  *text.FontSource
	err  error
}

// LoadFont starts load in a new goroutine and returns immediately.
func LoadFont(ctx context.Context, load FontLoader) *FontPromise {
	p := &FontPromise{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		p.src, p.err = load(ctx)
		if p.err != nil {
			Logger().Warn("warp: font load failed", "err", p.err)
			return
		}
		Logger().Debug("warp: font loaded", "name", p.src.Name(), "parser", p.src.Parser())
	}()
	return p
}

// LoadedFont wraps an already loaded font in a resolved promise.
func LoadedFont(src *text.FontSource) *FontPromise {
	p := &FontPromise{done: make(chan struct{}), src: src}
	close(p.done)
	return p
}

// Done returns a channel that is closed once loading has finished.
func (p *FontPromise) Done() <-chan struct{} {
	return p.done
}

// Await blocks until the font is loaded or ctx is done.
func (p *FontPromise) Await(ctx context.Context) (*text.FontSource, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-p.done:
		return p.src, p.err
	}
}
