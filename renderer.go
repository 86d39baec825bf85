package warp

import (
	"context"
	"sync"
	"sync/atomic"
)

// Renderer drives render passes for an interactive caller whose requests
// can arrive faster than the font loads.
//
// Every Submit is assigned a monotonically increasing id. A pass whose id
// is no longer the newest when its result is ready is discarded with
// ErrSuperseded, so a slow pass can never overwrite a newer result.
//
// Renderer is safe for concurrent use.
type Renderer struct {
	font *FontPromise
	opts []Option

	latest atomic.Uint64

	mu     sync.Mutex
	last   RenderResult
	lastID uint64
}

// NewRenderer creates a Renderer that renders with the font from p.
func NewRenderer(p *FontPromise, opts ...Option) *Renderer {
	return &Renderer{font: p, opts: opts}
}

// Submit makes req the newest request and renders it once the font is
// available.
//
// Requests with an unknown warp type or an invalid strength are rejected
// immediately and do not supersede pending requests.
//
// It returns ErrSuperseded if another Submit happened before this result
// could be delivered, a *FontLoadError if the font failed to load, and
// ctx.Err() if ctx ends while waiting for the font.
func (r *Renderer) Submit(ctx context.Context, req RenderRequest) (RenderResult, error) {
	if _, err := Lookup(req.Warp); err != nil {
		return RenderResult{}, err
	}
	if err := validateStrength(req.Strength); err != nil {
		return RenderResult{}, err
	}
	id := r.latest.Add(1)

	src, err := r.font.Await(ctx)
	if err != nil {
		return RenderResult{}, err
	}
	if r.latest.Load() != id {
		return RenderResult{}, r.superseded(id)
	}

	res, err := Render(req, src, r.opts...)
	if err != nil {
		return RenderResult{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.latest.Load() != id {
		return RenderResult{}, r.superseded(id)
	}
	r.last, r.lastID = res, id
	return res, nil
}

// Last returns the most recent delivered result. Callers can keep showing
// it while a newer request fails.
func (r *Renderer) Last() (RenderResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last, r.lastID != 0
}

func (r *Renderer) superseded(id uint64) error {
	Logger().Warn("warp: discarding stale render", "request", id, "latest", r.latest.Load())
	return ErrSuperseded
}
