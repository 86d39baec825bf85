package text

import (
	"fmt"
	"os"
	"sync"
)

// FontSource represents a loaded font file.
// FontSource is heavyweight and should be loaded once and shared across
// every render pass. Nothing mutates the parsed font after creation; the
// only mutable state is the outline cache.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	mu     sync.RWMutex
	parsed ParsedFont // nil after Close

	name     string
	upem     int
	outlines *Cache[GlyphID, *GlyphOutline]

	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is not retained after parsing.
//
// Options can be used to configure caching and parser backend.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser, err := getParser(config.parserName)
	if err != nil {
		return nil, err
	}
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}
	if parsed.UnitsPerEm() <= 0 {
		return nil, fmt.Errorf("text: invalid unitsPerEm %d", parsed.UnitsPerEm())
	}

	s := &FontSource{
		parsed:   parsed,
		name:     extractFontName(parsed),
		upem:     parsed.UnitsPerEm(),
		outlines: NewCache[GlyphID, *GlyphOutline](config.cacheLimit),
		config:   config,
	}
	s.addr = s // Self-reference for copy detection
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// Name returns the font name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Parser returns the name of the parser backend the source was loaded with.
func (s *FontSource) Parser() string {
	s.copyCheck()
	return s.config.parserName
}

// UnitsPerEm returns the font's design units per em.
func (s *FontSource) UnitsPerEm() int {
	s.copyCheck()
	return s.upem
}

// Closed reports whether Close has been called.
func (s *FontSource) Closed() bool {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parsed == nil
}

// GlyphIndex returns the glyph for r, or 0 (.notdef) if the font has none.
func (s *FontSource) GlyphIndex(r rune) (GlyphID, error) {
	parsed, err := s.font()
	if err != nil {
		return 0, err
	}
	return parsed.GlyphIndex(r), nil
}

// Outline returns the outline of gid in font units.
// Outlines are cached; the returned value must not be modified.
func (s *FontSource) Outline(gid GlyphID) (*GlyphOutline, error) {
	parsed, err := s.font()
	if err != nil {
		return nil, err
	}
	if o, ok := s.outlines.Get(gid); ok {
		return o, nil
	}
	o, err := parsed.GlyphOutline(gid)
	if err != nil {
		return nil, err
	}
	s.outlines.Set(gid, o)
	return o, nil
}

// CacheStats returns outline cache hits and misses.
func (s *FontSource) CacheStats() (hits, misses uint64) {
	s.copyCheck()
	return s.outlines.Stats()
}

// Close releases resources associated with the FontSource.
// Queries made after Close fail with ErrSourceClosed.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.parsed = nil
	s.outlines.Clear()
	return nil
}

// font returns the parsed font or ErrSourceClosed.
func (s *FontSource) font() (ParsedFont, error) {
	if s == nil {
		return nil, ErrSourceClosed
	}
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.parsed == nil {
		return nil, ErrSourceClosed
	}
	return s.parsed, nil
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}
	return "Unknown Font"
}
