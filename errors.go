package warp

import (
	"errors"
	"fmt"
)

// Sentinel errors for the warp package.
var (
	// ErrFontLoad matches every *FontLoadError.
	ErrFontLoad = errors.New("warp: font load failed")

	// ErrUnknownWarpType matches every *UnknownWarpTypeError.
	ErrUnknownWarpType = errors.New("warp: unknown warp type")

	// ErrInvalidFontSize is returned when the font size is not positive.
	ErrInvalidFontSize = errors.New("warp: font size must be positive")

	// ErrInvalidStrength is returned when strength is outside [0, 1].
	ErrInvalidStrength = errors.New("warp: strength must be in [0, 1]")

	// ErrSuperseded is returned by Renderer.Submit when a newer request
	// arrived before this one could be delivered.
	ErrSuperseded = errors.New("warp: request superseded")
)

// FontLoadError reports a font asset that could not be read or parsed, or
// a font that is no longer usable.
type FontLoadError struct {
	// Path is the asset location or font name, if known.
	Path string
	Err  error
}

func (e *FontLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("warp: font load failed: %v", e.Err)
	}
	return fmt.Sprintf("warp: font load failed for %s: %v", e.Path, e.Err)
}

func (e *FontLoadError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrFontLoad) true.
func (e *FontLoadError) Is(target error) bool { return target == ErrFontLoad }

// UnknownWarpTypeError is returned for a warp type that is not registered.
type UnknownWarpTypeError struct {
	Type Type
}

func (e *UnknownWarpTypeError) Error() string {
	return fmt.Sprintf("warp: unknown warp type %q", string(e.Type))
}

// Is makes errors.Is(err, ErrUnknownWarpType) true.
func (e *UnknownWarpTypeError) Is(target error) bool { return target == ErrUnknownWarpType }
