package tiling

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/tilemaze/sat"
)

// Options configures Encode and Solve.
//   - Logger: receives debug-level progress; defaults to a discarding logger.
//   - OnStats: if non-nil, called once with the instance size after encoding
//     and before solving.
//   - Overhang: keep placements that hang outside the region (default true).
//     With Overhang false only fully-inside placements get a variable, so a
//     solution is an exact tiling of the region itself.
type Options struct {
	Logger   *log.Logger
	OnStats  func(sat.Stats)
	Overhang bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with a discarding logger and no callback.
func DefaultOptions() Options {
	return Options{
		Logger:   log.New(io.Discard),
		OnStats:  nil,
		Overhang: true,
	}
}

// WithLogger routes progress logs to l. A nil l keeps the default.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStatsCallback installs fn as the stats callback.
func WithStatsCallback(fn func(sat.Stats)) Option {
	return func(o *Options) { o.OnStats = fn }
}

// WithoutOverhang restricts the encoding to placements fully inside the region.
func WithoutOverhang() Option {
	return func(o *Options) { o.Overhang = false }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
