package spannify

import (
	"github.com/mattn/go-runewidth"
)

// Default values applied by NewConfig.
const (
	DefaultTabwidth = 2
	DefaultSkip     = 2
	DefaultLevel    = LevelInfo
)

// Config holds the formatting and filtering rules of a Spanner.
//
// A Config is treated as immutable once attached: the With* methods return
// modified copies, and Spanner.WithConfig produces a new Spanner rather than
// mutating a live one. This keeps concurrent readers race-free without any
// synchronization on the config itself.
type Config struct {
	// Tabwidth is the number of display columns each depth level consumes.
	Tabwidth int
	// Skip is the frequency of bar glyphs: a bar is drawn at column i when
	// i%Skip == 0. Skip 0 disables all bars, including the enter/exit
	// marker slot.
	Skip int
	// Depthmap picks the bar glyph for a column. Nil falls back to the
	// default four-glyph cycle.
	Depthmap DepthMap
	// Colormap optionally colors glyphs per column. Nil means no color.
	Colormap ColorMap
	// Level is the minimum severity a span must carry to be emitted.
	Level Level
}

// NewConfig returns the default configuration: tabwidth 2, skip 2, the
// default depthmap cycle, no colors, minimum level info.
func NewConfig() Config {
	return Config{
		Tabwidth: DefaultTabwidth,
		Skip:     DefaultSkip,
		Depthmap: DefaultDepthmap,
		Level:    DefaultLevel,
	}
}

// DefaultDepthmap cycles through '|', '¦', '┆' and '┊' by depth.
func DefaultDepthmap(depth int) rune {
	glyphs := [...]rune{'|', '¦', '┆', '┊'}
	return glyphs[depth%len(glyphs)]
}

// WithTabwidth returns a copy of the config with the tabwidth replaced.
func (c Config) WithTabwidth(tabwidth int) Config {
	c.Tabwidth = tabwidth
	return c
}

// WithSkip returns a copy of the config with the bar frequency replaced.
func (c Config) WithSkip(skip int) Config {
	c.Skip = skip
	return c
}

// WithDepthmap returns a copy of the config with the depthmap replaced.
func (c Config) WithDepthmap(depthmap DepthMap) Config {
	c.Depthmap = depthmap
	return c
}

// WithColormap returns a copy of the config with the colormap replaced.
func (c Config) WithColormap(colormap ColorMap) Config {
	c.Colormap = colormap
	return c
}

// WithLevel returns a copy of the config with the minimum level replaced.
func (c Config) WithLevel(level Level) Config {
	c.Level = level
	return c
}

// glyph renders the bar glyph for a column, colored when a colormap is set.
// Glyphs that do not occupy exactly one display column would shear the tree,
// so they are replaced with '|'.
func (c *Config) glyph(depth int) string {
	var r rune
	if c.Depthmap != nil {
		r = c.Depthmap(depth)
	} else {
		r = DefaultDepthmap(depth)
	}
	if runewidth.RuneWidth(r) != 1 {
		r = '|'
	}
	return c.colorize(depth, string(r))
}

// marker renders the enter/exit glyph slot for a line at the given depth.
func (c *Config) marker(depth int, glyph rune) string {
	if c.Skip <= 0 || depth%c.Skip != 0 {
		return " "
	}
	return c.colorize(depth, string(glyph))
}

func (c *Config) colorize(depth int, s string) string {
	if c.Colormap == nil {
		return s
	}
	col := c.Colormap(depth)
	if col == nil {
		return s
	}
	return col.Sprint(s)
}
