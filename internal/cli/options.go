// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/vasalvit/hilbert"
)

// Output formats
const (
	FormatSVG          = "svg"
	FormatPNG          = "png"
	FormatPoints       = "points"
	FormatInstructions = "instructions"
)

// Options holds all CLI flags.
type Options struct {
	// Curve
	Level    int
	Mirrored bool
	MaxLevel int

	// Canvas
	Size    float64
	Padding float64

	// Output
	Format  string
	Verbose bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: draw the Hilbert curve of a given level to stdout

Usage of %s:
`, name, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options

	fs.IntVar(&opt.Level, "level", 2, "curve level (>= 0)")
	fs.BoolVar(&opt.Mirrored, "mirrored", false, "draw the reflected curve")
	fs.IntVar(&opt.MaxLevel, "max-level", hilbert.DefaultMaxLevel, "highest accepted level")
	fs.Float64Var(&opt.Size, "size", 300, "canvas width and height in pixels")
	fs.Float64Var(&opt.Padding, "padding", 10, "canvas margin in pixels")
	fs.StringVar(&opt.Format, "format", FormatSVG, "output format: svg|png|points|instructions")
	fs.BoolVar(&opt.Verbose, "verbose", false, "debug logging on stderr")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if fs.NArg() > 0 {
		return opt, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	switch opt.Format {
	case FormatSVG, FormatPNG, FormatPoints, FormatInstructions:
	default:
		return opt, fmt.Errorf("invalid --format %q", opt.Format)
	}
	if opt.Level < 0 {
		return opt, errors.New("--level must be >= 0")
	}
	if opt.Size <= 0 {
		return opt, errors.New("--size must be > 0")
	}
	if opt.Padding < 0 || 2*opt.Padding >= opt.Size {
		return opt, errors.New("--padding must be >= 0 and leave room on the canvas")
	}
	return opt, nil
}
