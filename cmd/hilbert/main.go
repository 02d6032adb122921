package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vasalvit/hilbert"
	"github.com/vasalvit/hilbert/internal/cli"
	"github.com/vasalvit/hilbert/render"
)

func main() {
	fs := cli.NewFlagSet(os.Args[0])
	opt, err := cli.ParseArgs(fs, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelWarn
	if opt.Verbose {
		level = slog.LevelDebug
	}
	hilbert.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	curve, err := hilbert.NewCurve(opt.Level,
		hilbert.WithMirrored(opt.Mirrored),
		hilbert.WithMaxLevel(opt.MaxLevel))
	if err != nil {
		hilbert.Logger().Error("build curve", "err", err)
		os.Exit(1)
	}

	w := bufio.NewWriter(os.Stdout)
	if err := write(w, curve, opt); err != nil {
		hilbert.Logger().Error("write output", "format", opt.Format, "err", err)
		os.Exit(1)
	}
	if err := w.Flush(); err != nil {
		hilbert.Logger().Error("flush output", "err", err)
		os.Exit(1)
	}
}

func write(w io.Writer, curve *hilbert.Curve, opt cli.Options) error {
	vp := render.Viewport{Width: opt.Size, Height: opt.Size, Padding: opt.Padding, FlipY: true}

	switch opt.Format {
	case cli.FormatPNG:
		return render.EncodePNG(w, curve, vp)
	case cli.FormatPoints:
		for _, p := range curve.Points {
			if _, err := fmt.Fprintf(w, "%d %d\n", p.X, p.Y); err != nil {
				return err
			}
		}
		return nil
	case cli.FormatInstructions:
		_, err := fmt.Fprintln(w, hilbert.FormatInstructions(curve.Instructions))
		return err
	default:
		return render.NewSvg(curve, vp).Encode(w)
	}
}
