package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iw2rmb/tagpill"
	"github.com/iw2rmb/tagpill/editor"
	"github.com/iw2rmb/tagpill/shaper"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("tagpill-geom", flag.ContinueOnError)
	fontSize := flags.Float64("font-size", 13, "Go Regular size in points at 72 dpi")
	width := flags.Int("width", 320, "content width in pixels")
	modeName := flags.String("mode", editor.ModeLine.String(), "layout mode: line or area")
	format := flags.String("format", "json", "output format: json or yaml")
	noCross := flags.Bool("no-cross", false, "lay out pills without delete glyphs")
	showVersion := flags.Bool("version", false, "print the version and exit")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: tagpill-geom [flags] tag...\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *showVersion {
		_, err := fmt.Fprintln(stdout, tagpill.VersionTag())
		return err
	}

	mode, ok := editor.ParseMode(*modeName)
	if !ok {
		return fmt.Errorf("unknown mode %q (want line or area)", *modeName)
	}
	if *width <= 0 {
		return fmt.Errorf("width must be positive, got %d", *width)
	}

	face, err := shaper.NewGoRegular(*fontSize)
	if err != nil {
		return err
	}

	g := computeGeometry(face, flags.Args(), geomOptions{Mode: mode, Width: *width, NoCross: *noCross})
	return writeGeometry(stdout, g, *format)
}
