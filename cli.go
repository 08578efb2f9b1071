package main

import (
	"flag"
	"fmt"
	"io"
	"os"
)

type CLIOpts struct {
	doLog        bool
	lineWidth    int
	backdrop     string
	showGeometry bool
	version      bool
}

func parseCLIOpts(args []string) (CLIOpts, error) {
	var opt CLIOpts
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.BoolVar(&opt.doLog, "log", false, "Print debugging output to stdout")
	fs.IntVar(&opt.lineWidth, "w", -1, "Initial brush width in pixels")
	fs.StringVar(&opt.backdrop, "b", "", "Backdrop to draw on: 'solid' or 'screen' (snapshot of the desktop)")
	fs.BoolVar(&opt.showGeometry, "g", false, "Print the detected screen and color bar geometry and exit")
	fs.BoolVar(&opt.version, "version", false, "Print the version and exit")
	if err := fs.Parse(args); err != nil {
		return opt, err
	}

	return opt, nil
}

// doCLI handles the options that override the config or exit before any
// window is created. It returns false when the program should stop.
func doCLI(opt CLIOpts, config *config, out io.Writer) bool {
	if opt.version {
		fmt.Fprintf(out, "%s %s (%s)\n", appName, version, distribution)
		return false
	}

	if opt.showGeometry {
		geo, err := screenGeometry()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Couldn't detect screen geometry: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(out, "Screen: %dx%d\n", geo.Width, geo.Height)
		fmt.Fprintf(out, "Color bar: %dpx high, gradient %dpx wide, clear button at x>%d\n",
			geo.BarHeight, geo.gradientSpan(), geo.gradientSpan())
		return false
	}

	if opt.lineWidth > 0 {
		config.LineWidth = opt.lineWidth
	}

	if opt.backdrop != "" {
		b := normalizeBackdrop(opt.backdrop)
		if b != opt.backdrop {
			fmt.Fprintf(os.Stderr, "Unknown backdrop '%s', using '%s'.\n", opt.backdrop, b)
		}
		config.Backdrop = b
	}

	return true
}
