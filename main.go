// This file is part of the program "ScreenDoodle".
// Please see the LICENSE file for copyright information.

package main

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aarzilli/nucular"
	"github.com/aarzilli/nucular/style"
	"github.com/gogpu/gg"
)

var appName = "ScreenDoodle"

var version = "unknown"     // will be changed by build
var distribution = "custom" // ditto

func main() {
	opt, err := parseCLIOpts(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	setupLogging(opt.doLog)
	log.Printf("Application starting. Version: %s (%s)\n", version, distribution)

	initializeConfigIfNot()
	conf := readConfig()

	if !doCLI(opt, conf, os.Stdout) {
		return
	}

	geo, err := screenGeometry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't detect screen geometry: %v\n", err)
		os.Exit(1)
	}
	log.Printf("Screen %dx%d, color bar height %d\n", geo.Width, geo.Height, geo.BarHeight)

	ctx := doodlecontext{config: conf, geo: geo}
	ctx.canvas = newCanvas(geo.Width, geo.Height)
	if conf.Backdrop == backdropScreen {
		img, err := captureBackdrop(geo)
		if err != nil {
			log.Printf("Falling back to solid background: %v\n", err)
		} else {
			ctx.canvas.setBackdrop(img)
		}
	}
	ctx.doodle = newDoodle(ctx.canvas, geo, conf)

	wnd := nucular.NewMasterWindowSize(nucular.WindowNoScrollbar, appName, image.Point{geo.Width, geo.Height}, func(w *nucular.Window) {
		updatefn(&ctx, w)
	})
	ctx.masterWindow = &wnd
	wnd.SetStyle(overlayStyle(conf))

	go closeOnSignal(wnd)

	//shiny can't create override-redirect or fullscreen windows, so the
	//window manager is asked to make it one after it's mapped
	go raiseOverlay(appName, geo)
	wnd.Main()

	if conf.RememberBrush {
		conf.rememberBrush(ctx.doodle)
		writeConfig(conf)
	}
	log.Println("Exiting")
}

func setupLogging(doLog bool) {
	if !doLog {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(os.Stdout)
	gg.SetLogger(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn})))
}

// overlayStyle strips padding and spacing so the canvas widget covers the
// whole window and pointer coordinates match screen coordinates.
func overlayStyle(conf *config) *style.Style {
	st := style.FromTheme(style.DarkTheme, 1.0)
	st.NormalWindow.Padding = image.Point{}
	st.NormalWindow.Spacing = image.Point{}
	st.NormalWindow.Border = 0
	bg := conf.background()
	st.NormalWindow.Background = color.RGBA{uint8(bg.R * 255), uint8(bg.G * 255), uint8(bg.B * 255), 255}
	return st
}

func closeOnSignal(wnd nucular.MasterWindow) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	s := <-sig
	log.Printf("Received %v, closing\n", s)
	wnd.Close()
}
