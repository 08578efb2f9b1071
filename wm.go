// This file is part of the program "ScreenDoodle".
// Please see the LICENSE file for copyright information.

package main

import (
	"fmt"
	"log"
	"time"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/motif"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// screenGeometry reports the size of the default X screen, falling back to
// the first display kbinani/screenshot knows about.
func screenGeometry() (geometry, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		log.Printf("Couldn't connect to X for screen size: %v\n", err)
		return displayGeometry()
	}
	defer xu.Conn().Close()

	screen := xu.Screen()
	if screen.WidthInPixels == 0 || screen.HeightInPixels == 0 {
		return geometry{}, fmt.Errorf("X screen reports size %dx%d", screen.WidthInPixels, screen.HeightInPixels)
	}
	return newGeometry(int(screen.WidthInPixels), int(screen.HeightInPixels)), nil
}

// overlayStates are requested from the window manager once the overlay is
// mapped; shiny has no way to ask for them at creation time.
var overlayStates = []string{
	"_NET_WM_STATE_FULLSCREEN",
	"_NET_WM_STATE_ABOVE",
	"_NET_WM_STATE_SKIP_TASKBAR",
	"_NET_WM_STATE_SKIP_PAGER",
}

// raiseOverlay looks for our window by title and turns it into a borderless
// always-on-top popup covering the whole screen.
func raiseOverlay(title string, g geometry) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		log.Printf("Couldn't create XU xdg conn: %+v\n", err)
		return
	}
	defer xu.Conn().Close()

	for i := 0; i < 100; i++ {
		if win, ok := findWindow(xu, title); ok {
			decorateOverlay(xu, win, title, g)
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
	log.Printf("Gave up looking for window '%s'\n", title)
}

func findWindow(xu *xgbutil.XUtil, title string) (xproto.Window, bool) {
	wnds, _ := ewmh.ClientListGet(xu)
	for _, w := range wnds {
		n, _ := ewmh.WmNameGet(xu, w)
		if n == title {
			return w, true
		}
	}
	return 0, false
}

func decorateOverlay(xu *xgbutil.XUtil, win xproto.Window, title string, g geometry) {
	//if we have *NO* WM_CLASS the taskbar and window rules can't match us
	if _, err := icccm.WmClassGet(xu, win); err != nil {
		class := icccm.WmClass{Class: title, Instance: title}
		if err := icccm.WmClassSet(xu, win, &class); err != nil {
			log.Printf("Couldn't set WM_CLASS: %v\n", err)
		}
	}

	hints := motif.Hints{Flags: motif.HintDecorations, Decoration: motif.DecorationNone}
	if err := motif.WmHintsSet(xu, win, &hints); err != nil {
		log.Printf("Couldn't remove decorations: %v\n", err)
	}

	xwindow.New(xu, win).MoveResize(0, 0, g.Width, g.Height)

	for _, state := range overlayStates {
		if err := ewmh.WmStateReq(xu, win, ewmh.StateAdd, state); err != nil {
			log.Printf("Couldn't request %s: %v\n", state, err)
		}
	}
	if err := ewmh.ActiveWindowReq(xu, win); err != nil {
		log.Printf("Couldn't activate overlay: %v\n", err)
	}
	log.Printf("Overlay window 0x%x placed at 0,0 %dx%d\n", win, g.Width, g.Height)
}
