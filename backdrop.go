// This file is part of the program "ScreenDoodle".
// Please see the LICENSE file for copyright information.

package main

import (
	"fmt"
	"image"
	"log"

	"github.com/kbinani/screenshot"
)

// captureBackdrop grabs what is currently on screen so the overlay can be
// cleared to it instead of a solid color. Has to run before the overlay is
// mapped, otherwise it captures itself.
func captureBackdrop(g geometry) (*image.RGBA, error) {
	if screenshot.NumActiveDisplays() == 0 {
		return nil, fmt.Errorf("no active displays found")
	}
	img, err := screenshot.CaptureRect(image.Rect(0, 0, g.Width, g.Height))
	if err != nil {
		return nil, fmt.Errorf("failed to capture backdrop: %w", err)
	}
	log.Printf("Captured %dx%d backdrop\n", img.Bounds().Dx(), img.Bounds().Dy())
	return img, nil
}

func displayGeometry() (geometry, error) {
	if screenshot.NumActiveDisplays() == 0 {
		return geometry{}, fmt.Errorf("no active displays found")
	}
	b := screenshot.GetDisplayBounds(0)
	return newGeometry(b.Dx(), b.Dy()), nil
}
