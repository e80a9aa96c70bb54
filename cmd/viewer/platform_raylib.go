//go:build raylib

package main

import (
	"level-viewer/internal/graphics"
	"level-viewer/internal/graphics/rlgfx"
)

const backend = "raylib"

func newPlatform() (graphics.Platform, graphics.Painter) {
	p := rlgfx.New()
	return p, p
}
