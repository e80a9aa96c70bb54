//go:build !raylib

package main

import (
	"level-viewer/internal/graphics"
	"level-viewer/internal/graphics/glfwgl"
)

const backend = "glfw"

func newPlatform() (graphics.Platform, graphics.Painter) {
	p := glfwgl.New()
	return p, p
}
