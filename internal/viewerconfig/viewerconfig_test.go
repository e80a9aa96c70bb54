package viewerconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"level-viewer/internal/graphics"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefault_MatchesWindowDefaults(t *testing.T) {
	p := Default()

	cfg, err := p.WindowConfig()
	require.NoError(t, err)
	assert.Equal(t, graphics.DefaultWindowConfig(), cfg)
	assert.Equal(t, graphics.Black, p.ClearColor())
	assert.Equal(t, 1, p.Window.SwapInterval)
	assert.False(t, p.ShowFPS)
	assert.False(t, p.ShowMemAlloc)
}

func TestLoadFile_Missing(t *testing.T) {
	p, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 1600
  height: 900
show_fps: true
`)

	p, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 1600, p.Window.Width)
	assert.Equal(t, 900, p.Window.Height)
	assert.Equal(t, graphics.DefaultTitle, p.Window.Title)
	assert.Equal(t, 1, p.Window.SwapInterval)
	assert.True(t, p.ShowFPS)
	assert.Equal(t, "info", p.LogLevel)
}

func TestLoadFile_Invalid(t *testing.T) {
	path := writeConfig(t, "window: [this is: not a map")

	p, err := LoadFile(path)

	assert.Error(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadFile_SanitizesOutOfRange(t *testing.T) {
	path := writeConfig(t, `
window:
  title: ""
  width: -5
  height: 300
  context_version_major: 0
  swap_interval: -1
  clear_color: [2, -1, 0.5, 1]
stats_interval: 0
`)

	p, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, graphics.DefaultTitle, p.Window.Title)
	assert.Equal(t, graphics.DefaultWidth, p.Window.Width)
	assert.Equal(t, graphics.DefaultHeight, p.Window.Height)
	assert.Equal(t, graphics.DefaultContextVersionMajor, p.Window.ContextVersionMajor)
	assert.Equal(t, 1, p.Window.SwapInterval)
	assert.Equal(t, [4]float32{1, 0, 0.5, 1}, p.Window.ClearColor)
	assert.Equal(t, 60, p.StatsInterval)
}

func TestSaveFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "viewer.yaml")
	want := Default()
	want.Window.Title = "Level 1"
	want.ShowMemAlloc = true

	require.NoError(t, SaveFile(path, want))
	got, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWindowConfig_CopiesWindowSection(t *testing.T) {
	p := Default()
	p.Window.Title = "Custom"
	p.Window.Width = 1024
	p.Window.ContextVersionMajor = 3
	p.Window.ContextVersionMinor = 3

	cfg, err := p.WindowConfig()
	require.NoError(t, err)

	assert.Equal(t, graphics.WindowConfig{
		Title:               "Custom",
		Width:               1024,
		Height:              480,
		ContextVersionMajor: 3,
		ContextVersionMinor: 3,
	}, cfg)
}
