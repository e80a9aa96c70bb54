package viewerconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"level-viewer/internal/graphics"
	"level-viewer/internal/logger"
)

// ConfigPath is the path to the viewer config file, relative to the process working directory.
const ConfigPath = "config/viewer.yaml"

// WindowPrefs is the window section of the config file.
type WindowPrefs struct {
	Title               string `yaml:"title"`
	Width               int    `yaml:"width"`
	Height              int    `yaml:"height"`
	ContextVersionMajor int    `yaml:"context_version_major"`
	ContextVersionMinor int    `yaml:"context_version_minor"`
	SwapInterval        int    `yaml:"swap_interval"`
	// ClearColor is RGBA in [0, 1].
	ClearColor [4]float32 `yaml:"clear_color,flow"`
}

// ViewerPrefs holds viewer preferences. Persisted across runs.
type ViewerPrefs struct {
	Window WindowPrefs `yaml:"window"`

	ShowFPS       bool `yaml:"show_fps"`
	ShowMemAlloc  bool `yaml:"show_memalloc"`
	StatsInterval int  `yaml:"stats_interval"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file,omitempty"`
}

// Default returns the preferences used when no config file exists:
// a 640x480 GL 2.0 window cleared to opaque black with vsync on, debug stats off.
func Default() ViewerPrefs {
	return ViewerPrefs{
		Window: WindowPrefs{
			Title:               graphics.DefaultTitle,
			Width:               graphics.DefaultWidth,
			Height:              graphics.DefaultHeight,
			ContextVersionMajor: graphics.DefaultContextVersionMajor,
			ContextVersionMinor: graphics.DefaultContextVersionMinor,
			SwapInterval:        1,
			ClearColor:          [4]float32{0, 0, 0, 1},
		},
		ShowFPS:       false,
		ShowMemAlloc:  false,
		StatsInterval: 60,
		LogLevel:      "info",
		LogFile:       logger.LogFilePath,
	}
}

// Load reads preferences from ConfigPath. See LoadFile.
func Load() (ViewerPrefs, error) {
	return LoadFile(ConfigPath)
}

// LoadFile reads preferences from path on top of Default(), so keys missing from the file
// keep their default. A missing file returns Default() and no error. An unreadable or
// invalid file returns Default() and the error. Out of range values fall back to their default.
func LoadFile(path string) (ViewerPrefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("viewerconfig: %w", err)
	}
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("viewerconfig: %s: %w", path, err)
	}
	p.sanitize()
	return p, nil
}

func (p *ViewerPrefs) sanitize() {
	def := Default()
	if p.Window.Title == "" {
		p.Window.Title = def.Window.Title
	}
	if p.Window.Width <= 0 || p.Window.Height <= 0 {
		p.Window.Width, p.Window.Height = def.Window.Width, def.Window.Height
	}
	if p.Window.ContextVersionMajor <= 0 || p.Window.ContextVersionMinor < 0 {
		p.Window.ContextVersionMajor = def.Window.ContextVersionMajor
		p.Window.ContextVersionMinor = def.Window.ContextVersionMinor
	}
	if p.Window.SwapInterval < 0 {
		p.Window.SwapInterval = def.Window.SwapInterval
	}
	for i, c := range p.Window.ClearColor {
		p.Window.ClearColor[i] = min(max(c, 0), 1)
	}
	if p.StatsInterval <= 0 {
		p.StatsInterval = def.StatsInterval
	}
	if p.LogLevel == "" {
		p.LogLevel = def.LogLevel
	}
}

// Save writes preferences to ConfigPath. See SaveFile.
func Save(p ViewerPrefs) error {
	return SaveFile(ConfigPath, p)
}

// SaveFile writes preferences to path, creating the parent directory if needed.
func SaveFile(path string, p ViewerPrefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// WindowConfig returns the window request for the graphics platform.
func (p ViewerPrefs) WindowConfig() (graphics.WindowConfig, error) {
	var cfg graphics.WindowConfig
	if err := copier.Copy(&cfg, &p.Window); err != nil {
		return graphics.DefaultWindowConfig(), fmt.Errorf("viewerconfig: window: %w", err)
	}
	return cfg, nil
}

// ClearColor returns the configured clear color.
func (p ViewerPrefs) ClearColor() graphics.Color {
	c := p.Window.ClearColor
	return graphics.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}
