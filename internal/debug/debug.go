package debug

import (
	"fmt"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"level-viewer/internal/manager"
)

// DefaultInterval is the number of frames between two stats reports.
const DefaultInterval = 60

// Stats is a Manager that reports runtime debugging numbers (FPS, heap allocation) to the log.
// All reports are off by default.
type Stats struct {
	manager.Base

	ShowFPS      bool
	ShowMemAlloc bool
	// Interval is the number of frames between two reports; <= 0 means DefaultInterval.
	Interval int

	log   logrus.FieldLogger
	now   func() time.Time
	mem   func(*runtime.MemStats)
	start time.Time

	frames       uint64
	windowFrames int
	lastFPS      float64
	lastMem      runtime.MemStats
}

// New returns a Stats manager logging to log with all reports hidden.
func New(log logrus.FieldLogger) *Stats {
	return &Stats{log: log, now: time.Now, mem: runtime.ReadMemStats}
}

// SetShowFPS sets whether the frame rate is reported.
func (s *Stats) SetShowFPS(show bool) {
	s.ShowFPS = show
}

// SetShowMemAlloc sets whether heap allocation is reported.
func (s *Stats) SetShowMemAlloc(show bool) {
	s.ShowMemAlloc = show
}

// Frames returns the number of frames rendered since Initialise.
func (s *Stats) Frames() uint64 {
	return s.frames
}

// FPS returns the frame rate measured over the last completed interval (0 before the first one).
func (s *Stats) FPS() float64 {
	return s.lastFPS
}

// Initialise starts the measurement window.
func (s *Stats) Initialise() {
	s.frames = 0
	s.windowFrames = 0
	s.lastFPS = 0
	s.start = s.now()
}

// Render counts the frame. Numbers are only recomputed every Interval frames to keep the loop allocation free.
func (s *Stats) Render() {
	s.frames++
	s.windowFrames++
	if s.windowFrames < s.interval() {
		return
	}
	now := s.now()
	if elapsed := now.Sub(s.start); elapsed > 0 {
		s.lastFPS = float64(s.windowFrames) / elapsed.Seconds()
	}
	s.start = now
	s.windowFrames = 0

	if !s.ShowFPS && !s.ShowMemAlloc {
		return
	}
	fields := logrus.Fields{"frames": s.frames}
	if s.ShowFPS {
		fields["fps"] = fmt.Sprintf("%.1f", s.lastFPS)
	}
	if s.ShowMemAlloc {
		s.mem(&s.lastMem)
		fields["mem"] = fmt.Sprintf("%.2f MiB", float64(s.lastMem.Alloc)/(1024*1024))
	}
	s.log.WithFields(fields).Info("frame stats")
}

// Shutdown reports the total frame count.
func (s *Stats) Shutdown() {
	if s.ShowFPS || s.ShowMemAlloc {
		s.log.WithField("frames", s.frames).Info("frame stats final")
	}
}

func (s *Stats) interval() int {
	if s.Interval <= 0 {
		return DefaultInterval
	}
	return s.Interval
}
