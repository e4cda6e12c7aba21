// Package logging builds the zerolog loggers used across the game.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lallassu/skyflyer/internal/tracking"
)

// ParseLevel converts a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New returns a human-readable console logger writing to w.
func New(w io.Writer, level string) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	return zerolog.New(out).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// Status is the once-per-second console summary.
type Status struct {
	FPS      int
	Score    int
	View     string
	Tracking bool
	Centroid tracking.Centroid
	HasFix   bool
}

// Log writes the status line at info level.
func (s Status) Log(log zerolog.Logger) {
	ev := log.Info().
		Int("fps", s.FPS).
		Int("score", s.Score).
		Str("view", s.View).
		Bool("tracking", s.Tracking)
	if s.HasFix {
		ev = ev.Stringer("centroid", s.Centroid)
	} else {
		ev = ev.Str("centroid", "none")
	}
	ev.Msg("status")
}
