package tracking

import (
	"context"
	"errors"
	"image"
	"time"

	"github.com/rs/zerolog"
)

// ErrEmptyFrame is returned by a FrameSource when a read produced no image.
// The tracker treats it as transient.
var ErrEmptyFrame = errors.New("empty frame")

// FrameSource yields successive video frames.
type FrameSource interface {
	Next() (image.Image, error)
	Close() error
}

type Config struct {
	Enabled       bool          `mapstructure:"enabled"`
	Device        int           `mapstructure:"device"`
	FallbackVideo string        `mapstructure:"fallback_video"`
	FrameInterval time.Duration `mapstructure:"frame_interval"`
	RetryDelay    time.Duration `mapstructure:"retry_delay"`
	Range         HSVRange      `mapstructure:"range"`
}

func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		Device:        0,
		FallbackVideo: "resources/video.mkv",
		FrameInterval: 100 * time.Millisecond,
		RetryDelay:    10 * time.Millisecond,
		Range:         DefaultSkinRange(),
	}
}

// Tracker is the producer side of the centroid cell.
type Tracker struct {
	src  FrameSource
	cell *Cell
	cfg  Config
	log  zerolog.Logger

	frames, misses, published uint64
}

// New returns a tracker that publishes centroids from src into cell.
func New(src FrameSource, cell *Cell, cfg Config, log zerolog.Logger) *Tracker {
	return &Tracker{
		src:  src,
		cell: cell,
		cfg:  cfg,
		log:  log.With().Str("component", "tracker").Logger(),
	}
}

// Process thresholds one frame and publishes its centroid. A frame without
// matching pixels leaves the cell untouched.
func (t *Tracker) Process(img image.Image) (Centroid, bool) {
	t.frames++
	c, ok := FindCentroid(img, t.cfg.Range)
	if !ok {
		t.misses++
		return Centroid{}, false
	}
	t.cell.Store(c)
	t.published++
	return c, true
}

// Run reads frames until ctx is cancelled, then closes the source. A read
// already in progress is not interrupted.
func (t *Tracker) Run(ctx context.Context) error {
	defer func() {
		if err := t.src.Close(); err != nil {
			t.log.Warn().Err(err).Msg("close video source")
		}
		t.log.Info().
			Uint64("frames", t.frames).
			Uint64("published", t.published).
			Uint64("misses", t.misses).
			Msg("tracker stopped")
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}
		img, err := t.src.Next()
		if err != nil {
			if !errors.Is(err, ErrEmptyFrame) {
				t.log.Debug().Err(err).Msg("frame read failed")
			}
			if !sleep(ctx, t.cfg.RetryDelay) {
				return nil
			}
			continue
		}

		if c, ok := t.Process(img); ok {
			t.log.Trace().Stringer("centroid", c).Msg("published")
		}
		if !sleep(ctx, t.cfg.FrameInterval) {
			return nil
		}
	}
}

// sleep waits for d or until ctx is done; it reports false on cancellation.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
