package game

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lallassu/skyflyer/internal/audio"
	"github.com/lallassu/skyflyer/internal/config"
	"github.com/lallassu/skyflyer/internal/flight"
	"github.com/lallassu/skyflyer/internal/logging"
	"github.com/lallassu/skyflyer/internal/tracking"
	"github.com/lallassu/skyflyer/internal/video"
)

// Run opens the window and drives the session until the window closes or the
// game ends. The tracker, when enabled, runs on its own goroutine and hands
// centroids to the frame loop through a single-slot cell.
func Run(cfg config.Config, log zerolog.Logger) (err error) {
	runtime.LockOSThread()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log = log.With().Str("session", uuid.NewString()).Logger()
	log.Info().Uint64("seed", seed).Bool("tracking", cfg.Tracking.Enabled).Msg("starting")

	ctx, cancel := context.WithCancel(context.Background())
	g, gctx := errgroup.WithContext(ctx)
	defer func() {
		cancel()
		if werr := g.Wait(); werr != nil && !errors.Is(werr, context.Canceled) {
			err = errors.Join(err, werr)
		}
	}()

	cell := &tracking.Cell{}
	if cfg.Tracking.Enabled {
		src, oerr := video.Open(cfg.Tracking.Device, cfg.Tracking.FallbackVideo, log)
		if oerr != nil {
			return fmt.Errorf("open video source: %w", oerr)
		}
		tr := tracking.New(src, cell, cfg.Tracking, log)
		g.Go(func() error { return tr.Run(gctx) })
	}

	window, err := initWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	r, err := NewRenderer()
	if err != nil {
		return err
	}
	defer r.Destroy()

	player, aerr := audio.New(cfg.Volume)
	if aerr != nil {
		log.Warn().Err(aerr).Msg("audio init failed, continuing without sound")
		player = nil
	}

	s := flight.NewSession(cfg.Flight, cfg.Camera, seed)
	s.HasTracker = cfg.Tracking.Enabled
	subscribe(s, player, window, log)

	in := NewInput()
	in.Attach(window, s)

	ticker := flight.NewTicker(cfg.Flight.TickInterval, glfw.GetTime())
	var (
		items      []flight.Drawable
		lastFrame  = glfw.GetTime()
		lastStatus = lastFrame
		frames     int
	)

	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := float32(now - lastFrame)
		lastFrame = now

		frames++
		if now-lastStatus >= 1 {
			c, ok := cell.Load()
			logging.Status{
				FPS:      frames,
				Score:    s.Score,
				View:     s.View.String(),
				Tracking: s.Tracking,
				Centroid: c,
				HasFix:   ok,
			}.Log(log)
			frames = 0
			lastStatus = now
		}

		if ticker.Due(now) {
			c, ok := cell.Load()
			s.Step(c, ok)
		}

		in.Process(window, s, cfg.Window, dt)

		fbW, fbH := window.GetFramebufferSize()
		aspect := float32(1)
		if fbH > 0 {
			aspect = float32(fbW) / float32(fbH)
		}
		items = s.Scene(items[:0])
		r.Draw(items, s.ViewMatrix(), s.Projection(aspect), s.Plane, fbW, fbH)

		window.SwapBuffers()
		glfw.PollEvents()
	}

	log.Info().Int("score", s.Score).Uint64("ticks", s.Ticks).Msg("shutting down")
	return nil
}

func subscribe(s *flight.Session, player *audio.Player, window *glfw.Window, log zerolog.Logger) {
	s.Events.Subscribe(flight.EventCoinPickup, func(e flight.Event) {
		player.Play(audio.SoundCoin)
		log.Info().Int("score", e.Score).Msg("coin collected")
	})
	s.Events.Subscribe(flight.EventGameOver, func(e flight.Event) {
		if e.Reason == flight.ReasonBoundary {
			player.Play(audio.SoundGameOver)
		} else {
			player.Play(audio.SoundCrash)
		}
		log.Info().Int("score", e.Score).Stringer("reason", e.Reason).Msg("game over")
		window.SetShouldClose(true)
	})
	s.Events.Subscribe(flight.EventViewChanged, func(e flight.Event) {
		player.Play(audio.SoundSelect)
		log.Debug().Stringer("view", e.View).Msg("view changed")
	})
	s.Events.Subscribe(flight.EventTrackingToggled, func(e flight.Event) {
		player.Play(audio.SoundSelect)
		log.Info().Bool("tracking", e.Tracking).Msg("tracking toggled")
	})
}
