// Package video opens the tracker's frame source: the first camera device,
// or a recorded clip when no camera is present.
package video

import (
	"fmt"
	"image"

	"github.com/rs/zerolog"
	"gocv.io/x/gocv"

	"github.com/lallassu/skyflyer/internal/tracking"
)

// Capture wraps an OpenCV capture as a tracking.FrameSource.
type Capture struct {
	vc   *gocv.VideoCapture
	mat  gocv.Mat
	file bool // looping recorded clip instead of a live device
	log  zerolog.Logger
}

var _ tracking.FrameSource = (*Capture)(nil)

// Open tries the camera device first and falls back to the clip at
// fallback. It fails only when neither can be opened.
func Open(device int, fallback string, log zerolog.Logger) (*Capture, error) {
	log = log.With().Str("component", "video").Logger()

	vc, err := gocv.VideoCaptureDevice(device)
	if err == nil && vc.IsOpened() {
		log.Info().Int("device", device).Msg("camera opened")
		return &Capture{vc: vc, mat: gocv.NewMat(), log: log}, nil
	}
	if vc != nil {
		vc.Close()
	}
	log.Warn().Err(err).Int("device", device).Str("fallback", fallback).Msg("no camera source, falling back to video")

	if fallback == "" {
		return nil, fmt.Errorf("open camera %d: no fallback video configured", device)
	}
	vc, err = gocv.VideoCaptureFile(fallback)
	if err != nil {
		return nil, fmt.Errorf("open fallback video %q: %w", fallback, err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("open fallback video %q: not opened", fallback)
	}
	log.Info().Str("file", fallback).Msg("video opened")
	return &Capture{vc: vc, mat: gocv.NewMat(), file: true, log: log}, nil
}

// Next reads one frame. At the end of a clip it rewinds so the clip loops.
func (c *Capture) Next() (image.Image, error) {
	if ok := c.vc.Read(&c.mat); !ok || c.mat.Empty() {
		if c.file {
			c.vc.Set(gocv.VideoCapturePosFrames, 0)
		}
		return nil, tracking.ErrEmptyFrame
	}
	img, err := c.mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("convert frame: %w", err)
	}
	return img, nil
}

func (c *Capture) Close() error {
	if err := c.mat.Close(); err != nil {
		c.vc.Close()
		return fmt.Errorf("release frame: %w", err)
	}
	if err := c.vc.Close(); err != nil {
		return fmt.Errorf("release capture: %w", err)
	}
	return nil
}
