package tracking

import (
	"context"
	"errors"
	"image"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource replays frames; a nil entry yields ErrEmptyFrame. After the
// script runs out it keeps returning empty frames.
type fakeSource struct {
	mu     sync.Mutex
	frames []image.Image
	reads  int
	closed bool
}

func (f *fakeSource) Next() (image.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if len(f.frames) == 0 {
		return nil, ErrEmptyFrame
	}
	img := f.frames[0]
	f.frames = f.frames[1:]
	if img == nil {
		return nil, ErrEmptyFrame
	}
	return img, nil
}

func (f *fakeSource) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeSource) remaining() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.frames)
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.FrameInterval = 0
	cfg.RetryDelay = 0
	return cfg
}

func TestProcessSkipsEmptyMatch(t *testing.T) {
	var cell Cell
	tr := New(&fakeSource{}, &cell, testConfig(), zerolog.Nop())

	c, ok := tr.Process(frame(10, 10, image.Pt(2, 3), image.Pt(6, 7)))
	require.True(t, ok)
	assert.InDelta(t, 0.4, c.X, 1e-6)

	_, ok = tr.Process(frame(10, 10))
	assert.False(t, ok)

	got, ok := cell.Load()
	require.True(t, ok, "previous value must survive a miss")
	assert.Equal(t, c, got)
	assert.Equal(t, uint64(2), tr.frames)
	assert.Equal(t, uint64(1), tr.misses)
	assert.Equal(t, uint64(1), tr.published)
}

func TestRunPublishesAndCloses(t *testing.T) {
	src := &fakeSource{frames: []image.Image{
		nil,
		frame(10, 10, image.Pt(2, 3), image.Pt(6, 7)),
		nil,
		frame(10, 10),
	}}
	var cell Cell
	tr := New(src, &cell, testConfig(), zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tr.Run(ctx) }()

	require.Eventually(t, func() bool { return src.remaining() == 0 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	got, ok := cell.Load()
	require.True(t, ok)
	assert.InDelta(t, 0.4, got.X, 1e-6)
	assert.InDelta(t, 0.5, got.Y, 1e-6)

	src.mu.Lock()
	defer src.mu.Unlock()
	assert.True(t, src.closed)
}

func TestRunCancelledBeforeStart(t *testing.T) {
	src := &fakeSource{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(src, &Cell{}, DefaultConfig(), zerolog.Nop()).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, src.reads)
	assert.True(t, src.closed)
}

func TestSleep(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	assert.True(t, sleep(ctx, time.Millisecond))
	cancel()
	assert.False(t, sleep(ctx, time.Hour))
	assert.False(t, sleep(ctx, 0))
	assert.True(t, errors.Is(ctx.Err(), context.Canceled))
}
