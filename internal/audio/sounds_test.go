package audio

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLengths(t *testing.T) {
	tests := []struct {
		kind   SoundKind
		frames int
	}{
		{SoundCoin, 2*seconds(0.07) + seconds(0.2)},
		{SoundCrash, seconds(0.6)},
		{SoundGameOver, seconds(1.2)},
		{SoundSelect, seconds(0.065)},
	}
	for _, tt := range tests {
		buf := Generate(tt.kind)
		require.Len(t, buf, tt.frames*bytesPerFrame, "kind %d", tt.kind)
	}
	assert.Nil(t, Generate(SoundKind(99)))
}

func TestGenerateSamplesBounded(t *testing.T) {
	for _, kind := range []SoundKind{SoundCoin, SoundCrash, SoundGameOver, SoundSelect} {
		buf := Generate(kind)
		var peak float64
		for i := 0; i+4 <= len(buf); i += 4 {
			v := float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[i:])))
			require.False(t, math.IsNaN(v))
			require.LessOrEqual(t, math.Abs(v), 1.0)
			peak = math.Max(peak, math.Abs(v))
		}
		assert.Greater(t, peak, 0.01, "kind %d is silent", kind)
	}
}

func TestGameOverGlidesDown(t *testing.T) {
	buf := Generate(SoundGameOver)
	n := len(buf) / bytesPerFrame
	sample := func(i int) float64 {
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[i*bytesPerFrame:])))
	}
	// Zero crossings per window fall as the pitch drops.
	crossings := func(from, to int) int {
		c := 0
		for i := from + 1; i < to; i++ {
			if (sample(i-1) < 0) != (sample(i) < 0) {
				c++
			}
		}
		return c
	}
	w := seconds(0.1)
	early := crossings(seconds(0.05), seconds(0.05)+w)
	late := crossings(n/2, n/2+w)
	assert.Greater(t, early, late)
}

func TestFramesSetsBothChannels(t *testing.T) {
	f := newFrames(2)
	f.set(1, 0.5)
	for ch := 0; ch < ChannelCount; ch++ {
		bits := binary.LittleEndian.Uint32(f[bytesPerFrame+4*ch:])
		assert.Equal(t, float32(0.5), math.Float32frombits(bits))
	}
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(f[0:]))
}

func TestNilPlayerIsSilent(t *testing.T) {
	var p *Player
	assert.NotPanics(t, func() { p.Play(SoundCoin) })
}

func TestEnvelope(t *testing.T) {
	e := envelope{attack: 0.1, decay: 0.2, sustain: 0.4, release: 0.3}
	assert.InDelta(t, 0.5, e.at(0.05), 1e-9)
	assert.InDelta(t, 1.0, e.at(0.1), 1e-9)
	assert.InDelta(t, 0.4, e.at(0.5), 1e-9)
	assert.InDelta(t, 0.2, e.at(0.85), 1e-9)
	assert.InDelta(t, 0.0, e.at(1.0), 1e-9)
}

func TestNoiseRange(t *testing.T) {
	n := noise{s: 1}
	for range 10000 {
		v := n.next()
		require.True(t, v >= -1 && v < 1, "noise out of range: %v", v)
	}
}
