// Package audio plays short procedurally generated cues through oto.
package audio

import (
	"bytes"
	"encoding/binary"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2

	bytesPerFrame = 4 * ChannelCount
)

// SoundKind identifies a sound effect.
type SoundKind int

const (
	SoundCoin SoundKind = iota
	SoundCrash
	SoundGameOver
	SoundSelect
)

// Player owns the output context. A nil *Player is valid and silent.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64

	active atomic.Int32 // cues currently playing
}

// maxVoices limits simultaneous cues to avoid speaker clipping.
const maxVoices = 4

// New opens the output device. volume is clamped to [0,1].
func New(volume float64) (*Player, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	return &Player{ctx: ctx, ready: ready, volume: math.Max(0, math.Min(1, volume))}, nil
}

// Play starts a cue in the background. It drops the cue while the device is
// still initializing or too many cues are playing.
func (p *Player) Play(kind SoundKind) {
	if p == nil || p.volume <= 0 {
		return
	}
	select {
	case <-p.ready:
	default:
		return
	}
	pcm := Generate(kind)
	if len(pcm) == 0 {
		return
	}
	if p.active.Add(1) > maxVoices {
		p.active.Add(-1)
		return
	}
	go func() {
		defer p.active.Add(-1)
		voice := p.ctx.NewPlayer(bytes.NewReader(pcm))
		defer voice.Close()
		voice.SetVolume(p.volume)
		voice.Play()
		for voice.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
	}()
}

// frames is an interleaved float32 LE stereo buffer addressed by frame.
type frames []byte

func newFrames(n int) frames { return make(frames, n*bytesPerFrame) }

// set writes v to every channel of frame i.
func (f frames) set(i int, v float64) {
	bits := math.Float32bits(float32(v))
	off := i * bytesPerFrame
	for ch := 0; ch < ChannelCount; ch++ {
		binary.LittleEndian.PutUint32(f[off+4*ch:], bits)
	}
}

// mixdown saturates a float mix into a frame buffer.
func mixdown(mix []float64) []byte {
	out := newFrames(len(mix))
	for i, v := range mix {
		out.set(i, math.Tanh(v))
	}
	return out
}

// envelope is an ADSR shape over normalized progress; attack, decay and
// release are fractions of the cue length.
type envelope struct {
	attack, decay, sustain, release float64
}

func (e envelope) at(p float64) float64 {
	if p < e.attack {
		return p / e.attack
	}
	p -= e.attack
	if p < e.decay {
		return 1 - (1-e.sustain)*p/e.decay
	}
	rel := 1 - e.attack - e.release // sustain end, measured from the attack end
	if p < rel {
		return e.sustain
	}
	return e.sustain * math.Max(0, 1-(p-rel)/e.release)
}

// fmTone is a two-operator FM sample at time t.
func fmTone(t, carrier, ratio, index float64) float64 {
	w := 2 * math.Pi * carrier * t
	return math.Sin(w + index*math.Sin(w*ratio))
}

// noise is a xorshift32 white noise source in [-1,1).
type noise struct{ s uint32 }

func (n *noise) next() float64 {
	n.s ^= n.s << 13
	n.s ^= n.s >> 17
	n.s ^= n.s << 5
	return float64(n.s)/(1<<31) - 1
}
