package flight

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// splitmix64 is a fast, high-quality 64-bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func clampF(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// wrapDegrees maps any angle into [0, 360).
func wrapDegrees(a float32) float32 {
	w := float32(math.Mod(float64(a), 360))
	if w < 0 {
		w += 360
	}
	if w >= 360 {
		w = 0
	}
	return w
}

// inRange reports whether a and b are at most r apart.
func inRange(a, b mgl32.Vec3, r float32) bool {
	return a.Sub(b).Len() <= r
}

// Rand is a tiny deterministic RNG (xorshift64*).
type Rand struct {
	s uint64
}

// NewRand mixes seed so that nearby seeds give unrelated sequences.
func NewRand(seed uint64) *Rand {
	seed = splitmix64(seed)
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}

func (r *Rand) RangeF(min, max float32) float32 {
	if max <= min {
		return min
	}
	return min + (max-min)*float32(r.Float64())
}

// Vec3 draws each component from its own [lo, hi] interval.
func (r *Rand) Vec3(xlo, xhi, ylo, yhi, zlo, zhi float32) mgl32.Vec3 {
	return mgl32.Vec3{r.RangeF(xlo, xhi), r.RangeF(ylo, yhi), r.RangeF(zlo, zhi)}
}
