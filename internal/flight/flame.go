package flight

import "github.com/go-gl/mathgl/mgl32"

// Flame is one exhaust particle. Its offset from the emitter is Drift*Age.
type Flame struct {
	Drift    mgl32.Vec3
	Age      float32
	Lifespan float32
}

// FlamePool is a fixed set of particles that are re-randomized in place once
// they outlive their lifespan. Nothing is ever allocated after creation.
type FlamePool struct {
	P    []Flame
	step float32
	rng  *Rand
}

// NewFlamePool spawns n particles aged by step per Update.
func NewFlamePool(n int, step float32, rng *Rand) *FlamePool {
	if n < 0 {
		n = 0
	}
	fp := &FlamePool{P: make([]Flame, n), step: step, rng: rng}
	for i := range fp.P {
		fp.respawn(&fp.P[i])
	}
	return fp
}

// Update ages every particle by one tick and recycles the expired ones.
func (fp *FlamePool) Update() {
	for i := range fp.P {
		f := &fp.P[i]
		f.Age += fp.step
		if f.Age > f.Lifespan {
			fp.respawn(f)
		}
	}
}

func (fp *FlamePool) respawn(f *Flame) {
	f.Drift = fp.rng.Vec3(-FlameSpread, FlameSpread, -FlameSpread, FlameSpread, FlameMinZ, FlameMaxZ)
	f.Age = fp.rng.RangeF(0.01, 0.02)
	f.Lifespan = fp.rng.RangeF(0.1, 0.5)
}
