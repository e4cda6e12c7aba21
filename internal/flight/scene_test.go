package flight

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/lallassu/skyflyer/internal/tracking"
)

func countKinds(items []Drawable) map[DrawKind]int {
	n := make(map[DrawKind]int)
	for _, d := range items {
		n[d.Kind]++
	}
	return n
}

func TestSceneCounts(t *testing.T) {
	tune := DefaultTuning()
	s := NewSession(tune, DefaultCameraTuning(), 11)

	got := countKinds(s.Scene(nil))
	want := map[DrawKind]int{
		DrawGround: 1,
		DrawCoin:   9,
		DrawHull:   1,
		DrawRotor:  1,
		DrawFlame:  100,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("scene (-want +got):\n%s", diff)
	}

	s.Coins[0].Cooldown = 10
	s.Score = 5
	got = countKinds(s.Scene(nil))
	assert.Equal(t, 8, got[DrawCoin])
	assert.Equal(t, 2, got[DrawBomb])
}

func TestSceneReusesBuffer(t *testing.T) {
	s := NewSession(DefaultTuning(), DefaultCameraTuning(), 11)
	buf := s.Scene(nil)
	n := len(buf)
	buf = s.Scene(buf)
	assert.Len(t, buf, n)
}

func TestSceneHullAtPlane(t *testing.T) {
	s := NewSession(DefaultTuning(), DefaultCameraTuning(), 11)
	s.Plane.Position = mgl32.Vec3{1, 2, 3}
	for _, d := range s.Scene(nil) {
		if d.Kind != DrawHull {
			continue
		}
		if diff := cmp.Diff(mgl32.Vec3{1, 2, 3}, d.Model.Col(3).Vec3(), approx); diff != "" {
			t.Errorf("hull translation (-want +got):\n%s", diff)
		}
	}
}

func TestViewMatrixModes(t *testing.T) {
	s := NewSession(DefaultTuning(), DefaultCameraTuning(), 11)
	assert.Equal(t, s.Camera.LookAt(), s.ViewMatrix())

	s.SetView(ViewOrbit)
	// The orbit eye sits one unit behind the plane along the camera front.
	eye := s.ViewMatrix().Inv().Col(3).Vec3()
	want := s.Plane.Position.Sub(s.Camera.Front())
	if diff := cmp.Diff(want, eye, approx); diff != "" {
		t.Errorf("orbit eye (-want +got):\n%s", diff)
	}

	s.SetView(ViewChase)
	assert.NotEqual(t, s.Camera.LookAt(), s.ViewMatrix())
}

func TestProjectionFollowsZoom(t *testing.T) {
	s := NewSession(DefaultTuning(), DefaultCameraTuning(), 11)
	s.Camera.Zoom = 45
	want := mgl32.Perspective(mgl32.DegToRad(45), 2, 0.1, 100)
	assert.Equal(t, want, s.Projection(2))
	assert.Equal(t, mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 100), s.Projection(0))
}

func TestFlamePoolRecycles(t *testing.T) {
	fp := NewFlamePool(50, 0.03, NewRand(5))
	for tick := range 200 {
		fp.Update()
		for i, f := range fp.P {
			assert.LessOrEqual(t, f.Age, f.Lifespan, "tick %d particle %d", tick, i)
			assert.True(t, f.Drift.Z() >= FlameMinZ && f.Drift.Z() <= FlameMaxZ)
			assert.True(t, f.Drift.X() >= -FlameSpread && f.Drift.X() <= FlameSpread)
		}
	}
	assert.Len(t, fp.P, 50)
}

func TestFlamePoolUpdatedByStep(t *testing.T) {
	tune := DefaultTuning()
	tune.MoveScale = 0
	s := newTestSession(t, tune, mgl32.Vec3{0, 2, 0}, 0, 0)
	before := append([]Flame(nil), s.Flames.P...)
	s.Step(tracking.Centroid{}, false)
	assert.NotEqual(t, before, s.Flames.P)
}

func TestTickerNoRemainderCarry(t *testing.T) {
	tk := NewTicker(DefaultTuning().TickInterval, 0)

	assert.False(t, tk.Due(0.010))
	assert.True(t, tk.Due(0.020))
	assert.False(t, tk.Due(0.030))
	// 0.016s after the last fire, not after 0.032.
	assert.False(t, tk.Due(0.034))
	assert.True(t, tk.Due(0.037))
	assert.True(t, tk.Due(1.0), "a long frame yields exactly one tick")
	assert.False(t, tk.Due(1.001))
}

func TestRandDeterministic(t *testing.T) {
	a, b := NewRand(123), NewRand(123)
	for range 100 {
		assert.Equal(t, a.NextU64(), b.NextU64())
	}
	r := NewRand(0)
	for range 1000 {
		v := r.RangeF(-2, 3)
		assert.True(t, v >= -2 && v <= 3, "RangeF out of range: %v", v)
	}
	assert.Equal(t, float32(4), r.RangeF(4, 4))
}
