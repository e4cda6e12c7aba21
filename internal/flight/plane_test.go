package flight

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestSpeedAt(t *testing.T) {
	const base = 8
	assert.Greater(t, SpeedAt(-45, base), SpeedAt(0, base))
	assert.Greater(t, SpeedAt(0, base), SpeedAt(45, base))
	assert.Equal(t, float32(base)/2, SpeedAt(60, base))
	assert.Equal(t, float32(base), SpeedAt(0, base))
	assert.InDelta(t, 12, SpeedAt(-45, base), 1e-5)
}

// angleDist is the distance between two yaw angles on the circle.
func angleDist(a, b float32) float32 {
	d := wrapDegrees(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

func TestPlaneYawWrapsAfterFullTurn(t *testing.T) {
	for _, dir := range []Direction{Left, Right} {
		p := NewPlane(mgl32.Vec3{}, DefaultTuning(), 0, 0)
		// 50°/s per unit dt: 72 steps of 0.1s turn 360°.
		for range 72 {
			p.ApplyImpulse(dir, 0.1)
			assert.GreaterOrEqual(t, p.Yaw(), float32(0))
			assert.Less(t, p.Yaw(), float32(360))
		}
		assert.InDelta(t, 0, angleDist(p.Yaw(), 0), 1e-2, "dir=%v", dir)
	}
}

func TestPlanePitchClamped(t *testing.T) {
	p := NewPlane(mgl32.Vec3{}, DefaultTuning(), 0, 0)
	for range 1000 {
		p.ApplyImpulse(Forward, 0.05)
		assert.LessOrEqual(t, p.Pitch(), float32(MaxPitch))
	}
	assert.Equal(t, float32(MaxPitch), p.Pitch())
	assert.Equal(t, SpeedAt(MaxPitch, 8), p.Speed())

	for range 2000 {
		p.ApplyImpulse(Backward, 0.05)
		assert.GreaterOrEqual(t, p.Pitch(), float32(-MaxPitch))
	}
	assert.Equal(t, float32(-MaxPitch), p.Pitch())
}

func TestPlaneImpulseDirections(t *testing.T) {
	p := NewPlane(mgl32.Vec3{}, DefaultTuning(), 10, 0)
	p.ApplyImpulse(Forward, 0.1) // +5*0.5
	assert.InDelta(t, 2.5, p.Pitch(), 1e-5)
	p.ApplyImpulse(Left, 0.1) // +10*0.5
	assert.InDelta(t, 15, p.Yaw(), 1e-4)
	p.ApplyImpulse(Right, 0.2)
	assert.InDelta(t, 5, p.Yaw(), 1e-4)
}

func TestPlaneSteer(t *testing.T) {
	p := NewPlane(mgl32.Vec3{}, DefaultTuning(), 0, 0)

	p.Steer(0.5, 0.5)
	assert.Equal(t, float32(0), p.Yaw())
	assert.Equal(t, float32(0), p.Pitch())

	p.Steer(0.75, 0.25)
	assert.InDelta(t, 359.5, p.Yaw(), 1e-4)
	assert.InDelta(t, 0.5, p.Pitch(), 1e-5)

	for range 500 {
		p.Steer(0.5, 0)
	}
	assert.Equal(t, float32(MaxPitch), p.Pitch())
}

func TestPlaneAdvance(t *testing.T) {
	p := NewPlane(mgl32.Vec3{0, 2, 0}, DefaultTuning(), 0, 0)
	p.Advance(0.001)
	assert.InDelta(t, 0.008, p.Position.Z(), 1e-6)
	assert.Equal(t, float32(2), p.Position.Y())
}

func TestCameraPointerAndScroll(t *testing.T) {
	c := NewCamera(mgl32.Vec3{}, DefaultCameraTuning(), 0, 0)

	c.ApplyPointerDelta(100, 50)
	assert.InDelta(t, 10, c.Yaw(), 1e-4)
	assert.InDelta(t, 5, c.Pitch(), 1e-4)

	c.ApplyPointerDelta(0, 5000)
	assert.Equal(t, float32(MaxPitch), c.Pitch())

	assert.Equal(t, float32(100), c.Zoom)
	c.ApplyScroll(30)
	assert.Equal(t, float32(70), c.Zoom)
	c.ApplyScroll(1000)
	assert.Equal(t, float32(1), c.Zoom)
	c.ApplyScroll(-1000)
	assert.Equal(t, float32(120), c.Zoom)
}

func TestCameraImpulse(t *testing.T) {
	c := NewCamera(mgl32.Vec3{}, DefaultCameraTuning(), 0, 0)
	c.ApplyImpulse(Forward, 0.5)
	assert.InDelta(t, 0.5, c.Position.Z(), 1e-5)
	c.ApplyImpulse(Right, 1)
	assert.InDelta(t, -1, c.Position.X(), 1e-5)
	c.ApplyImpulse(Backward, 0.5)
	c.ApplyImpulse(Left, 1)
	assert.InDelta(t, 0, c.Position.Len(), 1e-5)
}
