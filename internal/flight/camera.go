package flight

import "github.com/go-gl/mathgl/mgl32"

// Camera is the free-look camera. It only produces a view transform and
// never touches simulation state.
type Camera struct {
	Orientation

	Zoom float32 // vertical field of view, degrees

	t CameraTuning
}

// NewCamera returns a free camera at pos with zoom clamped to the tuning range.
func NewCamera(pos mgl32.Vec3, t CameraTuning, yaw, pitch float32) *Camera {
	if t.ZoomMin <= 0 {
		t.ZoomMin = 1
	}
	if t.ZoomMax < t.ZoomMin {
		t.ZoomMax = t.ZoomMin
	}
	return &Camera{
		Orientation: NewOrientation(pos, mgl32.Vec3{0, 1, 0}, yaw, pitch, MaxPitch),
		Zoom:        clampF(t.Zoom, t.ZoomMin, t.ZoomMax),
		t:           t,
	}
}

// ApplyPointerDelta turns the camera by a mouse offset in screen pixels.
// Positive dy looks up.
func (c *Camera) ApplyPointerDelta(dx, dy float32) {
	c.SetAngles(c.Yaw()+dx*c.t.Sensitivity, c.Pitch()+dy*c.t.Sensitivity)
}

// ApplyScroll narrows the field of view for positive dy.
func (c *Camera) ApplyScroll(dy float32) {
	c.Zoom = clampF(c.Zoom-dy, c.t.ZoomMin, c.t.ZoomMax)
}

// ApplyImpulse translates the camera in its own frame.
func (c *Camera) ApplyImpulse(dir Direction, dt float32) {
	v := c.t.Speed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front().Mul(v))
	case Backward:
		c.Position = c.Position.Sub(c.Front().Mul(v))
	case Left:
		c.Position = c.Position.Sub(c.Right().Mul(v))
	case Right:
		c.Position = c.Position.Add(c.Right().Mul(v))
	}
}
