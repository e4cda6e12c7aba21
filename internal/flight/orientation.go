package flight

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// UpdateVectors derives the orthonormal front/right/up basis from yaw and
// pitch given in degrees. Pitch must stay strictly inside (-90, 90).
func UpdateVectors(yaw, pitch float32, worldUp mgl32.Vec3) (front, right, up mgl32.Vec3) {
	y := float64(mgl32.DegToRad(yaw))
	p := float64(mgl32.DegToRad(pitch))
	front = mgl32.Vec3{
		float32(math.Sin(y) * math.Cos(p)),
		float32(math.Sin(p)),
		float32(math.Cos(y) * math.Cos(p)),
	}.Normalize()
	right = front.Cross(worldUp).Normalize()
	up = right.Cross(front).Normalize()
	return front, right, up
}

// Orientation is a position plus euler angles with an eagerly maintained basis.
type Orientation struct {
	Position mgl32.Vec3
	worldUp  mgl32.Vec3

	yaw, pitch float32
	pitchLimit float32

	front, right, up mgl32.Vec3
}

// NewOrientation places an orientation at pos. A pitchLimit outside (0, 89]
// falls back to MaxPitch.
func NewOrientation(pos, worldUp mgl32.Vec3, yaw, pitch, pitchLimit float32) Orientation {
	if pitchLimit <= 0 || pitchLimit > MaxPitch {
		pitchLimit = MaxPitch
	}
	o := Orientation{Position: pos, worldUp: worldUp, pitchLimit: pitchLimit}
	o.SetAngles(yaw, pitch)
	return o
}

// SetAngles wraps yaw into [0,360), clamps pitch and recomputes the basis.
func (o *Orientation) SetAngles(yaw, pitch float32) {
	o.yaw = wrapDegrees(yaw)
	o.pitch = clampF(pitch, -o.pitchLimit, o.pitchLimit)
	o.front, o.right, o.up = UpdateVectors(o.yaw, o.pitch, o.worldUp)
}

// Accessors for the angles (degrees) and the derived basis.
func (o *Orientation) Yaw() float32               { return o.yaw }
func (o *Orientation) Pitch() float32             { return o.pitch }
func (o *Orientation) Front() mgl32.Vec3          { return o.front }
func (o *Orientation) Right() mgl32.Vec3          { return o.right }
func (o *Orientation) Up() mgl32.Vec3             { return o.up }
func (o *Orientation) WorldUp() mgl32.Vec3        { return o.worldUp }
func (o *Orientation) Ahead(d float32) mgl32.Vec3 { return o.Position.Add(o.front.Mul(d)) }

// LookAt returns the view matrix looking along front from Position.
func (o *Orientation) LookAt() mgl32.Mat4 {
	return mgl32.LookAtV(o.Position, o.Position.Add(o.front), o.up)
}
