package flight

import "github.com/go-gl/mathgl/mgl32"

// Direction abstracts a discrete control input away from the window system.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// SpeedAt is the pitch-dependent flight speed: diving speeds the plane up,
// climbing slows it down, and anything steeper than 45° holds half speed.
func SpeedAt(pitch, base float32) float32 {
	switch {
	case pitch < 0:
		return base + base*-pitch/90
	case pitch > 45:
		return base * 0.5
	default:
		return base - base*pitch/90
	}
}

// Plane is the player vehicle.
type Plane struct {
	Orientation

	t     Tuning
	speed float32
}

// NewPlane returns a plane at pos with the speed derived from pitch.
func NewPlane(pos mgl32.Vec3, t Tuning, yaw, pitch float32) *Plane {
	p := &Plane{t: t}
	p.Orientation = NewOrientation(pos, mgl32.Vec3{0, 1, 0}, yaw, pitch, t.PitchLimit)
	p.speed = SpeedAt(p.Pitch(), t.BaseSpeed)
	return p
}

// Speed returns the current movement speed.
func (p *Plane) Speed() float32 { return p.speed }

// ApplyImpulse turns the plane for one key-held frame of length dt seconds.
func (p *Plane) ApplyImpulse(dir Direction, dt float32) {
	velocity := p.t.AngularRate * dt
	yaw, pitch := p.Yaw(), p.Pitch()
	switch dir {
	case Forward:
		pitch += p.t.PitchImpulse * velocity
	case Backward:
		pitch -= p.t.PitchImpulse * velocity
	case Left:
		yaw += p.t.YawImpulse * velocity
	case Right:
		yaw -= p.t.YawImpulse * velocity
	}
	p.setAngles(yaw, pitch)
}

// Steer applies the proportional tracking law that keeps the tracked point
// centred in the frame. x and y are normalized frame coordinates.
func (p *Plane) Steer(x, y float32) {
	g := p.t.TrackingGain
	p.setAngles(p.Yaw()-(x-0.5)*g, p.Pitch()-(y-0.5)*g)
}

// Advance moves the plane along its front vector by speed*scale.
func (p *Plane) Advance(scale float32) {
	p.Position = p.Position.Add(p.Front().Mul(p.speed * scale))
}

func (p *Plane) setAngles(yaw, pitch float32) {
	p.SetAngles(yaw, pitch)
	p.speed = SpeedAt(p.Pitch(), p.t.BaseSpeed)
}
