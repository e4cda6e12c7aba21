package flight

import "github.com/go-gl/mathgl/mgl32"

// DrawKind selects the mesh and material a drawable is submitted with.
type DrawKind uint8

const (
	DrawGround DrawKind = iota
	DrawCoin
	DrawBomb
	DrawHull
	DrawRotor
	DrawFlame
)

// Drawable is one model transform handed to the renderer.
type Drawable struct {
	Kind  DrawKind
	Model mgl32.Mat4
}

// Box dimensions of the unit-cube stand-ins for each mesh.
var (
	groundSize = mgl32.Vec3{20, 0.02, 20}
	coinSize   = mgl32.Vec3{0.25, 0.25, 0.05}
	bombSize   = mgl32.Vec3{0.3, 0.3, 0.3}
	hullSize   = mgl32.Vec3{0.3, 0.06, 0.4}
	rotorSize  = mgl32.Vec3{0.3, 0.02, 0.02}
)

const (
	emitterScale = 0.01 // flame drift units to world units
	flameSize    = 2.0  // in emitter units
	rotorOffset  = 0.2
	exhaustBack  = 0.25
)

func translate(v mgl32.Vec3) mgl32.Mat4 { return mgl32.Translate3D(v[0], v[1], v[2]) }
func scale(v mgl32.Vec3) mgl32.Mat4     { return mgl32.Scale3D(v[0], v[1], v[2]) }

// planeRotation turns model space (+z forward) to the plane's heading.
func (s *Session) planeRotation() mgl32.Mat4 {
	p := s.Plane
	return mgl32.HomogRotate3DY(mgl32.DegToRad(p.Yaw())).
		Mul4(mgl32.HomogRotate3DX(-mgl32.DegToRad(p.Pitch())))
}

// Scene appends the model transform of every visible entity to out.
func (s *Session) Scene(out []Drawable) []Drawable {
	out = out[:0]
	out = append(out, Drawable{Kind: DrawGround, Model: translate(mgl32.Vec3{0, -groundSize[1] / 2, 0}).Mul4(scale(groundSize))})

	for _, c := range s.Coins {
		if !c.Visible() {
			continue
		}
		m := translate(c.Position).
			Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(c.Phase + s.CoinSpin))).
			Mul4(scale(coinSize))
		out = append(out, Drawable{Kind: DrawCoin, Model: m})
	}
	for _, b := range s.Bombs[:s.ActiveBombs()] {
		out = append(out, Drawable{Kind: DrawBomb, Model: translate(b.Position).Mul4(scale(bombSize))})
	}

	p := s.Plane
	rot := s.planeRotation()
	out = append(out, Drawable{Kind: DrawHull, Model: translate(p.Position).Mul4(rot).Mul4(scale(hullSize))})

	rotor := translate(p.Ahead(rotorOffset).Add(p.Up().Mul(0.02))).
		Mul4(rot).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(s.RotorSpin))).
		Mul4(scale(rotorSize))
	out = append(out, Drawable{Kind: DrawRotor, Model: rotor})

	emitter := translate(p.Ahead(-exhaustBack)).
		Mul4(rot).
		Mul4(mgl32.Scale3D(emitterScale, emitterScale, emitterScale))
	for _, f := range s.Flames.P {
		m := emitter.Mul4(translate(f.Drift.Mul(f.Age))).Mul4(mgl32.Scale3D(flameSize, flameSize, flameSize))
		out = append(out, Drawable{Kind: DrawFlame, Model: m})
	}
	return out
}

// ViewMatrix returns the view transform of the active view mode.
func (s *Session) ViewMatrix() mgl32.Mat4 {
	p, c := s.Plane, s.Camera
	switch s.View {
	case ViewChase:
		return p.LookAt().
			Mul4(translate(p.Front().Mul(1.5))).
			Mul4(translate(p.Up().Mul(-0.5)))
	case ViewOrbit:
		return mgl32.LookAtV(p.Position.Sub(c.Front()), p.Position, c.Up())
	default:
		return c.LookAt()
	}
}

// Projection builds the perspective transform from the camera zoom.
func (s *Session) Projection(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(s.Camera.Zoom), aspect, 0.1, 100)
}
