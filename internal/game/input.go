package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/lallassu/skyflyer/internal/config"
	"github.com/lallassu/skyflyer/internal/flight"
)

type keyBinding struct {
	key glfw.Key
	dir flight.Direction
}

var (
	cameraKeys = []keyBinding{
		{glfw.KeyW, flight.Forward},
		{glfw.KeyS, flight.Backward},
		{glfw.KeyA, flight.Left},
		{glfw.KeyD, flight.Right},
	}
	planeKeys = []keyBinding{
		{glfw.KeyUp, flight.Forward},
		{glfw.KeyDown, flight.Backward},
		{glfw.KeyLeft, flight.Left},
		{glfw.KeyRight, flight.Right},
	}
	viewKeys = map[glfw.Key]flight.View{
		glfw.Key1: flight.ViewFree,
		glfw.Key2: flight.ViewChase,
		glfw.Key3: flight.ViewOrbit,
	}
)

// Input polls the keyboard once per rendered frame and turns cursor motion
// into camera deltas.
type Input struct {
	prevKeys map[glfw.Key]bool

	lastX, lastY float64
	seenCursor   bool
}

// NewInput returns an input handler with no keys held.
func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// CursorDelta returns the offset since the previous cursor event with y
// pointing up. The first event only primes the reference point.
func (in *Input) CursorDelta(x, y float64) (dx, dy float32) {
	if !in.seenCursor {
		in.lastX, in.lastY = x, y
		in.seenCursor = true
		return 0, 0
	}
	dx = float32(x - in.lastX)
	dy = float32(in.lastY - y)
	in.lastX, in.lastY = x, y
	return dx, dy
}

// Attach routes pointer and scroll callbacks to the session camera.
func (in *Input) Attach(window *glfw.Window, s *flight.Session) {
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		dx, dy := in.CursorDelta(x, y)
		s.Camera.ApplyPointerDelta(dx, dy)
	})
	window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		s.Camera.ApplyScroll(float32(yoff))
	})
}

// Process handles held movement keys and the mode switches.
func (in *Input) Process(window *glfw.Window, s *flight.Session, wcfg config.WindowConfig, dt float32) {
	if window.GetKey(glfw.KeyEscape) == glfw.Press {
		window.SetShouldClose(true)
	}

	for _, b := range cameraKeys {
		if window.GetKey(b.key) == glfw.Press {
			s.Camera.ApplyImpulse(b.dir, dt)
		}
	}
	for _, b := range planeKeys {
		if window.GetKey(b.key) == glfw.Press {
			s.SteerPlane(b.dir, dt)
		}
	}
	for key, v := range viewKeys {
		if window.GetKey(key) == glfw.Press {
			s.SetView(v)
		}
	}

	if window.GetKey(glfw.KeyT) == glfw.Press {
		s.SetTracking(true)
	}
	if window.GetKey(glfw.KeyU) == glfw.Press {
		s.SetTracking(false)
	}
	if in.JustPressed(window, glfw.KeyF) {
		setFullscreen(window, wcfg, true)
	}
	if in.JustPressed(window, glfw.KeyV) {
		setFullscreen(window, wcfg, false)
	}
}
