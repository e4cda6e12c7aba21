package flight

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lallassu/skyflyer/internal/tracking"
)

type GameState int

const (
	StatePlaying GameState = iota
	StateOver              // terminal, no further simulation
)

// Reason tells why a session ended.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonBomb
	ReasonGround
	ReasonBoundary
)

func (r Reason) String() string {
	switch r {
	case ReasonBomb:
		return "bomb"
	case ReasonGround:
		return "ground"
	case ReasonBoundary:
		return "boundary"
	}
	return "none"
}

// View selects which transform the renderer looks through.
type View int

const (
	ViewFree  View = iota // free-look camera
	ViewChase             // fixed third person
	ViewOrbit             // third person orbiting with the camera
)

func (v View) String() string {
	switch v {
	case ViewFree:
		return "free"
	case ViewChase:
		return "chase"
	case ViewOrbit:
		return "orbit"
	}
	return "unknown"
}

// Session owns all mutable game state. It is driven from a single goroutine.
type Session struct {
	Tuning Tuning
	State  GameState
	Reason Reason

	Plane  *Plane
	Camera *Camera
	Coins  []Coin
	Bombs  []Bomb
	Flames *FlamePool

	Score    int
	Ticks    uint64
	View     View
	Tracking bool

	// HasTracker is set when a frame source publishes centroids. Tracking
	// mode cannot be entered without one.
	HasTracker bool

	// fix records whether the last tick had a centroid to steer by.
	fix bool

	CoinSpin  float32
	RotorSpin float32

	Events *EventBus

	rng *Rand
}

// NewSession lays out coins and bombs from seed and starts in keyboard
// control with the free camera view.
func NewSession(t Tuning, ct CameraTuning, seed uint64) *Session {
	rng := NewRand(seed)
	s := &Session{
		Tuning: t,
		State:  StatePlaying,
		Plane:  NewPlane(mgl32.Vec3{0, t.StartAltitude, 0}, t, 0, 0),
		Camera: NewCamera(mgl32.Vec3(cameraStart), ct, 0, 0),
		Events: NewEventBus(),
		rng:    rng,
	}
	s.Coins = spawnCoins(rng, t)
	s.Bombs = spawnBombs(rng, t)
	s.Flames = NewFlamePool(t.FlameCount, t.FlameAgeStep, rng)
	return s
}

// Over reports whether the session reached a terminal state.
func (s *Session) Over() bool { return s.State == StateOver }

// ActiveBombs is the number of armed bombs; more appear as the score grows.
func (s *Session) ActiveBombs() int {
	if s.Tuning.ScorePerBomb <= 0 {
		return 0
	}
	return min(s.Score/s.Tuning.ScorePerBomb, len(s.Bombs))
}

// SteerPlane applies a keyboard impulse. Keys are ignored after the game
// ended and while the tracker is steering, i.e. tracking mode is on and the
// last tick had a centroid.
func (s *Session) SteerPlane(dir Direction, dt float32) {
	if s.Over() || s.TrackerSteering() {
		return
	}
	s.Plane.ApplyImpulse(dir, dt)
}

func (s *Session) SetView(v View) {
	if v == s.View {
		return
	}
	s.View = v
	s.Events.Emit(Event{Type: EventViewChanged, View: v})
}

// TrackerSteering reports whether the tracking law drove the last tick.
func (s *Session) TrackerSteering() bool { return s.Tracking && s.fix }

// SetTracking switches between keyboard and tracking control. Turning
// tracking on is ignored when no tracker is running.
func (s *Session) SetTracking(on bool) {
	if on == s.Tracking || (on && !s.HasTracker) {
		return
	}
	s.Tracking = on
	s.Events.Emit(Event{Type: EventTrackingToggled, Tracking: on})
}

// Step runs one fixed tick. c is the latest tracked centroid and ok is false
// when none has been published yet.
func (s *Session) Step(c tracking.Centroid, ok bool) {
	if s.Over() {
		return
	}
	t := &s.Tuning
	s.Ticks++

	s.fix = ok
	if s.TrackerSteering() {
		s.Plane.Steer(c.X, c.Y)
	}
	s.Plane.Advance(t.MoveScale)

	s.Flames.Update()
	s.CoinSpin = wrapDegrees(s.CoinSpin + t.CoinSpinStep)
	s.RotorSpin = wrapDegrees(s.RotorSpin + t.RotorSpinStep)

	nose := s.Plane.Ahead(t.Lookahead)
	// A coin cooling down only counts down, so a pickup blocks exactly
	// CoinCooldown following ticks.
	for i := range s.Coins {
		c := &s.Coins[i]
		if c.Cooldown > 0 {
			c.Cooldown--
			continue
		}
		if !inRange(nose, c.Position, t.PickupRadius) {
			continue
		}
		old := c.Position
		c.Position = relocate(s.rng, *t)
		c.Cooldown = t.CoinCooldown
		s.Score += t.CoinScore
		s.Events.Emit(Event{Type: EventCoinPickup, Position: old, Score: s.Score})
	}

	for _, b := range s.Bombs[:s.ActiveBombs()] {
		if inRange(nose, b.Position, t.BombRadius) {
			s.end(ReasonBomb)
			return
		}
	}
	if s.Plane.Position.Y() < 0 {
		s.end(ReasonGround)
		return
	}
	if !inRange(s.Plane.Ahead(t.BoundaryLookahead), mgl32.Vec3{}, t.BoundaryRadius) {
		s.end(ReasonBoundary)
	}
}

func (s *Session) end(r Reason) {
	s.State = StateOver
	s.Reason = r
	s.Events.Emit(Event{Type: EventGameOver, Position: s.Plane.Position, Score: s.Score, Reason: r})
}
