package flight

import "time"

// Fixed scene layout.
const (
	MaxPitch    = 89.0
	FlameSpread = 10.0 // lateral drift range of a flame particle
	FlameMinZ   = -50.0
	FlameMaxZ   = -30.0
)

// Start pose of the free camera, looking at the play area from behind.
var cameraStart = [3]float32{0, 1, -8}

// Tuning groups every gameplay constant of the plane and the fixed tick.
// Zero values are never used directly; start from DefaultTuning.
type Tuning struct {
	BaseSpeed    float32 `mapstructure:"base_speed"`
	AngularRate  float32 `mapstructure:"angular_rate"`
	PitchImpulse float32 `mapstructure:"pitch_impulse"`
	YawImpulse   float32 `mapstructure:"yaw_impulse"`
	PitchLimit   float32 `mapstructure:"pitch_limit"`
	TrackingGain float32 `mapstructure:"tracking_gain"`

	// MoveScale converts speed into distance per fixed tick.
	MoveScale     float32       `mapstructure:"move_scale"`
	TickInterval  time.Duration `mapstructure:"tick_interval"`
	StartAltitude float32       `mapstructure:"start_altitude"`

	Lookahead    float32 `mapstructure:"lookahead"`
	PickupRadius float32 `mapstructure:"pickup_radius"`
	CoinScore    int     `mapstructure:"coin_score"`
	CoinCooldown int     `mapstructure:"coin_cooldown"`

	BombCount    int     `mapstructure:"bomb_count"`
	BombRadius   float32 `mapstructure:"bomb_radius"`
	ScorePerBomb int     `mapstructure:"score_per_bomb"`

	BoundaryRadius    float32 `mapstructure:"boundary_radius"`
	BoundaryLookahead float32 `mapstructure:"boundary_lookahead"`

	// Play volume: x,z in [-PlayHalfExtent, PlayHalfExtent], y in [0, PlayCeiling].
	PlayHalfExtent float32 `mapstructure:"play_half_extent"`
	PlayCeiling    float32 `mapstructure:"play_ceiling"`
	CoinFloor      float32 `mapstructure:"coin_floor"`
	BombFloor      float32 `mapstructure:"bomb_floor"`

	FlameCount    int     `mapstructure:"flame_count"`
	FlameAgeStep  float32 `mapstructure:"flame_age_step"`
	CoinSpinStep  float32 `mapstructure:"coin_spin_step"`
	RotorSpinStep float32 `mapstructure:"rotor_spin_step"`
}

func DefaultTuning() Tuning {
	return Tuning{
		BaseSpeed:    8.0,
		AngularRate:  5.0,
		PitchImpulse: 5.0,
		YawImpulse:   10.0,
		PitchLimit:   MaxPitch,
		TrackingGain: 2.0,

		MoveScale:     0.001,
		TickInterval:  16 * time.Millisecond,
		StartAltitude: 2.0,

		Lookahead:    0.3,
		PickupRadius: 0.5,
		CoinScore:    1,
		CoinCooldown: 600, // ~10s at 60 ticks/s

		BombCount:    99,
		BombRadius:   0.6,
		ScorePerBomb: 2,

		BoundaryRadius:    10.0,
		BoundaryLookahead: 0.5,

		PlayHalfExtent: 5.0,
		PlayCeiling:    3.0,
		CoinFloor:      0.2,
		BombFloor:      0.5,

		FlameCount:    100,
		FlameAgeStep:  0.03,
		CoinSpinStep:  1.0,
		RotorSpinStep: 25.0,
	}
}

// CameraTuning configures the free-look camera.
type CameraTuning struct {
	Speed       float32 `mapstructure:"speed"`
	Sensitivity float32 `mapstructure:"sensitivity"`
	Zoom        float32 `mapstructure:"zoom"`
	ZoomMin     float32 `mapstructure:"zoom_min"`
	ZoomMax     float32 `mapstructure:"zoom_max"`
}

func DefaultCameraTuning() CameraTuning {
	return CameraTuning{
		Speed:       1.0,
		Sensitivity: 0.1,
		Zoom:        100.0,
		ZoomMin:     1.0,
		ZoomMax:     120.0,
	}
}
