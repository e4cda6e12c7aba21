// Package config loads game settings from defaults, an optional file,
// SKYFLYER_* environment variables and command-line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lallassu/skyflyer/internal/flight"
	"github.com/lallassu/skyflyer/internal/tracking"
)

// WindowConfig holds window defaults and the two display modes.
type WindowConfig struct {
	Width            int    `mapstructure:"width"`
	Height           int    `mapstructure:"height"`
	Title            string `mapstructure:"title"`
	FullscreenWidth  int    `mapstructure:"fullscreen_width"`
	FullscreenHeight int    `mapstructure:"fullscreen_height"`
	RefreshRate      int    `mapstructure:"refresh_rate"`
	WindowedX        int    `mapstructure:"windowed_x"`
	WindowedY        int    `mapstructure:"windowed_y"`
	WindowedWidth    int    `mapstructure:"windowed_width"`
	WindowedHeight   int    `mapstructure:"windowed_height"`
	VSync            bool   `mapstructure:"vsync"`
}

type Config struct {
	LogLevel string  `mapstructure:"log_level"`
	Seed     uint64  `mapstructure:"seed"` // 0 seeds from the clock
	Volume   float64 `mapstructure:"volume"`

	Window   WindowConfig        `mapstructure:"window"`
	Flight   flight.Tuning       `mapstructure:"flight"`
	Camera   flight.CameraTuning `mapstructure:"camera"`
	Tracking tracking.Config     `mapstructure:"tracking"`
}

// Flags registers the command-line overrides on fs.
func Flags(fs *pflag.FlagSet) {
	fs.StringP("config", "c", "", "config file (json, yaml or toml)")
	fs.String("log-level", "info", "log level: trace, debug, info, warn, error")
	fs.Uint64("seed", 0, "random seed, 0 uses the clock")
	fs.Bool("no-tracking", false, "disable webcam tracking")
	fs.Int("camera", 0, "camera device index")
	fs.String("video", "resources/video.mkv", "fallback video when no camera is available")
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"log-level": "log_level",
	"seed":      "seed",
	"camera":    "tracking.device",
	"video":     "tracking.fallback_video",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("seed", 0)
	v.SetDefault("volume", 0.58)

	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.title", "Skyflyer")
	v.SetDefault("window.fullscreen_width", 1920)
	v.SetDefault("window.fullscreen_height", 1080)
	v.SetDefault("window.refresh_rate", 60)
	v.SetDefault("window.windowed_x", 100)
	v.SetDefault("window.windowed_y", 100)
	v.SetDefault("window.windowed_width", 1024)
	v.SetDefault("window.windowed_height", 576)
	v.SetDefault("window.vsync", false)

	ft := flight.DefaultTuning()
	v.SetDefault("flight.base_speed", ft.BaseSpeed)
	v.SetDefault("flight.angular_rate", ft.AngularRate)
	v.SetDefault("flight.pitch_impulse", ft.PitchImpulse)
	v.SetDefault("flight.yaw_impulse", ft.YawImpulse)
	v.SetDefault("flight.pitch_limit", ft.PitchLimit)
	v.SetDefault("flight.tracking_gain", ft.TrackingGain)
	v.SetDefault("flight.move_scale", ft.MoveScale)
	v.SetDefault("flight.tick_interval", ft.TickInterval)
	v.SetDefault("flight.start_altitude", ft.StartAltitude)
	v.SetDefault("flight.lookahead", ft.Lookahead)
	v.SetDefault("flight.pickup_radius", ft.PickupRadius)
	v.SetDefault("flight.coin_score", ft.CoinScore)
	v.SetDefault("flight.coin_cooldown", ft.CoinCooldown)
	v.SetDefault("flight.bomb_count", ft.BombCount)
	v.SetDefault("flight.bomb_radius", ft.BombRadius)
	v.SetDefault("flight.score_per_bomb", ft.ScorePerBomb)
	v.SetDefault("flight.boundary_radius", ft.BoundaryRadius)
	v.SetDefault("flight.boundary_lookahead", ft.BoundaryLookahead)
	v.SetDefault("flight.play_half_extent", ft.PlayHalfExtent)
	v.SetDefault("flight.play_ceiling", ft.PlayCeiling)
	v.SetDefault("flight.coin_floor", ft.CoinFloor)
	v.SetDefault("flight.bomb_floor", ft.BombFloor)
	v.SetDefault("flight.flame_count", ft.FlameCount)
	v.SetDefault("flight.flame_age_step", ft.FlameAgeStep)
	v.SetDefault("flight.coin_spin_step", ft.CoinSpinStep)
	v.SetDefault("flight.rotor_spin_step", ft.RotorSpinStep)

	ct := flight.DefaultCameraTuning()
	v.SetDefault("camera.speed", ct.Speed)
	v.SetDefault("camera.sensitivity", ct.Sensitivity)
	v.SetDefault("camera.zoom", ct.Zoom)
	v.SetDefault("camera.zoom_min", ct.ZoomMin)
	v.SetDefault("camera.zoom_max", ct.ZoomMax)

	tc := tracking.DefaultConfig()
	v.SetDefault("tracking.enabled", tc.Enabled)
	v.SetDefault("tracking.device", tc.Device)
	v.SetDefault("tracking.fallback_video", tc.FallbackVideo)
	v.SetDefault("tracking.frame_interval", tc.FrameInterval)
	v.SetDefault("tracking.retry_delay", tc.RetryDelay)
	v.SetDefault("tracking.range.h_low", tc.Range.HLow)
	v.SetDefault("tracking.range.s_low", tc.Range.SLow)
	v.SetDefault("tracking.range.v_low", tc.Range.VLow)
	v.SetDefault("tracking.range.h_high", tc.Range.HHigh)
	v.SetDefault("tracking.range.s_high", tc.Range.SHigh)
	v.SetDefault("tracking.range.v_high", tc.Range.VHigh)
}

// Load resolves the configuration. path may be empty, in which case only
// defaults, environment and flags apply. fs may be nil.
func Load(path string, fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SKYFLYER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
		if off, err := fs.GetBool("no-tracking"); err == nil && off {
			v.Set("tracking.enabled", false)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values that would break the simulation invariants.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Flight.PitchLimit <= 0 || c.Flight.PitchLimit >= 90:
		return fmt.Errorf("flight.pitch_limit must be in (0, 90), got %v", c.Flight.PitchLimit)
	case c.Flight.TickInterval <= 0:
		return fmt.Errorf("flight.tick_interval must be positive, got %v", c.Flight.TickInterval)
	case c.Camera.ZoomMin <= 0 || c.Camera.ZoomMax >= 180 || c.Camera.ZoomMin > c.Camera.ZoomMax:
		return fmt.Errorf("camera zoom range [%v, %v] is invalid", c.Camera.ZoomMin, c.Camera.ZoomMax)
	}
	return nil
}
