package config

import (
	"fmt"
	"image/color"
)

// LagConfig controls how far the view model trails the aim direction.
type LagConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	Delay       float64 `mapstructure:"delay"`       // Seconds the lagged orientation trails the eye
	MaxLookback float64 `mapstructure:"maxLookback"` // Seconds of angle history kept per instance
	MaxAngle    float64 `mapstructure:"maxAngle"`    // Per-axis clamp on the lag difference (degrees)
	Scale       float64 `mapstructure:"scale"`       // World units of offset per unit of forward drift
	AngleScale  float64 `mapstructure:"angleScale"`  // Fraction of the lag difference applied as rotation
	MaxOffset   float64 `mapstructure:"maxOffset"`   // Hard cap on the positional offset length
}

// BobConfig controls the procedural walk bob and idle sway.
type BobConfig struct {
	Enabled  bool    `mapstructure:"enabled"`
	IdleRate float64 `mapstructure:"idleRate"` // Cycles per second when stationary
	MaxRate  float64 `mapstructure:"maxRate"`  // Cycles per second cap at or above RunSpeed
	RunSpeed float64 `mapstructure:"runSpeed"` // Horizontal speed that reaches full rate and amplitude

	// Moving amplitudes
	Vertical float64 `mapstructure:"vertical"`
	Lateral  float64 `mapstructure:"lateral"`
	Roll     float64 `mapstructure:"roll"` // degrees

	// Stationary (breathing) amplitudes
	IdleVertical float64 `mapstructure:"idleVertical"`
	IdleLateral  float64 `mapstructure:"idleLateral"`
	IdleRoll     float64 `mapstructure:"idleRoll"`

	// How the bob values are projected onto the eye basis
	ForwardScale float64 `mapstructure:"forwardScale"`
	UpScale      float64 `mapstructure:"upScale"`
	RightScale   float64 `mapstructure:"rightScale"`
	PitchScale   float64 `mapstructure:"pitchScale"`
	YawScale     float64 `mapstructure:"yawScale"`
}

// ViewModelConfig groups all view-model motion tuning.
type ViewModelConfig struct {
	Lag LagConfig `mapstructure:"lag"`
	Bob BobConfig `mapstructure:"bob"`

	EngageDuration  float64 `mapstructure:"engageDuration"`  // Seconds to fade offsets in after local ownership starts
	ReplicaTickRate float64 `mapstructure:"replicaTickRate"` // Server snapshots per second for replica interpolation
}

// SandboxConfig contains the debug viewer configuration.
type SandboxConfig struct {
	TurnSpeed        float64 // Degrees per second for keyboard look
	MouseSensitivity float64 // Degrees per pixel
	WalkSpeed        float64 // Units per second
	RunSpeed         float64
	PixelsPerUnit    float64 // Screen pixels per world unit of offset
	SnapTurnDegrees  float64
	SnapTurnSeconds  float64 // Duration of the scripted smooth turn
	BackgroundColor  color.RGBA
	LocalColor       color.RGBA
	ReplicaColor     color.RGBA
}

// Config holds general client configuration
type Config struct {
	Width    int
	Height   int
	LogLevel string
}

// Global configuration instances
var C *Config
var ViewModel ViewModelConfig
var Sandbox SandboxConfig

// DefaultViewModel returns the built-in tuning.
func DefaultViewModel() ViewModelConfig {
	return ViewModelConfig{
		Lag: LagConfig{
			Enabled:     true,
			Delay:       0.1,
			MaxLookback: 0.25,
			MaxAngle:    5.0,
			Scale:       4.0,
			AngleScale:  0.5,
			MaxOffset:   0.5,
		},
		Bob: BobConfig{
			Enabled:  true,
			IdleRate: 0.25,
			MaxRate:  2.2,
			RunSpeed: 250,

			Vertical: 0.6,
			Lateral:  0.4,
			Roll:     0.8,

			IdleVertical: 0.08,
			IdleLateral:  0.05,
			IdleRoll:     0.1,

			ForwardScale: 0.4,
			UpScale:      0.1,
			RightScale:   0.2,
			PitchScale:   0.4,
			YawScale:     0.3,
		},
		EngageDuration:  0.2,
		ReplicaTickRate: 30,
	}
}

// Validate repairs tuning values the motion code cannot work with and
// returns a description of every change it made.
func (c *ViewModelConfig) Validate() []string {
	var fixes []string
	fix := func(name string, from, to float64) {
		fixes = append(fixes, fmt.Sprintf("%s: %g -> %g", name, from, to))
	}
	nonNegative := func(name string, v *float64) {
		if *v < 0 {
			fix(name, *v, 0)
			*v = 0
		}
	}

	lag := &c.Lag
	nonNegative("lag.delay", &lag.Delay)
	nonNegative("lag.maxAngle", &lag.MaxAngle)
	nonNegative("lag.scale", &lag.Scale)
	nonNegative("lag.angleScale", &lag.AngleScale)
	nonNegative("lag.maxOffset", &lag.MaxOffset)
	if lag.MaxLookback <= lag.Delay {
		// The sample at now-Delay needs an older bracket to interpolate from.
		want := lag.Delay * 2
		if want == 0 {
			want = DefaultViewModel().Lag.MaxLookback
		}
		fix("lag.maxLookback", lag.MaxLookback, want)
		lag.MaxLookback = want
	}

	bob := &c.Bob
	if bob.IdleRate <= 0 {
		want := DefaultViewModel().Bob.IdleRate
		fix("bob.idleRate", bob.IdleRate, want)
		bob.IdleRate = want
	}
	if bob.MaxRate < bob.IdleRate {
		fix("bob.maxRate", bob.MaxRate, bob.IdleRate)
		bob.MaxRate = bob.IdleRate
	}
	if bob.RunSpeed <= 0 {
		want := DefaultViewModel().Bob.RunSpeed
		fix("bob.runSpeed", bob.RunSpeed, want)
		bob.RunSpeed = want
	}
	nonNegative("bob.vertical", &bob.Vertical)
	nonNegative("bob.lateral", &bob.Lateral)
	nonNegative("bob.roll", &bob.Roll)
	nonNegative("bob.idleVertical", &bob.IdleVertical)
	nonNegative("bob.idleLateral", &bob.IdleLateral)
	nonNegative("bob.idleRoll", &bob.IdleRoll)

	nonNegative("engageDuration", &c.EngageDuration)
	if c.ReplicaTickRate <= 0 {
		want := DefaultViewModel().ReplicaTickRate
		fix("replicaTickRate", c.ReplicaTickRate, want)
		c.ReplicaTickRate = want
	}
	return fixes
}

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightGreen = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue  = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Orange     = color.RGBA{R: 255, G: 140, B: 0, A: 255}
)

func init() {
	C = &Config{
		Width:    640,
		Height:   360,
		LogLevel: "info",
	}

	ViewModel = DefaultViewModel()

	Sandbox = SandboxConfig{
		TurnSpeed:        180,
		MouseSensitivity: 0.15,
		WalkSpeed:        130,
		RunSpeed:         250,
		PixelsPerUnit:    60,
		SnapTurnDegrees:  90,
		SnapTurnSeconds:  0.15,
		BackgroundColor:  color.RGBA{R: 20, G: 20, B: 30, A: 255},
		LocalColor:       LightGreen,
		ReplicaColor:     Orange,
	}
}
