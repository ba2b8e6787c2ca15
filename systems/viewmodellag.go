package systems

import (
	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// CalcViewModelLag records the current eye orientation and returns the offset
// that makes the view model trail it by cfg.Delay seconds.
//
// The lagged orientation is read from the history at now-Delay. Its per-axis
// difference from the eye, clamped to MaxAngle, rotates the unit forward
// vector; how far that vector drifts from straight ahead, expressed in the
// current eye basis, becomes the positional offset. The result never exceeds
// MaxOffset in length, and with a single sample in the history it is zero.
func CalcViewModelLag(lag *components.ViewModelLagData, eyeAngles gamemath.QAngle, now float64, c cfg.LagConfig) components.RenderOffset {
	lag.History.SetMaxLookback(c.MaxLookback)
	lag.History.Record(now, eyeAngles)

	if !c.Enabled || c.Delay <= 0 {
		lag.LagAngles = eyeAngles
		lag.LastOffset = components.RenderOffset{}
		return lag.LastOffset
	}

	lag.LagAngles = lag.History.SampleAt(now-c.Delay, eyeAngles)

	diff := gamemath.ClampQAngle(gamemath.DiffQAngle(lag.LagAngles, eyeAngles), c.MaxAngle)
	if diff.IsZero() {
		lag.LastOffset = components.RenderOffset{}
		return lag.LastOffset
	}

	// Where straight-ahead ends up after undoing the lag, in eye-local space.
	laggedForward, _, _ := gamemath.AngleVectors(diff.Scale(-1))
	drift := mgl64.Vec3{1, 0, 0}.Sub(laggedForward)

	forward, right, up := gamemath.AngleVectors(eyeAngles)
	origin := forward.Mul(drift.X()).
		Add(right.Mul(-drift.Y())).
		Add(up.Mul(drift.Z())).
		Mul(c.Scale)

	lag.LastOffset = components.RenderOffset{
		Origin: gamemath.ClampLength(origin, c.MaxOffset),
		Angles: diff.Scale(c.AngleScale),
	}
	return lag.LastOffset
}
