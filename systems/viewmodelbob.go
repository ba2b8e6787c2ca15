package systems

import (
	"math"

	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/shared/gamemath"
)

// BobCycleRate returns the bob frequency in cycles per second for a
// horizontal speed. It never drops below IdleRate and never exceeds MaxRate.
func BobCycleRate(speed float64, c cfg.BobConfig) float64 {
	return gamemath.RemapClamped(math.Abs(speed), 0, c.RunSpeed, c.IdleRate, c.MaxRate)
}

// AdvanceBob moves the oscillator forward by dt seconds of locally simulated
// time. The phase stays in [0, 1) so precision does not degrade over long
// sessions. Non-positive dt leaves the phase where it is.
func AdvanceBob(bob *components.BobStateData, speed, now, dt float64, c cfg.BobConfig) {
	if dt > 0 {
		bob.Phase = wrapPhase(bob.Phase + dt*BobCycleRate(speed, c))
	}
	bob.LastSpeed = speed
	bob.LastTime = now
	bob.Started = true

	CalcViewModelBob(bob, c)
}

// CalcViewModelBob refreshes the vertical, lateral and roll outputs from the
// current phase and last speed without advancing time.
func CalcViewModelBob(bob *components.BobStateData, c cfg.BobConfig) {
	move := gamemath.RemapClamped(math.Abs(bob.LastSpeed), 0, c.RunSpeed, 0, 1)

	vertical := gamemath.Lerp(c.IdleVertical, c.Vertical, move)
	lateral := gamemath.Lerp(c.IdleLateral, c.Lateral, move)
	roll := gamemath.Lerp(c.IdleRoll, c.Roll, move)

	// One cycle is a full stride: the model sways left and right once and
	// bobs vertically twice.
	cycle := 2 * math.Pi * bob.Phase
	bob.Vertical = vertical * math.Sin(2*cycle)
	bob.Lateral = lateral * math.Sin(cycle)
	bob.RollAmount = roll * math.Sin(cycle)
}

// AddViewModelBob projects the current bob outputs onto the eye basis.
func AddViewModelBob(bob *components.BobStateData, eyeAngles gamemath.QAngle, c cfg.BobConfig) components.RenderOffset {
	if !c.Enabled {
		return components.RenderOffset{}
	}

	forward, right, up := gamemath.AngleVectors(eyeAngles)
	origin := forward.Mul(bob.Vertical * c.ForwardScale).
		Add(up.Mul(bob.Vertical * c.UpScale)).
		Add(right.Mul(bob.Lateral * c.RightScale))

	return components.RenderOffset{
		Origin: origin,
		Angles: gamemath.QAngle{
			Pitch: -bob.Vertical * c.PitchScale,
			Yaw:   -bob.Lateral * c.YawScale,
			Roll:  bob.RollAmount,
		},
	}
}

func wrapPhase(p float64) float64 {
	p = math.Mod(p, 1)
	if p < 0 {
		p++
	}
	return p
}
