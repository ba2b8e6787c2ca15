package netcomponents

import (
	"github.com/automoto/doomerang-fps/shared/gamemath"
	"github.com/yohamta/donburi"
)

// NetViewModelData is the replicated state of a player's view model: who
// holds it and the server's base pose.
type NetViewModelData struct {
	Owner  uint // NetworkId of the owning player, 0 when unowned
	Index  int
	Origin [3]float64
	Angles gamemath.QAngle
}

var NetViewModel = donburi.NewComponentType[NetViewModelData]()

// LerpNetViewModel interpolates between two view-model states. Angles take
// the shortest arc so a yaw crossing ±180 does not spin the long way round.
func LerpNetViewModel(from, to NetViewModelData, t float64) *NetViewModelData {
	return &NetViewModelData{
		Owner: to.Owner,
		Index: to.Index,
		Origin: [3]float64{
			gamemath.Lerp(from.Origin[0], to.Origin[0], t),
			gamemath.Lerp(from.Origin[1], to.Origin[1], t),
			gamemath.Lerp(from.Origin[2], to.Origin[2], t),
		},
		Angles: gamemath.LerpQAngle(from.Angles, to.Angles, t),
	}
}

// NetPlayerMotionData is the replicated eye state of a player.
type NetPlayerMotionData struct {
	EyeOrigin       [3]float64
	EyeAngles       gamemath.QAngle
	HorizontalSpeed float64
}

var NetPlayerMotion = donburi.NewComponentType[NetPlayerMotionData]()

// LerpNetPlayerMotion interpolates between two eye states.
func LerpNetPlayerMotion(from, to NetPlayerMotionData, t float64) *NetPlayerMotionData {
	return &NetPlayerMotionData{
		EyeOrigin: [3]float64{
			gamemath.Lerp(from.EyeOrigin[0], to.EyeOrigin[0], t),
			gamemath.Lerp(from.EyeOrigin[1], to.EyeOrigin[1], t),
			gamemath.Lerp(from.EyeOrigin[2], to.EyeOrigin[2], t),
		},
		EyeAngles:       gamemath.LerpQAngle(from.EyeAngles, to.EyeAngles, t),
		HorizontalSpeed: gamemath.Lerp(from.HorizontalSpeed, to.HorizontalSpeed, t),
	}
}
