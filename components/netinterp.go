package components

import (
	"github.com/automoto/doomerang-fps/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ReplicaInterpData stores interpolation state for rendering another player's
// view model between server snapshots.
type ReplicaInterpData struct {
	PrevOrigin, TargetOrigin mgl64.Vec3
	PrevAngles, TargetAngles gamemath.QAngle
	T                        float64
	Initialized              bool
}

var ReplicaInterp = donburi.NewComponentType[ReplicaInterpData]()
