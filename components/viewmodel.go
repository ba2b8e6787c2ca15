package components

import (
	"github.com/automoto/doomerang-fps/network"
	"github.com/automoto/doomerang-fps/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
)

// ViewModelData identifies a first-person model and the player holding it.
type ViewModelData struct {
	Owner esync.NetworkId // 0 when no player owns the model
	Index int             // View-model slot on the owner (0 = primary hands)
}

var ViewModel = donburi.NewComponentType[ViewModelData]()

// ViewModelEyeData is the owner's resolved movement state for this frame,
// written by player movement before the view-model pass runs.
type ViewModelEyeData struct {
	Position        mgl64.Vec3
	Angles          gamemath.QAngle
	HorizontalSpeed float64 // units per second
}

var ViewModelEye = donburi.NewComponentType[ViewModelEyeData]()

// RenderOffset is an additive pose delta.
type RenderOffset struct {
	Origin mgl64.Vec3
	Angles gamemath.QAngle
}

// Add combines two offsets.
func (o RenderOffset) Add(other RenderOffset) RenderOffset {
	return RenderOffset{
		Origin: o.Origin.Add(other.Origin),
		Angles: o.Angles.Add(other.Angles),
	}
}

// Scale multiplies both parts of the offset by s.
func (o RenderOffset) Scale(s float64) RenderOffset {
	return RenderOffset{
		Origin: o.Origin.Mul(s),
		Angles: o.Angles.Scale(s),
	}
}

// ViewModelPoseData holds the animation pose, the smoothing offset computed
// this frame and the final pose handed to the renderer.
type ViewModelPoseData struct {
	BaseOrigin mgl64.Vec3
	BaseAngles gamemath.QAngle

	Offset RenderOffset

	Origin mgl64.Vec3
	Angles gamemath.QAngle
}

var ViewModelPose = donburi.NewComponentType[ViewModelPoseData]()

// ViewModelLagData keeps the aim history used to trail the view model.
type ViewModelLagData struct {
	History    network.AngleHistory
	LagAngles  gamemath.QAngle // Orientation sampled LagDelay ago on the last frame
	LastOffset RenderOffset
}

var ViewModelLag = donburi.NewComponentType[ViewModelLagData]()

// BobStateData is the walk-bob oscillator. It only advances while the model
// is locally simulated.
type BobStateData struct {
	Phase      float64 // [0, 1) position in the current cycle
	LastSpeed  float64
	LastTime   float64 // Simulation time of the last advance
	Started    bool
	Vertical   float64
	Lateral    float64
	RollAmount float64 // degrees
}

var BobState = donburi.NewComponentType[BobStateData]()

// EngageData fades the motion offset in after the model becomes locally
// simulated.
type EngageData struct {
	Elapsed float64 // seconds since local simulation started
	Active  bool    // false while the model is a replica
}

var ViewModelEngage = donburi.NewComponentType[EngageData]()
