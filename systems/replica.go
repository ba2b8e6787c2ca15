package systems

import (
	"github.com/automoto/doomerang-fps/components"
	"github.com/automoto/doomerang-fps/shared/gamemath"
	"github.com/automoto/doomerang-fps/shared/netcomponents"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
)

// ApplyNetViewModel applies a server snapshot to a view-model entity. The
// owner is always taken from the server; the pose only feeds the replica
// interpolation when the model is not locally owned, since the local model
// is posed by the client's own animation.
func ApplyNetViewModel(entry *donburi.Entry, snap netcomponents.NetViewModelData, session Session) {
	vm := components.ViewModel.Get(entry)
	vm.Owner = esync.NetworkId(snap.Owner)
	vm.Index = snap.Index

	if IsLocallyOwned(vm, session) {
		return
	}
	ApplyReplicaSnapshot(entry, snap)
}

// ApplyReplicaSnapshot starts a new interpolation segment toward snap. The
// first snapshot is applied directly.
func ApplyReplicaSnapshot(entry *donburi.Entry, snap netcomponents.NetViewModelData) {
	if !entry.HasComponent(components.ReplicaInterp) {
		entry.AddComponent(components.ReplicaInterp)
	}
	interp := components.ReplicaInterp.Get(entry)
	pose := components.ViewModelPose.Get(entry)
	target := mgl64.Vec3(snap.Origin)

	if !interp.Initialized {
		// First snapshot: set pose directly, no interpolation
		pose.BaseOrigin = target
		pose.BaseAngles = snap.Angles
		interp.PrevOrigin = target
		interp.PrevAngles = snap.Angles
		interp.TargetOrigin = target
		interp.TargetAngles = snap.Angles
		interp.T = 1.0
		interp.Initialized = true
		return
	}

	// Subsequent snapshots start from wherever the pose is now
	interp.PrevOrigin = pose.BaseOrigin
	interp.PrevAngles = pose.BaseAngles
	interp.TargetOrigin = target
	interp.TargetAngles = snap.Angles
	interp.T = 0
}

// InterpolateReplica advances a replica's base pose toward its latest
// snapshot. tickRate is snapshots per second, so one snapshot interval is
// covered in 1/tickRate seconds.
func InterpolateReplica(entry *donburi.Entry, frame FrameTime, tickRate float64) {
	if !entry.HasComponent(components.ReplicaInterp) {
		return
	}
	interp := components.ReplicaInterp.Get(entry)
	if !interp.Initialized {
		return
	}

	if interp.T < 1 && frame.Delta > 0 && tickRate > 0 {
		interp.T = gamemath.Clamp(interp.T+frame.Delta*tickRate, 0, 1)
	}

	pose := components.ViewModelPose.Get(entry)
	pose.BaseOrigin = interp.PrevOrigin.Add(interp.TargetOrigin.Sub(interp.PrevOrigin).Mul(interp.T))
	pose.BaseAngles = gamemath.LerpQAngle(interp.PrevAngles, interp.TargetAngles, interp.T)
}

// NewReplicaInterpolator returns the default replica path.
func NewReplicaInterpolator(tickRate func() float64) ReplicaPath {
	return func(entry *donburi.Entry, frame FrameTime) {
		InterpolateReplica(entry, frame, tickRate())
	}
}
