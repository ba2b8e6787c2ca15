package systems

import (
	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/leap-fish/necs/esync"
	"github.com/rs/zerolog/log"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Session is the per-frame client context: which player this client controls.
type Session struct {
	LocalPlayer esync.NetworkId // 0 while not joined
}

// FrameTime is the simulation clock for one frame, in seconds.
type FrameTime struct {
	Now   float64
	Delta float64
}

// ReplicaPath drives the pose of a view model this client does not own.
type ReplicaPath func(entry *donburi.Entry, frame FrameTime)

var viewModelQuery = donburi.NewQuery(filter.Contains(components.ViewModel, components.ViewModelPose))

// IsLocallyOwned reports whether the view model belongs to the player this
// session controls. A model without an owner is never local.
func IsLocallyOwned(vm *components.ViewModelData, session Session) bool {
	if vm == nil || vm.Owner == 0 {
		return false
	}
	return vm.Owner == session.LocalPlayer
}

// viewModelSimulator is the per-frame strategy for one view model.
type viewModelSimulator interface {
	simulate(entry *donburi.Entry, frame FrameTime)
}

// localInstance runs lag and bob for the local player's view model.
type localInstance struct {
	tuning *cfg.ViewModelConfig
}

// replicaInstance hands the pose to the networked replica path and leaves
// the lag and bob state untouched.
type replicaInstance struct {
	replica ReplicaPath
}

// UpdateViewModels runs one frame of view-model motion for every instance in
// the world: the local player's model gets history, lag and bob in that
// order; every other model is delegated to replica.
func UpdateViewModels(world donburi.World, session Session, frame FrameTime, replica ReplicaPath) {
	local := localInstance{tuning: &cfg.ViewModel}
	remote := replicaInstance{replica: replica}

	viewModelQuery.Each(world, func(entry *donburi.Entry) {
		vm := components.ViewModel.Get(entry)

		var sim viewModelSimulator = remote
		if IsLocallyOwned(vm, session) {
			sim = local
		}
		sim.simulate(entry, frame)
		composePose(components.ViewModelPose.Get(entry))
	})
}

// NewViewModelSystem returns an update system that pulls the session and the
// frame clock each tick and runs UpdateViewModels.
func NewViewModelSystem(session func() Session, clock func() FrameTime, replica ReplicaPath) func(donburi.World) {
	return func(world donburi.World) {
		UpdateViewModels(world, session(), clock(), replica)
	}
}

// BobStateOf returns a copy of the bob oscillator so other offsets (recoil,
// inspect animations) can stay in phase with it.
func BobStateOf(entry *donburi.Entry) (components.BobStateData, bool) {
	if entry == nil || !entry.HasComponent(components.BobState) {
		return components.BobStateData{}, false
	}
	return *components.BobState.Get(entry), true
}

func (l localInstance) simulate(entry *donburi.Entry, frame FrameTime) {
	pose := components.ViewModelPose.Get(entry)
	if !entry.HasComponent(components.ViewModelEye) {
		pose.Offset = components.RenderOffset{}
		return
	}
	eye := components.ViewModelEye.Get(entry)

	weight := 1.0
	if entry.HasComponent(components.ViewModelEngage) {
		engage := components.ViewModelEngage.Get(entry)
		if !engage.Active {
			engage.Active = true
			engage.Elapsed = 0
			log.Debug().
				Str("component", "viewmodel").
				Uint("owner", uint(components.ViewModel.Get(entry).Owner)).
				Msg("local simulation engaged")
			if entry.HasComponent(components.ViewModelLag) {
				// History from before the gap would pull the model toward a stale aim.
				components.ViewModelLag.Get(entry).History.Reset()
			}
		}
		weight = engageWeight(engage.Elapsed, l.tuning.EngageDuration)
		if frame.Delta > 0 {
			engage.Elapsed += frame.Delta
		}
	}

	var offset components.RenderOffset
	if entry.HasComponent(components.ViewModelLag) {
		lag := components.ViewModelLag.Get(entry)
		offset = offset.Add(CalcViewModelLag(lag, eye.Angles, frame.Now, l.tuning.Lag))
	}
	if entry.HasComponent(components.BobState) {
		bob := components.BobState.Get(entry)
		AdvanceBob(bob, eye.HorizontalSpeed, frame.Now, frame.Delta, l.tuning.Bob)
		offset = offset.Add(AddViewModelBob(bob, eye.Angles, l.tuning.Bob))
	}

	pose.Offset = offset.Scale(weight)
}

func (r replicaInstance) simulate(entry *donburi.Entry, frame FrameTime) {
	if entry.HasComponent(components.ViewModelEngage) {
		engage := components.ViewModelEngage.Get(entry)
		if engage.Active {
			log.Debug().
				Str("component", "viewmodel").
				Uint("owner", uint(components.ViewModel.Get(entry).Owner)).
				Msg("local simulation released to replica")
		}
		engage.Active = false
		engage.Elapsed = 0
	}

	components.ViewModelPose.Get(entry).Offset = components.RenderOffset{}
	if r.replica != nil {
		r.replica(entry, frame)
	}
}

// engageWeight eases the offset in over duration seconds.
func engageWeight(elapsed, duration float64) float64 {
	if duration <= 0 || elapsed >= duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(ease.OutQuad(float32(elapsed), 0, 1, float32(duration)))
}

func composePose(pose *components.ViewModelPoseData) {
	pose.Origin = pose.BaseOrigin.Add(pose.Offset.Origin)
	pose.Angles = pose.BaseAngles.Add(pose.Offset.Angles).Normalize()
}
