package systems

import (
	"testing"

	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/leap-fish/necs/esync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const frameDt = 1.0 / 60.0

// useTuning swaps the global view-model tuning for the duration of a test.
func useTuning(t *testing.T, mutate func(c *cfg.ViewModelConfig)) {
	t.Helper()
	saved := cfg.ViewModel
	cfg.ViewModel = cfg.DefaultViewModel()
	if mutate != nil {
		mutate(&cfg.ViewModel)
	}
	t.Cleanup(func() { cfg.ViewModel = saved })
}

func spawnViewModel(w donburi.World, owner esync.NetworkId) *donburi.Entry {
	e := w.Create(
		components.ViewModel,
		components.ViewModelEye,
		components.ViewModelPose,
		components.ViewModelLag,
		components.BobState,
		components.ViewModelEngage,
	)
	entry := w.Entry(e)
	components.ViewModel.Get(entry).Owner = owner
	return entry
}

type replicaRecorder struct {
	calls int
}

func (r *replicaRecorder) path() ReplicaPath {
	return func(*donburi.Entry, FrameTime) { r.calls++ }
}

// clock steps a fixed frame rate.
type clock struct {
	now float64
	dt  float64
}

func (c *clock) tick() FrameTime {
	c.now += c.dt
	return FrameTime{Now: c.now, Delta: c.dt}
}

func TestIsLocallyOwned(t *testing.T) {
	tests := []struct {
		name    string
		vm      *components.ViewModelData
		session Session
		want    bool
	}{
		{"nil model", nil, Session{LocalPlayer: 3}, false},
		{"no owner", &components.ViewModelData{}, Session{LocalPlayer: 3}, false},
		{"no owner and not joined", &components.ViewModelData{}, Session{}, false},
		{"owned by local player", &components.ViewModelData{Owner: 3}, Session{LocalPlayer: 3}, true},
		{"owned by other player", &components.ViewModelData{Owner: 4}, Session{LocalPlayer: 3}, false},
		{"owned while not joined", &components.ViewModelData{Owner: 4}, Session{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLocallyOwned(tt.vm, tt.session))
		})
	}
}

func TestUpdateViewModels_DispatchesByOwner(t *testing.T) {
	useTuning(t, nil)
	w := donburi.NewWorld()
	local := spawnViewModel(w, 1)
	remote := spawnViewModel(w, 2)
	orphan := spawnViewModel(w, 0)

	rec := &replicaRecorder{}
	UpdateViewModels(w, Session{LocalPlayer: 1}, FrameTime{Now: frameDt, Delta: frameDt}, rec.path())

	assert.Equal(t, 2, rec.calls)
	assert.True(t, components.ViewModelEngage.Get(local).Active)
	assert.False(t, components.ViewModelEngage.Get(remote).Active)
	assert.False(t, components.ViewModelEngage.Get(orphan).Active)

	bob, ok := BobStateOf(local)
	require.True(t, ok)
	assert.True(t, bob.Started)

	bob, ok = BobStateOf(remote)
	require.True(t, ok)
	assert.False(t, bob.Started)
}

func TestUpdateViewModels_NotJoinedRunsNothingLocally(t *testing.T) {
	useTuning(t, nil)
	w := donburi.NewWorld()
	orphan := spawnViewModel(w, 0)

	rec := &replicaRecorder{}
	UpdateViewModels(w, Session{}, FrameTime{Now: frameDt, Delta: frameDt}, rec.path())

	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, 0, components.ViewModelLag.Get(orphan).History.Len())
}

func TestUpdateViewModels_OwnershipFollowsRespawn(t *testing.T) {
	useTuning(t, func(c *cfg.ViewModelConfig) { c.EngageDuration = 0 })
	w := donburi.NewWorld()
	entry := spawnViewModel(w, 1)
	session := Session{LocalPlayer: 1}
	rec := &replicaRecorder{}
	clk := &clock{dt: frameDt}

	UpdateViewModels(w, session, clk.tick(), rec.path())
	assert.Equal(t, 0, rec.calls)
	assert.Equal(t, 1, components.ViewModelLag.Get(entry).History.Len())

	// Player died; the model now belongs to someone else.
	components.ViewModel.Get(entry).Owner = 7
	UpdateViewModels(w, session, clk.tick(), rec.path())
	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, 1, components.ViewModelLag.Get(entry).History.Len())
	assert.Equal(t, components.RenderOffset{}, components.ViewModelPose.Get(entry).Offset)

	// Respawned with the model handed back.
	components.ViewModel.Get(entry).Owner = 1
	UpdateViewModels(w, session, clk.tick(), rec.path())
	assert.Equal(t, 1, rec.calls)
	assert.True(t, components.ViewModelEngage.Get(entry).Active)
	assert.Equal(t, 1, components.ViewModelLag.Get(entry).History.Len(), "history restarts on engage")
}

func TestUpdateViewModels_ReplicaLeavesMotionStateAlone(t *testing.T) {
	useTuning(t, func(c *cfg.ViewModelConfig) { c.EngageDuration = 0 })
	w := donburi.NewWorld()
	entry := spawnViewModel(w, 1)
	eye := components.ViewModelEye.Get(entry)
	eye.HorizontalSpeed = 200
	clk := &clock{dt: frameDt}

	for i := 0; i < 20; i++ {
		eye.Angles.Yaw += 3
		UpdateViewModels(w, Session{LocalPlayer: 1}, clk.tick(), nil)
	}
	lagBefore := *components.ViewModelLag.Get(entry)
	bobBefore := *components.BobState.Get(entry)

	for i := 0; i < 30; i++ {
		eye.Angles.Yaw += 3
		UpdateViewModels(w, Session{LocalPlayer: 2}, clk.tick(), nil)
	}

	assert.Equal(t, lagBefore, *components.ViewModelLag.Get(entry))
	assert.Equal(t, bobBefore, *components.BobState.Get(entry))
}

func TestUpdateViewModels_BobPhaseResumesAfterReplicaPeriod(t *testing.T) {
	useTuning(t, func(c *cfg.ViewModelConfig) { c.EngageDuration = 0 })
	w := donburi.NewWorld()
	entry := spawnViewModel(w, 1)
	components.ViewModelEye.Get(entry).HorizontalSpeed = 250
	clk := &clock{dt: frameDt}

	for i := 0; i < 10; i++ {
		UpdateViewModels(w, Session{LocalPlayer: 1}, clk.tick(), nil)
	}
	frozen := components.BobState.Get(entry).Phase

	for i := 0; i < 120; i++ {
		UpdateViewModels(w, Session{LocalPlayer: 9}, clk.tick(), nil)
	}
	assert.Equal(t, frozen, components.BobState.Get(entry).Phase)

	UpdateViewModels(w, Session{LocalPlayer: 1}, clk.tick(), nil)
	step := frameDt * BobCycleRate(250, cfg.ViewModel.Bob)
	assert.InDelta(t, frozen+step, components.BobState.Get(entry).Phase, 1e-9)
}

func TestUpdateViewModels_ComposesPose(t *testing.T) {
	useTuning(t, func(c *cfg.ViewModelConfig) { c.EngageDuration = 0 })
	w := donburi.NewWorld()
	entry := spawnViewModel(w, 1)
	pose := components.ViewModelPose.Get(entry)
	pose.BaseOrigin = mgl64.Vec3{10, 20, 30}
	pose.BaseAngles = gamemath.QAngle{Yaw: 179}

	clk := &clock{dt: frameDt}
	for i := 0; i < 15; i++ {
		UpdateViewModels(w, Session{LocalPlayer: 1}, clk.tick(), nil)
	}

	pose = components.ViewModelPose.Get(entry)
	want := pose.BaseOrigin.Add(pose.Offset.Origin)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], pose.Origin[i], 1e-9)
	}
	assert.InDelta(t, gamemath.NormalizeAngle(179+pose.Offset.Angles.Yaw), pose.Angles.Yaw, 1e-9)
	assert.Greater(t, pose.Angles.Yaw, -180.0)
	assert.LessOrEqual(t, pose.Angles.Yaw, 180.0)
}

func TestUpdateViewModels_EngageFadesIn(t *testing.T) {
	useTuning(t, func(c *cfg.ViewModelConfig) {
		c.EngageDuration = 0.2
		c.Lag.Enabled = false
	})
	w := donburi.NewWorld()
	entry := spawnViewModel(w, 1)
	components.ViewModelEye.Get(entry).HorizontalSpeed = 250
	clk := &clock{dt: frameDt}

	UpdateViewModels(w, Session{LocalPlayer: 1}, clk.tick(), nil)
	assert.Equal(t, components.RenderOffset{}, components.ViewModelPose.Get(entry).Offset,
		"first engaged frame carries no offset")

	for i := 0; i < 20; i++ {
		UpdateViewModels(w, Session{LocalPlayer: 1}, clk.tick(), nil)
	}
	bob := components.BobState.Get(entry)
	full := AddViewModelBob(bob, gamemath.QAngle{}, cfg.ViewModel.Bob)
	assert.Equal(t, full, components.ViewModelPose.Get(entry).Offset)
}

func TestUpdateViewModels_MissingEyeGivesZeroOffset(t *testing.T) {
	useTuning(t, nil)
	w := donburi.NewWorld()
	entry := w.Entry(w.Create(components.ViewModel, components.ViewModelPose))
	components.ViewModel.Get(entry).Owner = 1

	UpdateViewModels(w, Session{LocalPlayer: 1}, FrameTime{Now: 1, Delta: frameDt}, nil)
	assert.Equal(t, components.RenderOffset{}, components.ViewModelPose.Get(entry).Offset)
}

func TestNewViewModelSystem_PullsSessionAndClock(t *testing.T) {
	useTuning(t, nil)
	w := donburi.NewWorld()
	entry := spawnViewModel(w, 5)

	session := Session{}
	clk := &clock{dt: frameDt}
	rec := &replicaRecorder{}
	sys := NewViewModelSystem(
		func() Session { return session },
		clk.tick,
		rec.path(),
	)

	sys(w)
	assert.Equal(t, 1, rec.calls)

	session.LocalPlayer = 5
	sys(w)
	assert.Equal(t, 1, rec.calls)
	assert.True(t, components.ViewModelEngage.Get(entry).Active)
}

func TestBobStateOf_WithoutComponent(t *testing.T) {
	w := donburi.NewWorld()
	entry := w.Entry(w.Create(components.ViewModel))

	_, ok := BobStateOf(entry)
	assert.False(t, ok)

	_, ok = BobStateOf(nil)
	assert.False(t, ok)
}

func TestEngageWeight(t *testing.T) {
	assert.Equal(t, 1.0, engageWeight(0, 0))
	assert.Equal(t, 0.0, engageWeight(0, 0.2))
	assert.Equal(t, 1.0, engageWeight(0.2, 0.2))
	assert.Equal(t, 1.0, engageWeight(5, 0.2))

	prev := 0.0
	for e := 0.01; e < 0.2; e += 0.01 {
		w := engageWeight(e, 0.2)
		assert.Greater(t, w, prev)
		assert.Less(t, w, 1.0)
		prev = w
	}
}
