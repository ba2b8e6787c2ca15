package scenes

import (
	"sync"

	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/systems"
	"github.com/automoto/doomerang-fps/systems/factory"
	"github.com/automoto/doomerang-fps/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/leap-fish/necs/esync"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	localPlayer  esync.NetworkId = 1
	remotePlayer esync.NetworkId = 2
)

// SandboxScene is a single-room viewer for the view-model motion: one model
// held by the local player and one following scripted server snapshots.
type SandboxScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once

	session    systems.Session
	feed       *systems.SnapshotFeed
	models     []*donburi.Entry
	eye        components.ViewModelEyeData
	controller systems.EyeController
	now        float64
	dt         float64

	tuning     *ui.TuningUI
	showPanel  bool
	lastCursor [2]int
}

func NewSandboxScene(sc SceneChanger) *SandboxScene {
	return &SandboxScene{sceneChanger: sc}
}

func (s *SandboxScene) Update() {
	s.once.Do(s.configure)

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.sceneChanger.ChangeScene(NewSandboxScene(s.sceneChanger))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.setPanelVisible(!s.showPanel)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		s.swapOwners()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyJ) {
		s.toggleJoin()
	}

	if s.showPanel {
		s.tuning.Update()
	}

	s.now += s.dt
	s.controller.Step(&s.eye, s.readInput(), s.dt, cfg.Sandbox)
	s.pumpSnapshots()
	s.writeEye()

	s.ecs.Update()
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Sandbox.BackgroundColor)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)

	if s.showPanel {
		s.tuning.UI.Draw(screen)
	}
}

func (s *SandboxScene) configure() {
	s.dt = 1.0 / float64(ebiten.TPS())
	s.session = systems.Session{LocalPlayer: localPlayer}
	s.feed = systems.NewSnapshotFeed(localPlayer, remotePlayer)

	world := ecs.NewECS(donburi.NewWorld())

	// Ownership is assigned by the first snapshot.
	for i := range 2 {
		s.models = append(s.models, factory.CreateViewModel(world.World, 0, i))
	}

	viewModels := systems.NewViewModelSystem(
		func() systems.Session { return s.session },
		func() systems.FrameTime { return systems.FrameTime{Now: s.now, Delta: s.dt} },
		systems.NewReplicaInterpolator(func() float64 { return cfg.ViewModel.ReplicaTickRate }),
	)
	world.AddSystem(func(e *ecs.ECS) { viewModels(e.World) })

	world.AddRenderer(LayerWorld, DrawViewModels)
	world.AddRenderer(LayerHUD, DrawHUD(&s.session))

	s.ecs = world
	s.tuning = ui.NewTuningUI(s.swapOwners, s.toggleJoin)
	s.setPanelVisible(false)

	log.Info().Str("component", "sandbox").Msg("sandbox ready")
}

func (s *SandboxScene) setPanelVisible(visible bool) {
	s.showPanel = visible
	if visible {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	s.lastCursor[0], s.lastCursor[1] = ebiten.CursorPosition()
}

func (s *SandboxScene) swapOwners() {
	s.feed.SwapOwners()
	log.Info().
		Str("component", "sandbox").
		Uint("model0", uint(s.feed.Owner(0))).
		Uint("model1", uint(s.feed.Owner(1))).
		Msg("swapped view-model owners")
}

func (s *SandboxScene) toggleJoin() {
	if s.session.LocalPlayer == 0 {
		s.session.LocalPlayer = localPlayer
	} else {
		s.session.LocalPlayer = 0
	}
	log.Info().Str("component", "sandbox").Uint("localPlayer", uint(s.session.LocalPlayer)).Msg("session changed")
}

func (s *SandboxScene) readInput() systems.EyeInput {
	var in systems.EyeInput

	if !s.showPanel {
		x, y := ebiten.CursorPosition()
		in.LookX = float64(x - s.lastCursor[0])
		in.LookY = float64(y - s.lastCursor[1])
		s.lastCursor[0], s.lastCursor[1] = x, y
	}

	if ebiten.IsKeyPressed(ebiten.KeyW) {
		in.Forward++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		in.Forward--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Strafe++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Strafe--
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		in.Turn++
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		in.Turn--
	}
	in.Run = ebiten.IsKeyPressed(ebiten.KeyShift)
	in.SnapTurn = inpututil.IsKeyJustPressed(ebiten.KeyQ)

	return in
}

// pumpSnapshots applies the snapshots the stand-in server produced this frame.
func (s *SandboxScene) pumpSnapshots() {
	for _, snap := range s.feed.Advance(s.dt, cfg.ViewModel.ReplicaTickRate) {
		if snap.Index < 0 || snap.Index >= len(s.models) {
			continue
		}
		systems.ApplyNetViewModel(s.models[snap.Index], snap, s.session)
	}
}

// writeEye hands the local player's motion to whichever model they hold.
func (s *SandboxScene) writeEye() {
	motion := systems.PlayerMotion(s.eye)
	for _, entry := range s.models {
		if !systems.IsLocallyOwned(components.ViewModel.Get(entry), s.session) {
			continue
		}
		systems.ApplyNetPlayerMotion(entry, motion)
	}
}
