package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/fonts"
	"github.com/automoto/doomerang-fps/systems"
	"github.com/automoto/doomerang-fps/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	modelWidth  = 48
	modelHeight = 80
	// Screen pixels per degree of angular offset
	pixelsPerDegree = 6
)

// DrawViewModels draws each model as a block at its hand anchor, displaced
// by its pose. Locally simulated models show their motion offset in view
// space; replicas show their interpolated server pose.
func DrawViewModels(e *ecs.ECS, screen *ebiten.Image) {
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())
	ppu := cfg.Sandbox.PixelsPerUnit

	tags.ViewModel.Each(e.World, func(entry *donburi.Entry) {
		vm := components.ViewModel.Get(entry)
		pose := components.ViewModelPose.Get(entry)

		anchorX := w * (0.25 + 0.5*float64(vm.Index%2))
		anchorY := h * 0.7

		var view mgl64.Vec3
		var pitch, yaw, roll float64
		clr := cfg.Sandbox.ReplicaColor

		if isLocallySimulated(entry) {
			clr = cfg.Sandbox.LocalColor
			eye := components.ViewModelEye.Get(entry)
			view = systems.ViewSpace(pose.Offset.Origin, eye.Angles)
			pitch, yaw, roll = pose.Offset.Angles.Pitch, pose.Offset.Angles.Yaw, pose.Offset.Angles.Roll
		} else {
			// Replicas are drawn in their own frame: x forward, y left, z up.
			view = mgl64.Vec3{-pose.Origin.Y(), pose.Origin.Z(), pose.Origin.X()}
			pitch, roll = pose.Angles.Pitch, pose.Angles.Roll
			yaw = pose.Angles.Yaw
		}

		x := anchorX + view.X()*ppu
		y := anchorY - view.Y()*ppu + pitch*pixelsPerDegree
		if isLocallySimulated(entry) {
			x -= yaw * pixelsPerDegree
		}

		vector.FillRect(screen,
			float32(x-modelWidth/2), float32(y-modelHeight/2),
			modelWidth, modelHeight,
			clr, false)

		// Roll indicator across the top of the block.
		sr, cr := math.Sincos(mgl64.DegToRad(roll * 4))
		half := modelWidth * 0.6
		vector.StrokeLine(screen,
			float32(x-cr*half), float32(y-modelHeight/2+sr*half),
			float32(x+cr*half), float32(y-modelHeight/2-sr*half),
			2, cfg.White, true)

		// Facing indicator for replicas, which have no local eye.
		if !isLocallySimulated(entry) {
			sy, cy := math.Sincos(mgl64.DegToRad(yaw))
			vector.StrokeLine(screen,
				float32(x), float32(y+modelHeight/2+12),
				float32(x-sy*12), float32(y+modelHeight/2+12-cy*12),
				1, clr, true)
		}

		label := fmt.Sprintf("#%d owner %d", vm.Index, vm.Owner)
		text.Draw(screen, label, fonts.Mono.Get(), int(x-modelWidth/2), int(y+modelHeight/2+30), cfg.White)
	})
}

// DrawHUD returns a renderer for the session and tuning readout.
func DrawHUD(session *systems.Session) func(e *ecs.ECS, screen *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		face := fonts.Regular.Get()
		lines := []string{
			fmt.Sprintf("local player %d", session.LocalPlayer),
			fmt.Sprintf("lag %s  scale %.1f", onOff(cfg.ViewModel.Lag.Enabled), cfg.ViewModel.Lag.Scale),
			fmt.Sprintf("bob %s  scale %.2f", onOff(cfg.ViewModel.Bob.Enabled), systems.CurrentTuning().BobScale),
		}

		tags.ViewModel.Each(e.World, func(entry *donburi.Entry) {
			if !isLocallySimulated(entry) {
				return
			}
			if bob, ok := systems.BobStateOf(entry); ok {
				lines = append(lines, fmt.Sprintf("bob phase %.2f  speed %.0f", bob.Phase, bob.LastSpeed))
			}
			if entry.HasComponent(components.ViewModelLag) {
				lag := components.ViewModelLag.Get(entry)
				lines = append(lines, fmt.Sprintf("lag yaw %.1f  samples %d", lag.LastOffset.Angles.Yaw, lag.History.Len()))
			}
		})

		lines = append(lines, "WASD move  mouse/arrows look  Q snap  O swap  J join  TAB tune  R reset")

		y := 14
		for _, line := range lines {
			text.Draw(screen, line, face, 8, y, hudColor)
			y += 12
		}
	}
}

var hudColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}

func isLocallySimulated(entry *donburi.Entry) bool {
	return entry.HasComponent(components.ViewModelEngage) && components.ViewModelEngage.Get(entry).Active
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
