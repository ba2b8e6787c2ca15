package systems

import (
	"math"

	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/shared/gamemath"
	"github.com/automoto/doomerang-fps/shared/netcomponents"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

const maxPitch = 89.0

// EyeInput is one frame of look and move intent for the local player.
type EyeInput struct {
	LookX, LookY float64 // Mouse delta in pixels
	Turn         float64 // Keyboard yaw axis, -1 (right) to 1 (left)
	Forward      float64 // -1 to 1
	Strafe       float64 // -1 (left) to 1 (right)
	Run          bool
	SnapTurn     bool
}

// EyeController moves the local player's eye. It stands in for player
// movement, which normally writes ViewModelEye before the view-model pass.
type EyeController struct {
	snap     *gween.Tween
	snapLast float32
}

// SnapTurning reports whether a snap turn is in progress.
func (c *EyeController) SnapTurning() bool {
	return c.snap != nil
}

// Step applies one frame of input to eye.
func (c *EyeController) Step(eye *components.ViewModelEyeData, in EyeInput, dt float64, s cfg.SandboxConfig) {
	if dt <= 0 {
		return
	}

	// Source yaw grows to the left, so moving the mouse right turns negative.
	yaw := eye.Angles.Yaw + in.Turn*s.TurnSpeed*dt - in.LookX*s.MouseSensitivity
	pitch := eye.Angles.Pitch + in.LookY*s.MouseSensitivity

	if in.SnapTurn && c.snap == nil {
		c.snap = gween.New(0, float32(s.SnapTurnDegrees), float32(s.SnapTurnSeconds), ease.InOutQuad)
		c.snapLast = 0
	}
	if c.snap != nil {
		current, done := c.snap.Update(float32(dt))
		yaw += float64(current - c.snapLast)
		c.snapLast = current
		if done {
			c.snap = nil
		}
	}

	eye.Angles = gamemath.QAngle{
		Pitch: gamemath.Clamp(pitch, -maxPitch, maxPitch),
		Yaw:   gamemath.NormalizeAngle(yaw),
		Roll:  eye.Angles.Roll,
	}

	speed := s.WalkSpeed
	if in.Run {
		speed = s.RunSpeed
	}

	// Movement stays on the ground plane regardless of pitch.
	forward, right, _ := gamemath.AngleVectors(gamemath.QAngle{Yaw: eye.Angles.Yaw})
	wish := forward.Mul(in.Forward).Add(right.Mul(in.Strafe))
	if l := wish.Len(); l > 1 {
		wish = wish.Mul(1 / l)
	}
	velocity := wish.Mul(speed)

	eye.Position = eye.Position.Add(velocity.Mul(dt))
	eye.HorizontalSpeed = math.Hypot(velocity.X(), velocity.Y())
}

// PlayerMotion packs an eye into its replicated form.
func PlayerMotion(eye components.ViewModelEyeData) netcomponents.NetPlayerMotionData {
	return netcomponents.NetPlayerMotionData{
		EyeOrigin:       [3]float64(eye.Position),
		EyeAngles:       eye.Angles,
		HorizontalSpeed: eye.HorizontalSpeed,
	}
}

// ApplyNetPlayerMotion writes a player's motion into the view model they
// hold. The eye drives lag and bob, and also becomes the model's base pose.
func ApplyNetPlayerMotion(entry *donburi.Entry, motion netcomponents.NetPlayerMotionData) {
	eye := components.ViewModelEyeData{
		Position:        mgl64.Vec3(motion.EyeOrigin),
		Angles:          motion.EyeAngles,
		HorizontalSpeed: motion.HorizontalSpeed,
	}
	if entry.HasComponent(components.ViewModelEye) {
		components.ViewModelEye.SetValue(entry, eye)
	}
	pose := components.ViewModelPose.Get(entry)
	pose.BaseOrigin = eye.Position
	pose.BaseAngles = eye.Angles
}

// ViewSpace expresses a world-space offset in the eye basis: x right, y up,
// z forward.
func ViewSpace(offset mgl64.Vec3, eyeAngles gamemath.QAngle) mgl64.Vec3 {
	forward, right, up := gamemath.AngleVectors(eyeAngles)
	return mgl64.Vec3{offset.Dot(right), offset.Dot(up), offset.Dot(forward)}
}
