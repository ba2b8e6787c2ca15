package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// QAngle is an Euler orientation in degrees. Pitch is positive looking down,
// yaw rotates about +Z (world up) and roll rotates about the forward axis.
type QAngle struct {
	Pitch, Yaw, Roll float64
}

// Add returns a + b without normalizing.
func (a QAngle) Add(b QAngle) QAngle {
	return QAngle{Pitch: a.Pitch + b.Pitch, Yaw: a.Yaw + b.Yaw, Roll: a.Roll + b.Roll}
}

// Sub returns a - b without normalizing.
func (a QAngle) Sub(b QAngle) QAngle {
	return QAngle{Pitch: a.Pitch - b.Pitch, Yaw: a.Yaw - b.Yaw, Roll: a.Roll - b.Roll}
}

// Scale multiplies every axis by s.
func (a QAngle) Scale(s float64) QAngle {
	return QAngle{Pitch: a.Pitch * s, Yaw: a.Yaw * s, Roll: a.Roll * s}
}

// Normalize wraps every axis into (-180, 180].
func (a QAngle) Normalize() QAngle {
	return QAngle{Pitch: NormalizeAngle(a.Pitch), Yaw: NormalizeAngle(a.Yaw), Roll: NormalizeAngle(a.Roll)}
}

// IsZero reports whether all axes are exactly zero.
func (a QAngle) IsZero() bool {
	return a.Pitch == 0 && a.Yaw == 0 && a.Roll == 0
}

// NormalizeAngle wraps a degree value into (-180, 180].
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}

// AngleDiff returns the shortest signed arc from b to a, in (-180, 180].
func AngleDiff(a, b float64) float64 {
	return NormalizeAngle(a - b)
}

// LerpAngle interpolates along the shortest arc from `from` to `to`.
func LerpAngle(from, to, t float64) float64 {
	return NormalizeAngle(from + AngleDiff(to, from)*t)
}

// LerpQAngle interpolates each axis along its shortest arc.
func LerpQAngle(from, to QAngle, t float64) QAngle {
	return QAngle{
		Pitch: LerpAngle(from.Pitch, to.Pitch, t),
		Yaw:   LerpAngle(from.Yaw, to.Yaw, t),
		Roll:  LerpAngle(from.Roll, to.Roll, t),
	}
}

// DiffQAngle returns the per-axis shortest arc a - b.
func DiffQAngle(a, b QAngle) QAngle {
	return QAngle{
		Pitch: AngleDiff(a.Pitch, b.Pitch),
		Yaw:   AngleDiff(a.Yaw, b.Yaw),
		Roll:  AngleDiff(a.Roll, b.Roll),
	}
}

// ClampQAngle clamps every axis to [-limit, limit].
func ClampQAngle(a QAngle, limit float64) QAngle {
	return QAngle{
		Pitch: Clamp(a.Pitch, -limit, limit),
		Yaw:   Clamp(a.Yaw, -limit, limit),
		Roll:  Clamp(a.Roll, -limit, limit),
	}
}

// AngleVectors returns the forward, right and up unit vectors for an
// orientation. With a zero angle, forward is +X, right is -Y and up is +Z.
func AngleVectors(a QAngle) (forward, right, up mgl64.Vec3) {
	sp, cp := math.Sincos(mgl64.DegToRad(a.Pitch))
	sy, cy := math.Sincos(mgl64.DegToRad(a.Yaw))
	sr, cr := math.Sincos(mgl64.DegToRad(a.Roll))

	forward = mgl64.Vec3{cp * cy, cp * sy, -sp}
	right = mgl64.Vec3{
		-sr*sp*cy + cr*sy,
		-sr*sp*sy - cr*cy,
		-sr * cp,
	}
	up = mgl64.Vec3{
		cr*sp*cy + sr*sy,
		cr*sp*sy - sr*cy,
		cr * cp,
	}
	return forward, right, up
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// RemapClamped maps v from [a, b] onto [c, d], clamping to the output range.
func RemapClamped(v, a, b, c, d float64) float64 {
	if a == b {
		if v >= b {
			return d
		}
		return c
	}
	t := Clamp((v-a)/(b-a), 0, 1)
	return c + (d-c)*t
}

// ClampLength scales v down so its length does not exceed max.
func ClampLength(v mgl64.Vec3, max float64) mgl64.Vec3 {
	if max <= 0 {
		return mgl64.Vec3{}
	}
	l := v.Len()
	if l <= max {
		return v
	}
	return v.Mul(max / l)
}
