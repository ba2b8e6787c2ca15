package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{180, 180},
		{-180, 180},
		{190, -170},
		{-190, 170},
		{360, 0},
		{720 + 45, 45},
		{-540, 180},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, NormalizeAngle(tt.in), eps, "NormalizeAngle(%v)", tt.in)
	}
}

func TestAngleDiff_ShortestArc(t *testing.T) {
	assert.InDelta(t, 20.0, AngleDiff(-170, 170), eps)
	assert.InDelta(t, -20.0, AngleDiff(170, -170), eps)
	assert.InDelta(t, 90.0, AngleDiff(90, 0), eps)
}

func TestLerpAngle_WrapsAcrossSeam(t *testing.T) {
	// 170 -> -170 goes through 180, not through 0.
	mid := LerpAngle(170, -170, 0.5)
	assert.InDelta(t, 180.0, math.Abs(mid), eps)

	quarter := LerpAngle(170, -170, 0.25)
	assert.InDelta(t, 175.0, quarter, eps)
}

func TestLerpQAngle_Endpoints(t *testing.T) {
	from := QAngle{Pitch: 10, Yaw: 170, Roll: 0}
	to := QAngle{Pitch: -10, Yaw: -170, Roll: 5}

	assert.InDelta(t, from.Pitch, LerpQAngle(from, to, 0).Pitch, eps)
	assert.InDelta(t, from.Yaw, LerpQAngle(from, to, 0).Yaw, eps)
	end := LerpQAngle(from, to, 1)
	assert.InDelta(t, to.Pitch, end.Pitch, eps)
	assert.InDelta(t, to.Yaw, end.Yaw, eps)
	assert.InDelta(t, to.Roll, end.Roll, eps)
}

func TestClampQAngle(t *testing.T) {
	got := ClampQAngle(QAngle{Pitch: 30, Yaw: -90, Roll: 1}, 5)
	assert.Equal(t, QAngle{Pitch: 5, Yaw: -5, Roll: 1}, got)
}

func assertVec(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "component %d of %v", i, got)
	}
}

func TestAngleVectors_Identity(t *testing.T) {
	f, r, u := AngleVectors(QAngle{})
	assertVec(t, mgl64.Vec3{1, 0, 0}, f)
	assertVec(t, mgl64.Vec3{0, -1, 0}, r)
	assertVec(t, mgl64.Vec3{0, 0, 1}, u)
}

func TestAngleVectors_Orthonormal(t *testing.T) {
	f, r, u := AngleVectors(QAngle{Pitch: 33, Yaw: -120, Roll: 12})
	assert.InDelta(t, 1.0, f.Len(), 1e-9)
	assert.InDelta(t, 1.0, r.Len(), 1e-9)
	assert.InDelta(t, 1.0, u.Len(), 1e-9)
	assert.InDelta(t, 0.0, f.Dot(r), 1e-9)
	assert.InDelta(t, 0.0, f.Dot(u), 1e-9)
	assert.InDelta(t, 0.0, r.Dot(u), 1e-9)
}

func TestAngleVectors_YawAndPitch(t *testing.T) {
	f, _, _ := AngleVectors(QAngle{Yaw: 90})
	assertVec(t, mgl64.Vec3{0, 1, 0}, f)

	f, _, _ = AngleVectors(QAngle{Pitch: 90})
	assertVec(t, mgl64.Vec3{0, 0, -1}, f)
}

func TestRemapClamped(t *testing.T) {
	assert.Equal(t, 0.0, RemapClamped(-5, 0, 10, 0, 1))
	assert.Equal(t, 0.5, RemapClamped(5, 0, 10, 0, 1))
	assert.Equal(t, 1.0, RemapClamped(50, 0, 10, 0, 1))
	assert.Equal(t, 2.0, RemapClamped(3, 1, 1, 0, 2))
}

func TestClampLength(t *testing.T) {
	v := ClampLength(mgl64.Vec3{3, 4, 0}, 1)
	assert.InDelta(t, 1.0, v.Len(), eps)

	short := mgl64.Vec3{0.1, 0, 0}
	assert.Equal(t, short, ClampLength(short, 1))

	assert.Equal(t, mgl64.Vec3{}, ClampLength(mgl64.Vec3{1, 1, 1}, 0))
}
