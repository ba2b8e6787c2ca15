package netcomponents

import (
	"testing"

	"github.com/automoto/doomerang-fps/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

func TestLerpNetViewModel_ShortestArc(t *testing.T) {
	from := NetViewModelData{Owner: 3, Origin: [3]float64{0, 0, 0}, Angles: gamemath.QAngle{Yaw: 170}}
	to := NetViewModelData{Owner: 4, Index: 1, Origin: [3]float64{10, -10, 2}, Angles: gamemath.QAngle{Yaw: -170}}

	mid := LerpNetViewModel(from, to, 0.5)

	assert.Equal(t, uint(4), mid.Owner)
	assert.Equal(t, 1, mid.Index)
	assert.Equal(t, [3]float64{5, -5, 1}, mid.Origin)
	assert.InDelta(t, 180.0, abs(mid.Angles.Yaw), 1e-9)
}

func TestLerpNetPlayerMotion(t *testing.T) {
	from := NetPlayerMotionData{EyeAngles: gamemath.QAngle{Pitch: -10}, HorizontalSpeed: 0}
	to := NetPlayerMotionData{EyeOrigin: [3]float64{4, 0, 64}, EyeAngles: gamemath.QAngle{Pitch: 10}, HorizontalSpeed: 200}

	got := LerpNetPlayerMotion(from, to, 0.25)

	assert.Equal(t, [3]float64{1, 0, 16}, got.EyeOrigin)
	assert.InDelta(t, -5.0, got.EyeAngles.Pitch, 1e-9)
	assert.InDelta(t, 50.0, got.HorizontalSpeed, 1e-9)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
