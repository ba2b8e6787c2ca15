package systems

import (
	"math"

	"github.com/automoto/doomerang-fps/shared/gamemath"
	"github.com/automoto/doomerang-fps/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// SnapshotFeed stands in for the server in the sandbox. It emits a view-model
// snapshot per model at the replica tick rate, assigning owners from its own
// table so ownership can be handed around like on respawn.
type SnapshotFeed struct {
	owners []esync.NetworkId // Owner per model index
	acc    float64
	clock  float64
}

// NewSnapshotFeed creates a feed for len(owners) models.
func NewSnapshotFeed(owners ...esync.NetworkId) *SnapshotFeed {
	return &SnapshotFeed{owners: owners}
}

// Owner returns the server-side owner of model index.
func (f *SnapshotFeed) Owner(index int) esync.NetworkId {
	if index < 0 || index >= len(f.owners) {
		return 0
	}
	return f.owners[index]
}

// SwapOwners rotates ownership one model to the right.
func (f *SnapshotFeed) SwapOwners() {
	if len(f.owners) < 2 {
		return
	}
	last := f.owners[len(f.owners)-1]
	copy(f.owners[1:], f.owners[:len(f.owners)-1])
	f.owners[0] = last
}

// Advance moves the server clock by dt and returns the snapshots that became
// due, oldest tick first.
func (f *SnapshotFeed) Advance(dt, tickRate float64) []netcomponents.NetViewModelData {
	if dt <= 0 || tickRate <= 0 {
		return nil
	}
	interval := 1 / tickRate
	f.acc += dt

	var out []netcomponents.NetViewModelData
	for f.acc >= interval {
		f.acc -= interval
		f.clock += interval
		for i, owner := range f.owners {
			origin, angles := ScriptedPose(f.clock, i)
			out = append(out, netcomponents.NetViewModelData{
				Owner:  uint(owner),
				Index:  i,
				Origin: origin,
				Angles: angles,
			})
		}
	}
	return out
}

// ScriptedPose is the pose a remote player's model follows: a slow sway with
// a turn that crosses the yaw seam.
func ScriptedPose(t float64, index int) ([3]float64, gamemath.QAngle) {
	phase := t + float64(index)*0.5
	origin := [3]float64{
		0.3 * math.Sin(phase*2),
		0.2 * math.Cos(phase*3),
		0.1 * math.Sin(phase*5),
	}
	angles := gamemath.QAngle{
		Pitch: 10 * math.Sin(phase),
		Yaw:   gamemath.NormalizeAngle(phase * 60),
		Roll:  4 * math.Sin(phase*2),
	}
	return origin, angles
}
