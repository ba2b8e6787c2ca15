package archetypes

import (
	"github.com/automoto/doomerang-fps/components"
	"github.com/automoto/doomerang-fps/tags"
	"github.com/yohamta/donburi"
)

var (
	// ViewModel carries everything the motion pass needs. Replicas use the
	// same archetype: lag, bob and engage state stay attached while the
	// model follows snapshots, so ownership can move either way without
	// changing it. ReplicaInterp is added by the first snapshot.
	ViewModel = newArchetype(
		tags.ViewModel,
		components.ViewModel,
		components.ViewModelEye,
		components.ViewModelPose,
		components.ViewModelLag,
		components.BobState,
		components.ViewModelEngage,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(world donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := world.Entry(world.Create(
		append(a.components, cs...)...,
	))
	return e
}
