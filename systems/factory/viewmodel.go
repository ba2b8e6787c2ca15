package factory

import (
	"github.com/automoto/doomerang-fps/archetypes"
	"github.com/automoto/doomerang-fps/components"
	cfg "github.com/automoto/doomerang-fps/config"
	"github.com/automoto/doomerang-fps/network"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
)

// CreateViewModel spawns a view model held by owner. The owner may be 0 for a
// model nobody holds yet. Local and remote models share one archetype; the
// session decides which path a model takes each frame.
func CreateViewModel(world donburi.World, owner esync.NetworkId, index int) *donburi.Entry {
	vm := archetypes.ViewModel.Spawn(world)

	components.ViewModel.SetValue(vm, components.ViewModelData{
		Owner: owner,
		Index: index,
	})
	components.ViewModelLag.SetValue(vm, components.ViewModelLagData{
		History: network.NewAngleHistory(cfg.ViewModel.Lag.MaxLookback),
	})

	return vm
}
