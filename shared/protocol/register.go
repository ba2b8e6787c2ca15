package protocol

import (
	"fmt"

	"github.com/automoto/doomerang-fps/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetViewModel    uint = 20
	SyncIDNetPlayerMotion uint = 21
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetViewModel    uint8 = 20
	InterpIDNetPlayerMotion uint8 = 21
)

// RegisterComponents registers the view-model network components with necs
// for serialization. Both server and client must call it before any network
// operations.
func RegisterComponents() error {
	if err := esync.RegisterComponent(
		SyncIDNetViewModel,
		netcomponents.NetViewModelData{},
		netcomponents.NetViewModel,
		esync.WithInterpFn(InterpIDNetViewModel, netcomponents.LerpNetViewModel),
	); err != nil {
		return fmt.Errorf("register NetViewModel: %w", err)
	}

	if err := esync.RegisterComponent(
		SyncIDNetPlayerMotion,
		netcomponents.NetPlayerMotionData{},
		netcomponents.NetPlayerMotion,
		esync.WithInterpFn(InterpIDNetPlayerMotion, netcomponents.LerpNetPlayerMotion),
	); err != nil {
		return fmt.Errorf("register NetPlayerMotion: %w", err)
	}

	return nil
}
