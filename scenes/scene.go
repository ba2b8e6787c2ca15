package scenes

import "github.com/yohamta/donburi/ecs"

// Render layers
const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
)

// SceneChanger allows scenes to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}
