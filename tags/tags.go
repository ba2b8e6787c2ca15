package tags

import "github.com/yohamta/donburi"

var (
	ViewModel = donburi.NewTag().SetName("ViewModel")
)
