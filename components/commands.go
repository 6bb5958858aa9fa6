package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Command is a structural change deferred to the next barrier.
type Command func(e *ecs.ECS)

type CommandQueueData struct {
	Pending []Command
}

var CommandQueue = donburi.NewComponentType[CommandQueueData]()
