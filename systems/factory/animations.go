package factory

import (
	"fmt"

	"github.com/automoto/goblin-siege/assets/animations"
	"github.com/automoto/goblin-siege/components"
	cfg "github.com/automoto/goblin-siege/config"
)

// GenerateAnimations creates an AnimationData component based on the character key
// (e.g., "player", "goblin") which maps to a set of animation definitions in config.
func GenerateAnimations(key string) components.AnimationData {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}
	return components.AnimationData{Animator: animations.NewSet(defs)}
}
