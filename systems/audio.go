package systems

import (
	"sync"

	"github.com/automoto/goblin-siege/assets"
	"github.com/automoto/goblin-siege/components"
	cfg "github.com/automoto/goblin-siege/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// SoundSink plays one sound effect, fire and forget.
type SoundSink interface {
	Play(id cfg.SoundID, volume float64)
}

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalSink         SoundSink
	audioInitOnce      sync.Once
)

// InitAudio creates the audio context and the tone bank. Safe to call from
// every scene.
func InitAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalSink = assets.NewToneBank(globalAudioContext)
	})
}

// SetSoundSink replaces where sounds go. Nil drops them.
func SetSoundSink(s SoundSink) {
	globalSink = s
}

// UpdateAudio drains the pending sound effects.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if globalSink != nil && !audioData.Muted && audioData.SFXVolume > 0 {
		for _, soundID := range audioData.PendingSFX {
			globalSink.Play(soundID, audioData.SFXVolume)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}
