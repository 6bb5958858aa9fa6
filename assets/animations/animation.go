package animations

import (
	"errors"
	"fmt"

	cfg "github.com/automoto/goblin-siege/config"
	"github.com/automoto/goblin-siege/shared/gamemath"
)

// ErrMissingClip is returned by Set.Play for an id with no clip.
var ErrMissingClip = errors.New("animations: missing clip")

// Animation is a frame clock over a strip of Frames frames.
type Animation struct {
	Frames           int
	FrameSeconds     float64
	elapsed          float64
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

func (a *Animation) Update(dt float64) {
	if a.FrameSeconds <= 0 || a.Finished() {
		return
	}
	a.elapsed += dt
	for a.elapsed >= a.FrameSeconds {
		a.elapsed -= a.FrameSeconds
		a.frame++
		if a.frame < a.Frames {
			continue
		}
		a.Looped = true
		if a.FreezeOnComplete {
			// Stay on last frame
			a.frame = a.Frames - 1
			return
		}
		// loop back to the beginning
		a.frame = 0
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Finished reports whether a frozen clip has reached its last frame. Looping
// clips never finish.
func (a *Animation) Finished() bool {
	return a.FreezeOnComplete && a.Looped
}

func (a *Animation) Restart() {
	a.frame = 0
	a.elapsed = 0
	a.Looped = false
}

func NewAnimation(frames int, frameSeconds float64) *Animation {
	return &Animation{
		Frames:       frames,
		FrameSeconds: frameSeconds,
	}
}

// Set holds one clip per AnimationID and plays one of them at a time.
type Set struct {
	clips   map[cfg.AnimationID]*Animation
	current cfg.AnimationID
	active  *Animation
	rate    float64
}

// NewSet builds a clip for each kind in defs facing each cardinal direction.
func NewSet(defs map[cfg.AnimationKind]cfg.AnimationDef) *Set {
	s := &Set{clips: make(map[cfg.AnimationID]*Animation), rate: 1}
	for kind, def := range defs {
		for _, dir := range gamemath.Cardinals {
			s.clips[cfg.AnimationID{Kind: kind, Facing: dir}] = NewAnimation(def.Frames, def.FrameSeconds)
		}
	}
	return s
}

// Play makes id the active clip. Replaying the active id keeps its progress
// and only updates the end behavior and rate.
func (s *Set) Play(id cfg.AnimationID, end cfg.EndBehavior, rate float64) error {
	clip, ok := s.clips[id]
	if !ok {
		return fmt.Errorf("%w: %s %s", ErrMissingClip, id.Kind, id.Facing)
	}
	if s.active != clip {
		clip.Restart()
		s.active = clip
		s.current = id
	}
	clip.FreezeOnComplete = end == cfg.EndStay
	s.rate = rate
	return nil
}

func (s *Set) Active(kind cfg.AnimationKind) bool {
	return s.active != nil && s.current.Kind == kind
}

func (s *Set) Finished() bool {
	return s.active != nil && s.active.Finished()
}

func (s *Set) Current() cfg.AnimationID {
	return s.current
}

func (s *Set) Frame() int {
	if s.active == nil {
		return 0
	}
	return s.active.Frame()
}

func (s *Set) Update(dt float64) {
	if s.active != nil {
		s.active.Update(dt * s.rate)
	}
}
