package systems

import (
	"errors"
	"testing"

	"github.com/automoto/goblin-siege/components"
	cfg "github.com/automoto/goblin-siege/config"
	"github.com/automoto/goblin-siege/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// fakeAnimator plays clips without frames. An EndStay clip finishes after
// finishAfter updates.
type fakeAnimator struct {
	current     cfg.AnimationID
	end         cfg.EndBehavior
	started     bool
	ticks       int
	finishAfter int
	plays       int
}

func (a *fakeAnimator) Play(id cfg.AnimationID, end cfg.EndBehavior, rate float64) error {
	if a.started && id == a.current {
		return nil
	}
	a.current, a.end, a.started, a.ticks = id, end, true, 0
	a.plays++
	return nil
}

func (a *fakeAnimator) Active(kind cfg.AnimationKind) bool {
	return a.started && a.current.Kind == kind
}

func (a *fakeAnimator) Finished() bool {
	return a.started && a.end == cfg.EndStay && a.ticks >= a.finishAfter
}

func (a *fakeAnimator) Current() cfg.AnimationID { return a.current }

func (a *fakeAnimator) Update(dt float64) { a.ticks++ }

type recordingSink struct {
	played []cfg.SoundID
}

func (s *recordingSink) Play(id cfg.SoundID, volume float64) {
	s.played = append(s.played, id)
}

type memStore struct {
	items   map[string][]byte
	saveErr error
	saves   int
}

func newMemStore() *memStore {
	return &memStore{items: make(map[string][]byte)}
}

func (s *memStore) LoadItem(key string) ([]byte, error) {
	return s.items[key], nil
}

func (s *memStore) SaveItem(key string, data []byte) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.items[key] = append([]byte(nil), data...)
	return nil
}

var errDiskFull = errors.New("disk full")

// newTestECS builds a world with every singleton and a recording sound sink.
func newTestECS(t *testing.T) (*ecs.ECS, *recordingSink) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSingletons(e, 0)

	sink := &recordingSink{}
	SetSoundSink(sink)
	t.Cleanup(func() { SetSoundSink(nil) })
	return e, sink
}

// tick runs the given systems once, in order.
func tick(e *ecs.ECS, systems ...ecs.System) {
	for _, s := range systems {
		s(e)
	}
}

// physicsTick backs new entities, steps once and applies queued changes.
func physicsTick(e *ecs.ECS) {
	tick(e, UpdateLifecycleSpawn, UpdatePhysics, ApplyCommands)
}

func setAnimator(entry *donburi.Entry, a components.Animator) {
	components.Animation.Get(entry).Animator = a
}

func vec(x, y float64) dmath.Vec2 {
	return dmath.Vec2{X: x, Y: y}
}
