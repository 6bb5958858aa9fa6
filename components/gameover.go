package components

import "github.com/yohamta/donburi"

// GameOverCause records what ended the round.
type GameOverCause int

const (
	CausePylonDestroyed GameOverCause = iota
	CausePlayerDied
)

func (c GameOverCause) String() string {
	switch c {
	case CausePylonDestroyed:
		return "The pylon was destroyed"
	case CausePlayerDied:
		return "You were slain"
	}
	return "unknown"
}

// GameOverData stores the final state shown on the game over screen
type GameOverData struct {
	Cause       GameOverCause
	WaveReached int
	BestWave    int
}

var GameOver = donburi.NewComponentType[GameOverData]()
