package scenes

import (
	cfg "github.com/automoto/goblin-siege/config"
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Options carries what every round needs from the launcher.
type Options struct {
	Level  string
	Tuning *cfg.TuningWatcher // nil when hot reload is off
}
