package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay is how long a tuning file must stay unchanged before it is
// reloaded.
var settleDelay = 100 * time.Millisecond

// TuningWatcher reloads a tuning file whenever it changes on disk. Parsed
// tunings arrive on Updates; read and parse failures arrive on Errors.
type TuningWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	Updates chan *Tuning
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewTuningWatcher watches the directory holding path, since editors often
// replace files instead of writing them in place.
func NewTuningWatcher(path string) (*TuningWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	tw := &TuningWatcher{
		path:    abs,
		watcher: w,
		Updates: make(chan *Tuning, 4),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

func (tw *TuningWatcher) Close() error {
	var err error
	tw.once.Do(func() {
		close(tw.closeCh)
		err = tw.watcher.Close()
		<-tw.done
		close(tw.Updates)
		close(tw.Errors)
	})
	return err
}

// run reloads once the file has been quiet for settleDelay, so a save that
// truncates and then writes is parsed after the last write.
func (tw *TuningWatcher) run() {
	defer close(tw.done)
	settle := time.NewTimer(settleDelay)
	settle.Stop()
	defer settle.Stop()
	for {
		select {
		case event, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if name, err := filepath.Abs(event.Name); err != nil || name != tw.path {
				continue
			}
			settle.Reset(settleDelay)
		case <-settle.C:
			t, err := LoadTuning(tw.path)
			if err != nil {
				tw.report(err)
				continue
			}
			select {
			case tw.Updates <- t:
			case <-tw.closeCh:
				return
			}
		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			tw.report(err)
		case <-tw.closeCh:
			return
		}
	}
}

// report drops the error if a previous one hasn't been read yet.
func (tw *TuningWatcher) report(err error) {
	select {
	case tw.Errors <- err:
	default:
	}
}
