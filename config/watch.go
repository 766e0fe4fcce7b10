package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// TuningWatcher reloads a tuning file whenever it changes on disk.
// Parsed tunings arrive on Updates; they are not applied automatically so the
// simulation can apply them between ticks.
type TuningWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Updates chan *Tuning
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// WatchTuning starts watching path. The parent directory is watched so that
// editors that replace the file on save are handled.
func WatchTuning(path string) (*TuningWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	tw := &TuningWatcher{
		watcher: w,
		path:    abs,
		Updates: make(chan *Tuning, 4),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

// Close stops the watcher. Updates and Errors are closed once the watch
// goroutine exits.
func (tw *TuningWatcher) Close() error {
	var err error
	tw.once.Do(func() {
		close(tw.closeCh)
		err = tw.watcher.Close()
	})
	return err
}

func (tw *TuningWatcher) run() {
	defer close(tw.Updates)
	defer close(tw.Errors)

	var last time.Time
	for {
		select {
		case event, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if name, err := filepath.Abs(event.Name); err != nil || name != tw.path {
				continue
			}
			now := time.Now()
			if now.Sub(last) < reloadDebounce {
				continue
			}
			last = now

			t, err := LoadTuning(tw.path)
			if err != nil {
				tw.sendErr(err)
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
			tw.sendErr(err)
		case <-tw.closeCh:
			return
		}
	}
}

// sendErr drops the error if the previous one has not been consumed yet.
func (tw *TuningWatcher) sendErr(err error) {
	select {
	case tw.Errors <- err:
	default:
	}
}
