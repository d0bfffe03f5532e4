// Package watcher watches the data directory and reports which datasets
// changed on disk, debounced.
package watcher

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/strata-labs/strata/internal/log"
	"github.com/strata-labs/strata/internal/pubsub"
)

// Watcher monitors a data directory for dataset file changes.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	dir       string
	debounce  time.Duration
	broker    *pubsub.Broker[[]string]
	done      chan struct{}
}

// Config holds watcher configuration options.
type Config struct {
	Dir         string
	DebounceDur time.Duration
}

// DefaultConfig returns the defaults for dir.
func DefaultConfig(dir string) Config {
	return Config{
		Dir:         dir,
		DebounceDur: 300 * time.Millisecond,
	}
}

// New creates a watcher. Nothing is watched until Start.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	return &Watcher{
		fsWatcher: fsw,
		dir:       cfg.Dir,
		debounce:  cfg.DebounceDur,
		broker:    pubsub.NewBroker[[]string](),
		done:      make(chan struct{}),
	}, nil
}

// Broker returns the broker change events are published on. Each event
// carries the sorted names of the datasets that changed.
func (w *Watcher) Broker() *pubsub.Broker[[]string] {
	return w.broker
}

// Start begins watching the directory.
func (w *Watcher) Start() error {
	if err := w.fsWatcher.Add(w.dir); err != nil {
		return fmt.Errorf("watching directory %s: %w", w.dir, err)
	}
	log.Info(log.CatWatcher, "watching data dir", "dir", w.dir)

	go w.loop()
	return nil
}

// Stop terminates the watcher and releases resources.
func (w *Watcher) Stop() error {
	close(w.done)
	w.broker.Close()
	return w.fsWatcher.Close()
}

func (w *Watcher) loop() {
	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending = map[string]struct{}{}
	)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			name, relevant := DatasetName(event)
			if !relevant {
				continue
			}
			pending[name] = struct{}{}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			if len(pending) == 0 {
				continue
			}
			names := make([]string, 0, len(pending))
			for name := range pending {
				names = append(names, name)
			}
			slices.Sort(names)
			clear(pending)

			log.Debug(log.CatWatcher, "datasets changed", "names", strings.Join(names, ","))
			w.broker.Publish(pubsub.KindChanged, names)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.ErrorErr(log.CatWatcher, "watch error", err)
			w.broker.Publish(pubsub.KindFailed, nil)

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// DatasetName maps a file event to the dataset it affects. Only writes,
// creates, removes and renames of .yaml/.yml files count.
func DatasetName(event fsnotify.Event) (string, bool) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return "", false
	}

	base := filepath.Base(event.Name)
	ext := filepath.Ext(base)
	if ext != ".yaml" && ext != ".yml" {
		return "", false
	}
	if strings.HasPrefix(base, ".") {
		return "", false
	}
	return strings.TrimSuffix(base, ext), true
}
