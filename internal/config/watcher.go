package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file when it changes on disk. Reloaded configs
// arrive on Changes; only the newest undelivered one is kept, so a slow
// reader never blocks the watcher.
type Watcher struct {
	path     string
	debounce time.Duration
	fsw      *fsnotify.Watcher

	changes chan *Config
	errors  chan error

	closeOnce sync.Once
	done      chan struct{}
	wg        sync.WaitGroup
}

// Watch starts watching path. The file's directory is watched so editors
// that replace the file on save are still seen.
func Watch(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	w := &Watcher{
		path:     abs,
		debounce: debounce,
		fsw:      fsw,
		changes:  make(chan *Config, 1),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Changes delivers each successfully reloaded config.
func (w *Watcher) Changes() <-chan *Config { return w.changes }

// Errors delivers reload and watch failures.
func (w *Watcher) Errors() <-chan error { return w.errors }

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

func (w *Watcher) loop() {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.sendErr(err)
		case <-fire:
			fire = nil
			cfg, err := Load(w.path)
			if err != nil {
				w.sendErr(err)
				continue
			}
			w.sendConfig(cfg)
		}
	}
}

func (w *Watcher) sendConfig(cfg *Config) {
	select {
	case <-w.changes:
	default:
	}
	w.changes <- cfg
}

func (w *Watcher) sendErr(err error) {
	select {
	case w.errors <- err:
	default:
	}
}

// Close stops the watcher and waits for its goroutine.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}
