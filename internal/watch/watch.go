// Package watch reports debounced changes of a single graph file.
package watch

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last event before a change
// is emitted.
const DefaultDebounce = 100 * time.Millisecond

// Change is one debounced modification of the watched file.
type Change struct {
	File    string // absolute path
	Removed bool   // the file no longer exists
}

// Watcher watches the directory of one file so that atomic
// rename-over-write saves are seen too.
type Watcher struct {
	File    string
	Changes <-chan Change

	changes  chan Change
	done     chan struct{}
	debounce time.Duration
	watcher  *fsnotify.Watcher
}

// New creates a watcher for file. debounce ≤ 0 uses DefaultDebounce.
func New(file string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan Change, 4)
	return &Watcher{
		File:     abs,
		Changes:  ch,
		changes:  ch,
		done:     make(chan struct{}),
		debounce: debounce,
		watcher:  fw,
	}, nil
}

// Start begins watching. On failure the underlying watcher is released and
// Stop becomes a no-op apart from closing Changes.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.File)); err != nil {
		w.watcher.Close()
		close(w.done)
		return err
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and, once the loop has exited, the Changes channel.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	var pending time.Time
	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				if !pending.IsZero() {
					w.emit()
				}
				return
			}
			if filepath.Clean(event.Name) != w.File {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case <-ticker.C:
			if !pending.IsZero() && time.Since(pending) >= w.debounce {
				w.emit()
				pending = time.Time{}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Non-fatal; the next event still arrives.
		}
	}
}

func (w *Watcher) emit() {
	_, err := os.Stat(w.File)
	c := Change{File: w.File, Removed: errors.Is(err, os.ErrNotExist)}
	select {
	case w.changes <- c:
	default:
		// A change is already queued; the consumer will reload anyway.
	}
}
