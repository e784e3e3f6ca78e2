package dataset

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event signals a change in the watched data directory.
type Event struct {
	Path string
	Err  error
}

// Watcher monitors a data directory for CSV changes and emits debounced
// events so the UI can offer a reload.
type Watcher struct {
	mu            sync.Mutex
	dir           string
	watcher       *fsnotify.Watcher
	eventChan     chan Event
	stopChan      chan struct{}
	stopOnce      sync.Once
	debounceTimer *time.Timer
}

// NewWatcher starts watching dir for CSV file changes.
func NewWatcher(dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		dir:       dir,
		watcher:   fsw,
		eventChan: make(chan Event, 16),
		stopChan:  make(chan struct{}),
	}

	go w.watchLoop()
	return w, nil
}

// Events returns the channel of debounced change events.
func (w *Watcher) Events() <-chan Event {
	return w.eventChan
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopChan)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) watchLoop() {
	const debounceInterval = 100 * time.Millisecond

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if !isCSV(event.Name) {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				// Debounce rapid changes
				w.mu.Lock()
				if w.debounceTimer != nil {
					w.debounceTimer.Stop()
				}
				path := event.Name
				w.debounceTimer = time.AfterFunc(debounceInterval, func() {
					w.sendEvent(Event{Path: path})
				})
				w.mu.Unlock()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendEvent(Event{Err: err})

		case <-w.stopChan:
			return
		}
	}
}

func (w *Watcher) sendEvent(event Event) {
	select {
	case <-w.stopChan:
	case w.eventChan <- event:
	default:
	}
}

func isCSV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".csv")
}
