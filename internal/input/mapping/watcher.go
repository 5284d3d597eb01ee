package mapping

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ReloadFunc is called after watched keymap files change. It runs on the
// watcher goroutine; implementations typically rebuild the mapping and
// swap it in between frames.
type ReloadFunc func(path string)

// Watcher watches keymap files and reports changes, debounced so a burst
// of editor writes produces one reload.
type Watcher struct {
	mu sync.Mutex

	fsw      *fsnotify.Watcher
	onReload ReloadFunc
	debounce time.Duration

	pending map[string]time.Time
	closed  bool
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewWatcher creates a watcher that calls onReload when a watched file
// changes.
func NewWatcher(onReload ReloadFunc) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		onReload: onReload,
		debounce: 100 * time.Millisecond,
		pending:  make(map[string]time.Time),
		done:     make(chan struct{}),
	}

	w.wg.Add(1)
	go w.loop()

	return w, nil
}

// Watch adds a keymap file or directory to the watch list.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	return w.fsw.Add(abs)
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.done)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

// loop translates fsnotify events into debounced reload calls.
func (w *Watcher) loop() {
	defer w.wg.Done()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.mu.Lock()
			w.pending[ev.Name] = time.Now()
			w.mu.Unlock()
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Watch errors are not fatal; the next poll may succeed.
		case <-ticker.C:
			w.flush()
		}
	}
}

// flush emits reloads for files whose last event is older than the
// debounce window.
func (w *Watcher) flush() {
	cutoff := time.Now().Add(-w.debounce)

	w.mu.Lock()
	var ready []string
	for path, last := range w.pending {
		if last.Before(cutoff) {
			ready = append(ready, path)
			delete(w.pending, path)
		}
	}
	cb := w.onReload
	w.mu.Unlock()

	if cb == nil {
		return
	}
	for _, path := range ready {
		cb(path)
	}
}
