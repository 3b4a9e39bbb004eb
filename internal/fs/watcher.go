package fs

import (
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDebounce coalesces bursts of filesystem events.
const DefaultWatchDebounce = 150 * time.Millisecond

// Watcher reports changes inside a small set of watched directories. Bursts
// of events are collapsed into one notification per debounce window.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration

	mu      sync.Mutex
	watched map[string]struct{}

	changes chan struct{}
	errs    chan error
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewWatcher starts an fsnotify watcher with nothing watched yet.
func NewWatcher(debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	w := &Watcher{
		fsw:      fsw,
		debounce: debounce,
		watched:  make(map[string]struct{}),
		changes:  make(chan struct{}, 1),
		errs:     make(chan error, 1),
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Watch replaces the watched set with dirs. Directories that cannot be
// watched are skipped; the first such error is returned.
func (w *Watcher) Watch(dirs ...string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	want := make(map[string]struct{}, len(dirs))
	for _, dir := range dirs {
		if dir != "" {
			want[dir] = struct{}{}
		}
	}

	for dir := range w.watched {
		if _, keep := want[dir]; !keep {
			_ = w.fsw.Remove(dir)
			delete(w.watched, dir)
		}
	}

	var firstErr error
	for dir := range want {
		if _, ok := w.watched[dir]; ok {
			continue
		}
		if err := w.fsw.Add(dir); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			continue
		}
		w.watched[dir] = struct{}{}
	}
	return firstErr
}

// Changes delivers one value per debounced burst of events.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Errors delivers watcher failures. Errors are dropped while one is pending.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.done:
			return
		case _, ok := <-w.fsw.Events:
			if !ok {
				return
			}
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
			fire = timer.C
		case <-fire:
			fire = nil
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}
