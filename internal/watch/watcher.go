// Package watch reports changes to the directories shown in the panes.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce coalesces bursts such as an editor's write-rename-chmod.
const DefaultDebounce = 150 * time.Millisecond

// Watcher watches a small set of directories (non-recursively) and emits a
// directory path on Changes once its contents settle.
type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	log      *logrus.Entry

	mu   sync.Mutex
	dirs map[string]struct{}

	changes   chan string
	done      chan struct{}
	closeOnce sync.Once
}

// New starts a watcher. A non-positive debounce uses DefaultDebounce.
func New(debounce time.Duration, log *logrus.Entry) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	w := &Watcher{
		fs:       fsw,
		debounce: debounce,
		log:      log,
		dirs:     map[string]struct{}{},
		changes:  make(chan string, 8),
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Changes delivers the path of a watched directory whose contents changed.
func (w *Watcher) Changes() <-chan string { return w.changes }

// Set replaces the watched directories with dirs.
func (w *Watcher) Set(dirs ...string) error {
	want := make(map[string]struct{}, len(dirs))
	for _, d := range dirs {
		want[filepath.Clean(d)] = struct{}{}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	for d := range w.dirs {
		if _, keep := want[d]; keep {
			continue
		}
		// The directory may already be gone; fsnotify drops it on its own.
		_ = w.fs.Remove(d)
		delete(w.dirs, d)
	}
	var firstErr error
	for d := range want {
		if _, ok := w.dirs[d]; ok {
			continue
		}
		if err := w.fs.Add(d); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("watch %s: %w", d, err)
			}
			continue
		}
		w.dirs[d] = struct{}{}
	}
	return firstErr
}

// Watched returns the directories currently watched.
func (w *Watcher) Watched() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, 0, len(w.dirs))
	for d := range w.dirs {
		out = append(out, d)
	}
	return out
}

// Close stops the watcher. Changes is not closed; callers select on their
// own shutdown.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

// owner maps an event path to the watched directory it affects.
func (w *Watcher) owner(name string) (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	name = filepath.Clean(name)
	if _, ok := w.dirs[name]; ok {
		return name, true
	}
	if dir := filepath.Dir(name); dir != name {
		if _, ok := w.dirs[dir]; ok {
			return dir, true
		}
	}
	return "", false
}

func (w *Watcher) loop() {
	pending := map[string]struct{}{}
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			dir, ok := w.owner(ev.Name)
			if !ok {
				continue
			}
			w.log.WithFields(logrus.Fields{"path": ev.Name, "op": ev.Op.String()}).Debug("fs event")
			pending[dir] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			for dir := range pending {
				select {
				case w.changes <- dir:
				case <-w.done:
					return
				}
			}
			pending = map[string]struct{}{}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("watcher error")
		}
	}
}
