package panel

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/lixenwraith/sendama/core"
)

// Watcher reports changes under the assets directory as coalesced signals
// Runs as a service, the signal channel is drained by Assets on the loop thread
type Watcher struct {
	mu      sync.Mutex
	dir     string
	fsw     *fsnotify.Watcher
	changes chan struct{}
	done    chan struct{}
	stopped chan struct{}

	running atomic.Bool
	events  atomic.Uint64
}

// NewWatcher creates a watcher for dir, nothing is watched until Start
func NewWatcher(dir string) *Watcher {
	return &Watcher{dir: dir, changes: make(chan struct{}, 1)}
}

// WatcherName is the hub key of the assets watcher
const WatcherName = "assets-watcher"

// Name implements service.Service
func (w *Watcher) Name() string { return WatcherName }

// Dependencies implements service.Service
func (w *Watcher) Dependencies() []string { return nil }

// Init implements service.Service
func (w *Watcher) Init(...any) error { return nil }

// Changes returns the signal channel, at most one signal is pending
func (w *Watcher) Changes() <-chan struct{} { return w.changes }

// Events returns how many file events were observed
func (w *Watcher) Events() uint64 { return w.events.Load() }

// IsRunning reports whether the directory is being watched
func (w *Watcher) IsRunning() bool { return w.running.Load() }

// Start implements service.Service
// A missing directory is a soft warning and leaves the watcher idle
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running.Load() {
		return nil
	}
	if info, err := os.Stat(w.dir); err != nil || !info.IsDir() {
		log.Printf("panel: assets directory %s unavailable, not watching", w.dir)
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create assets watcher")
	}
	if err := addRecursive(fsw, w.dir); err != nil {
		fsw.Close()
		return errors.Wrapf(err, "watch %s", w.dir)
	}

	w.fsw = fsw
	w.done = make(chan struct{})
	w.stopped = make(chan struct{})
	w.running.Store(true)

	fsw, done, stopped := w.fsw, w.done, w.stopped
	core.Go(func() { w.loop(fsw, done, stopped) })
	return nil
}

// Stop implements service.Service
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running.Load() {
		return nil
	}
	close(w.done)
	err := w.fsw.Close()
	<-w.stopped
	w.running.Store(false)
	return errors.Wrap(err, "close assets watcher")
}

func (w *Watcher) loop(fsw *fsnotify.Watcher, done <-chan struct{}, stopped chan<- struct{}) {
	defer close(stopped)
	for {
		select {
		case <-done:
			return
		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := addRecursive(fsw, ev.Name); err != nil {
						log.Printf("panel: watch %s: %v", ev.Name, err)
					}
				}
			}
			w.events.Add(1)
			w.signal()
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			log.Printf("panel: assets watcher: %v", err)
		}
	}
}

// signal never blocks, pending signals coalesce
func (w *Watcher) signal() {
	select {
	case w.changes <- struct{}{}:
	default:
	}
}

func addRecursive(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return fsw.Add(path)
	})
}
