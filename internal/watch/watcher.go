// Package watch notices when another process writes to the database file.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/existflow/mynotes/internal/logger"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long writes must settle before the callback fires
const DefaultDebounce = 250 * time.Millisecond

// Watcher calls OnChange once a burst of writes to a database has settled
type Watcher struct {
	watcher  *fsnotify.Watcher
	dbPath   string
	files    map[string]bool
	onChange func(ctx context.Context)
	debounce time.Duration
	log      *logger.Logger

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New creates a watcher for the SQLite database at dbPath. It watches the
// parent directory and reacts to the database file and its -wal/-journal
// companions.
func New(dbPath string, onChange func(ctx context.Context), log *logger.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if log == nil {
		log = logger.Nop()
	}

	abs, err := filepath.Abs(dbPath)
	if err != nil {
		abs = dbPath
	}

	return &Watcher{
		watcher: fw,
		dbPath:  abs,
		files: map[string]bool{
			abs:              true,
			abs + "-wal":     true,
			abs + "-journal": true,
		},
		onChange: onChange,
		debounce: DefaultDebounce,
		log:      log.WithFields(logger.F("component", "watch")),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// SetDebounce changes the settle time. Call before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Start begins watching. It returns once the directory is registered.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	dir := filepath.Dir(w.dbPath)
	if err := w.watcher.Add(dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.log.Debug("Watching database", logger.F("path", w.dbPath))

	go w.run(ctx)
	return nil
}

// Stop ends the watch and waits for the loop to exit
func (w *Watcher) Stop() {
	w.mu.Lock()
	wasRunning := w.running
	w.running = false
	w.mu.Unlock()

	if wasRunning {
		close(w.stopCh)
		<-w.doneCh
	}
	if err := w.watcher.Close(); err != nil {
		w.log.Warn("Failed to close watcher", logger.Err(err))
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	tick := w.debounce / 5
	if tick <= 0 {
		tick = time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	var lastEvent time.Time
	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if w.relevant(event) {
				lastEvent = time.Now()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("Watcher error", logger.Err(err))

		case <-ticker.C:
			if !lastEvent.IsZero() && time.Since(lastEvent) >= w.debounce {
				lastEvent = time.Time{}
				w.log.Debug("Database changed on disk")
				w.onChange(ctx)
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		name = event.Name
	}
	return w.files[name]
}
