package watcher

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DEBOUNCE_SECS = 5

// Watcher monitors the local recordings directory and emits a debounced
// event once a batch of new files has settled. Recordings land one show per
// directory, so the date directories are watched alongside the root.
type Watcher struct {
	watcher       *fsnotify.Watcher
	watchPath     string
	debounceTimer *time.Timer
	debounceMutex sync.Mutex
	running       bool
	stopChan      chan struct{}
	eventChan     chan<- RecordingEvent
}

// NewWatcher creates a new recordings watcher.
func NewWatcher(eventChan chan<- RecordingEvent) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher:   watcher,
		eventChan: eventChan,
		stopChan:  make(chan struct{}),
	}, nil
}

// Start begins watching the recordings path for new shows.
func (w *Watcher) Start(ctx context.Context, watchPath string) error {
	w.watchPath = watchPath
	slog.Info("Starting recordings watcher", "path", watchPath)

	if err := w.watcher.Add(watchPath); err != nil {
		return err
	}

	// Existing show-date directories get new tracks appended mid-run, so
	// watch them too.
	entries, err := os.ReadDir(watchPath)
	if err == nil {
		for _, entry := range entries {
			if entry.IsDir() {
				if err := w.watcher.Add(filepath.Join(watchPath, entry.Name())); err != nil {
					slog.Warn("Failed to watch show directory", "dir", entry.Name(), "error", err)
				}
			}
		}
	}

	w.running = true
	go w.watchLoop(ctx)

	slog.Info("Recordings watcher started successfully")
	return nil
}

// Stop stops the recordings watcher.
func (w *Watcher) Stop() {
	if !w.running {
		return
	}

	slog.Info("Stopping recordings watcher")
	w.running = false
	close(w.stopChan)

	w.debounceMutex.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
		w.debounceTimer = nil
	}
	w.debounceMutex.Unlock()

	w.watcher.Close()
}

// watchLoop processes file system events.
func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Recordings watcher error", "error", err)

		case <-w.stopChan:
			return

		case <-ctx.Done():
			return
		}
	}
}

// handleEvent processes a single file system event.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Create != fsnotify.Create {
		return
	}

	// A new show-date directory joins the watch set; a recording inside
	// one resets the debounce.
	if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
		if err := w.watcher.Add(event.Name); err != nil {
			slog.Warn("Failed to watch new show directory", "dir", event.Name, "error", err)
		}
	} else if !isRecording(event.Name) {
		return
	}

	slog.Info("Detected recordings change", "path", event.Name)

	w.debounceMutex.Lock()
	defer w.debounceMutex.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(time.Duration(DEBOUNCE_SECS)*time.Second, func() {
		w.emitDebounceEvent()
	})
}

// isRecording checks if the file is a supported recording format.
func isRecording(filePath string) bool {
	return strings.ToLower(filepath.Ext(filePath)) == ".flac"
}

// emitDebounceEvent emits a recording event after the debounce period.
func (w *Watcher) emitDebounceEvent() {
	event := RecordingEvent{
		Path:      w.watchPath,
		EventType: RecordingAdded,
		Timestamp: time.Now(),
	}

	select {
	case w.eventChan <- event:
		slog.Info("Emitted recordings event after debounce", "path", event.Path)
	default:
		slog.Warn("Event channel full, dropping recordings event", "path", event.Path)
	}
}
