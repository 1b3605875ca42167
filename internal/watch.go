package internal

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	tt "github.com/gnolang/simplint/internal/types"
)

const defaultDebounce = 100 * time.Millisecond

// SourceExtension is the extension of analysed files.
const SourceExtension = ".elm"

// ReportFunc receives the issues of a re-linted file.
type ReportFunc func(filename string, issues []tt.Issue)

// Watcher re-runs an engine on source files when they are written.
type Watcher struct {
	engine   *Engine
	watcher  *fsnotify.Watcher
	logger   *zap.Logger
	report   ReportFunc
	debounce time.Duration

	mu      sync.Mutex
	pending map[string]*time.Timer
}

func NewWatcher(engine *Engine, logger *zap.Logger, report ReportFunc) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating watcher: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		engine:   engine,
		watcher:  w,
		logger:   logger,
		report:   report,
		debounce: defaultDebounce,
		pending:  make(map[string]*time.Timer),
	}, nil
}

// Add watches every directory below the given paths.
func (w *Watcher) Add(paths ...string) error {
	for _, dir := range paths {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return w.watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}
	return nil
}

// Run processes file events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.stopTimers()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleFileEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) handleFileEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	if filepath.Ext(event.Name) != SourceExtension {
		return
	}

	// editors write files in several steps, treat them as one change
	w.mu.Lock()
	defer w.mu.Unlock()
	if timer, ok := w.pending[event.Name]; ok {
		timer.Reset(w.debounce)
		return
	}
	w.pending[event.Name] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.pending, event.Name)
		w.mu.Unlock()
		w.lint(event.Name)
	})
}

func (w *Watcher) lint(filename string) {
	issues, err := w.engine.Run(filename)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			w.logger.Error("error linting file", zap.String("file", filename), zap.Error(err))
		}
		return
	}
	w.logger.Debug("file linted", zap.String("file", filename), zap.Int("issues", len(issues)))
	if w.report != nil {
		w.report(filename, issues)
	}
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for name, timer := range w.pending {
		timer.Stop()
		delete(w.pending, name)
	}
}
