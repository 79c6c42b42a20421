package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/hseinsb/estimate-analyzer/logger"
)

// settleDelay gives the writer time to finish before the file is read.
// Dropped PDFs often arrive as a Create followed by several Writes.
const settleDelay = 500 * time.Millisecond

// InboxWatcher processes PDFs dropped into a watched directory, so scans
// from the shop's copier land in the system without anyone touching the API.
type InboxWatcher struct {
	dir     string
	service *EstimateService
	log     *zap.SugaredLogger

	mu   sync.Mutex
	seen map[string]time.Time
}

func NewInboxWatcher(dir string, service *EstimateService) *InboxWatcher {
	return &InboxWatcher{
		dir:     dir,
		service: service,
		log:     logger.GetLogger(),
		seen:    make(map[string]time.Time),
	}
}

// Run watches the inbox until the context is cancelled. Files already in
// the directory at startup are processed first.
func (w *InboxWatcher) Run(ctx context.Context) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(w.dir); err != nil {
		return err
	}
	w.log.Infow("watching inbox", "dir", w.dir)

	w.processExisting(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !isPDF(event.Name) {
				continue
			}
			go w.handleFile(ctx, event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Errorw("inbox watcher error", "error", err)
		}
	}
}

func (w *InboxWatcher) processExisting(ctx context.Context) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		w.log.Errorw("failed to scan inbox", "dir", w.dir, "error", err)
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || !isPDF(entry.Name()) {
			continue
		}
		w.handleFile(ctx, filepath.Join(w.dir, entry.Name()))
	}
}

func (w *InboxWatcher) handleFile(ctx context.Context, path string) {
	if !w.claim(path) {
		return
	}
	time.Sleep(settleDelay)

	data, err := os.ReadFile(path)
	if err != nil {
		w.log.Errorw("failed to read inbox file", "path", path, "error", err)
		w.release(path)
		return
	}

	fileName := filepath.Base(path)
	if _, err := w.service.ProcessPDF(ctx, fileName, data); err != nil {
		w.log.Errorw("failed to process inbox file", "path", path, "error", err)
		return
	}

	if err := os.Remove(path); err != nil {
		w.log.Warnw("failed to remove processed inbox file", "path", path, "error", err)
	}
}

// claim marks the path as in flight so Create followed by Write does not
// process the same file twice.
func (w *InboxWatcher) claim(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.seen[path]; ok && time.Since(t) < 10*time.Second {
		return false
	}
	w.seen[path] = time.Now()
	return true
}

func (w *InboxWatcher) release(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.seen, path)
}

func isPDF(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}
