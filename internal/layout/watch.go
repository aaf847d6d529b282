package layout

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"love-museum/internal/logger"
)

// Watcher reloads a layout file whenever it is written and delivers every version that
// parses and validates. Broken edits are logged and skipped.
type Watcher struct {
	path string
	fw   *fsnotify.Watcher
	log  *logger.Logger
	out  chan Layout
}

// Watch starts watching path. The parent directory is watched so editors that save by
// renaming a temporary file are still seen.
func Watch(path string, log *logger.Logger) (*Watcher, error) {
	if log == nil {
		log = logger.Nop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch layout: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch layout: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch layout: %w", err)
	}
	w := &Watcher{path: abs, fw: fw, log: log, out: make(chan Layout, 1)}
	go w.run()
	return w, nil
}

// Changes delivers reloaded layouts. Only the newest unread one is kept. It is closed by Close.
func (w *Watcher) Changes() <-chan Layout {
	return w.out
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

func (w *Watcher) run() {
	defer close(w.out)
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 || filepath.Clean(ev.Name) != w.path {
				continue
			}
			l, err := Load(w.path)
			if err != nil {
				w.log.Warn("layout reload rejected", zap.String("path", w.path), zap.Error(err))
				continue
			}
			w.send(l)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.log.Warn("layout watcher error", zap.Error(err))
		}
	}
}

// send replaces an unread layout with l. run is the only sender, so the drain leaves room.
func (w *Watcher) send(l Layout) {
	select {
	case <-w.out:
	default:
	}
	w.out <- l
}
