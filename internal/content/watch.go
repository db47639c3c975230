package content

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Update is a reloaded section, or the error that prevented reloading it.
type Update struct {
	Section Section
	Err     error
}

// Watcher reloads a content file whenever it changes on disk.
type Watcher struct {
	path     string
	key      string
	debounce *debouncer
	log      *zap.Logger
}

// NewWatcher creates a watcher for the section stored under key in path.
func NewWatcher(path, key string, log *zap.Logger) *Watcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{
		path:     path,
		key:      key,
		debounce: newDebouncer(DefaultDebounce),
		log:      log,
	}
}

// Run watches until ctx is cancelled. Updates are delivered on the returned
// channel, which is closed when the watcher stops.
//
// The parent directory is watched rather than the file itself so editors that
// save by rename are still noticed.
func (w *Watcher) Run(ctx context.Context) (<-chan Update, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(w.path)
	if err != nil {
		fw.Close()
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	out := make(chan Update)
	reload := make(chan struct{}, 1)

	go func() {
		defer close(out)
		defer fw.Close()
		defer w.debounce.Cancel()

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || !relevant(ev.Op) {
					continue
				}
				w.debounce.Trigger(func() {
					select {
					case reload <- struct{}{}:
					default:
					}
				})

			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				w.log.Warn("content watch error", zap.String("path", w.path), zap.Error(err))

			case <-reload:
				sec, err := Load(w.path, w.key)
				if err != nil {
					w.log.Warn("content reload failed", zap.String("path", w.path), zap.Error(err))
				} else {
					w.log.Info("content reloaded",
						zap.String("path", w.path),
						zap.Int("items", sec.Len()))
				}
				select {
				case out <- Update{Section: sec, Err: err}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func relevant(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create) || op.Has(fsnotify.Rename)
}
