package theme

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/agilira/go-errors"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

// defaultSettle is how long the watcher waits for an editor to finish a
// burst of writes before signalling.
const defaultSettle = 25 * time.Millisecond

// Watcher signals when template files in a directory are created or
// written.
type Watcher struct {
	dir     string
	watcher *fsnotify.Watcher
	update  chan struct{}
	settle  time.Duration
}

// NewWatcher starts watching dir. Call Watch to begin delivering updates.
func NewWatcher(dir string) (*Watcher, error) {
	dir = filepath.Clean(dir)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrap(err, ErrCodeWatchFailed, "template directory not found").
			WithContext("dir", dir)
	}
	if !info.IsDir() {
		return nil, errors.New(ErrCodeWatchFailed, "not a directory").
			WithContext("dir", dir)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, ErrCodeWatchFailed, "create fsnotify watcher")
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, errors.Wrap(err, ErrCodeWatchFailed, "watch directory").
			WithContext("dir", dir)
	}

	return &Watcher{
		dir:     dir,
		watcher: fw,
		update:  make(chan struct{}),
		settle:  defaultSettle,
	}, nil
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string {
	return w.dir
}

// Updates delivers one value per settled burst of template file changes.
// It is closed when Watch returns.
func (w *Watcher) Updates() <-chan struct{} {
	return w.update
}

// Watch blocks until ctx is cancelled or the underlying watcher fails.
func (w *Watcher) Watch(ctx context.Context) error {
	events := make(chan struct{})

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return errors.New(ErrCodeWatchFailed, "watcher error channel closed")
				}
				return errors.Wrap(err, ErrCodeWatchFailed, "watch error").
					WithContext("dir", w.dir)
			case e, ok := <-w.watcher.Events:
				if !ok {
					return errors.New(ErrCodeWatchFailed, "watcher event channel closed")
				}
				if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
					continue
				}
				base := filepath.Base(e.Name)
				if len(base) > 0 && base[0] == '.' {
					continue
				}
				if !IsTemplateFile(base) {
					continue
				}
				select {
				case events <- struct{}{}:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
	})

	// Coalesce writes arriving within the settle window. The timer is only
	// armed while an event is pending.
	g.Go(func() error {
		timer := time.NewTimer(w.settle)
		timer.Stop()
		defer timer.Stop()
		var fire <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-events:
				timer.Reset(w.settle)
				fire = timer.C
			case <-fire:
				fire = nil
				select {
				case w.update <- struct{}{}:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
	})

	err := g.Wait()
	close(w.update)
	_ = w.watcher.Close()
	return err
}
