package story

import (
	"context"
	"path/filepath"

	fsnotify "github.com/fsnotify/fsnotify"

	"dossier/internal/system"
)

// Watch reports changes to the story file at path. The parent directory is
// watched so editors that replace the file on save are still seen. The
// channel is closed when ctx ends. Bursts of events coalesce into one
// pending notification.
func Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}
	name := filepath.Clean(path)
	ch := make(chan struct{}, 1)
	go func() {
		defer close(ch)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != name {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				select {
				case ch <- struct{}{}:
				default:
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				system.Logger.Warn("story watch", "err", err)
			}
		}
	}()
	return ch, nil
}
