package env

import (
	"context"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

func NewConfigWatcher(path string, onChange func(Config)) *ConfigWatcher {
	return &ConfigWatcher{
		path:     path,
		onChange: onChange,
	}
}

// ConfigWatcher reloads the config file when it changes on disk. Only the
// mutable fields matter to callers; listeners decide what to apply.
type ConfigWatcher struct {
	path     string
	onChange func(Config)
}

func (w *ConfigWatcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	// watch the directory: editors replace the file via rename
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				cfg, err := LoadConfig(w.path)
				if err != nil {
					log.Printf("[!] config reload failed: %v", err)
					continue
				}
				w.onChange(cfg)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("[!] config watcher: %v", err)
			}
		}
	}()
	return nil
}
