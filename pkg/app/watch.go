package app

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/gregjohnson2017/xenogl/pkg/log"
)

// ShaderWatcher reports writes to a set of shader files. Parent directories
// are watched so editors that replace files on save are noticed too.
type ShaderWatcher struct {
	fsnotify *fsnotify.Watcher
	files    map[string]bool
	changes  chan string
	done     chan struct{}
}

// WatchShaders starts watching paths. Empty paths are ignored.
func WatchShaders(paths ...string) (*ShaderWatcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &ShaderWatcher{
		fsnotify: fsWatch,
		files:    make(map[string]bool),
		changes:  make(chan string, 1),
		done:     make(chan struct{}),
	}
	dirs := make(map[string]bool)
	for _, path := range paths {
		if path == "" {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			fsWatch.Close()
			return nil, err
		}
		w.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fsWatch.Add(dir); err != nil {
			fsWatch.Close()
			return nil, err
		}
		dirs[dir] = true
	}
	go w.run()
	return w, nil
}

// Changes delivers the path of a changed shader. Changes that arrive while
// one is waiting to be received are merged into it. The channel is closed
// after Close.
func (w *ShaderWatcher) Changes() <-chan string {
	return w.changes
}

// Close stops watching.
func (w *ShaderWatcher) Close() error {
	close(w.done)
	return w.fsnotify.Close()
}

func (w *ShaderWatcher) run() {
	defer close(w.changes)
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			name, err := filepath.Abs(e.Name)
			if err != nil || !w.files[name] {
				continue
			}
			log.Debugf("shader %v changed", name)
			select {
			case w.changes <- name:
			default:
			}
		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			log.Warnf("shader watcher: %v", err)
		case <-w.done:
			return
		}
	}
}
