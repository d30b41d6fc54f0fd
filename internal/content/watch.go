package content

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Change reports a modification somewhere in the content directory.
type Change struct {
	Path string
	Op   fsnotify.Op
	// Err is set when the watcher itself failed.
	Err error
}

// Watcher notifies about changes in a content directory.
type Watcher struct {
	watcher *fsnotify.Watcher
	changes chan Change
	done    chan struct{}
}

// Watch starts watching dir and each of its content subdirectories.
func Watch(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		watcher: fw,
		changes: make(chan Change, 10),
		done:    make(chan struct{}),
	}
	if err := w.addTree(dir); err != nil {
		_ = fw.Close()
		return nil, err
	}
	go w.loop()
	return w, nil
}

// addTree watches root and every directory below it that is not skipped.
// Directories created later are added from the event loop.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && shouldSkipDir(d.Name()) {
			return fs.SkipDir
		}
		return w.watcher.Add(path)
	})
}

// Changes delivers changes until the watcher is closed.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	defer close(w.changes)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if event.Has(fsnotify.Create) && isDir(event.Name) && !shouldSkipDir(filepath.Base(event.Name)) {
				if err := w.addTree(event.Name); err != nil {
					if !w.send(Change{Err: err}) {
						return
					}
				}
			}
			if !w.send(Change{Path: event.Name, Op: event.Op}) {
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				err = nil
			}
			if !w.send(Change{Err: err}) {
				return
			}
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) send(c Change) bool {
	select {
	case w.changes <- c:
		return true
	case <-w.done:
		return false
	}
}
