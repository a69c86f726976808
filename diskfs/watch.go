package diskfs

import (
	"io/fs"
	"path"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	vfs "github.com/mnguyen284/go-vfs"
)

// Watch returns a token that fires once, when a file under the provider's
// root matching pattern is created, written, renamed, or removed. The
// pattern is matched with path.Match against the slash-separated path
// relative to the root. If the watcher cannot be set up, an inert token is
// returned.
func (f *diskFS) Watch(pattern string) vfs.ChangeToken {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return vfs.NullChangeToken()
	}

	if err := watchTree(watcher, f.root); err != nil {
		watcher.Close()

		return vfs.NullChangeToken()
	}

	token := &diskToken{done: make(chan struct{})}
	go token.wait(watcher, f.root, pattern)

	return token
}

// watchTree registers the root and every existing subdirectory with the
// watcher. fsnotify watches are not recursive on their own.
func watchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		return watcher.Add(p)
	})
}

type diskToken struct {
	done chan struct{}
	once sync.Once
}

var _ vfs.ChangeToken = (*diskToken)(nil)

func (t *diskToken) HasChanged() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

func (t *diskToken) Done() <-chan struct{} { return t.done }

func (t *diskToken) fire() {
	t.once.Do(func() { close(t.done) })
}

func (t *diskToken) wait(watcher *fsnotify.Watcher, root, pattern string) {
	defer watcher.Close()

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}

			rel, err := filepath.Rel(root, ev.Name)
			if err != nil {
				continue
			}

			if ok, _ := path.Match(pattern, filepath.ToSlash(rel)); ok {
				t.fire()

				return
			}
		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
