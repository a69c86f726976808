// Package diskfs provides a FileProvider over a directory tree on the local
// filesystem. It is the usual fallback provider composed in front of
// embedded sources with compositefs.
package diskfs

import (
	"io"
	"os"
	"path/filepath"
	"time"

	vfs "github.com/mnguyen284/go-vfs"
	"github.com/mnguyen284/go-vfs/internal"
)

type diskFS struct {
	root string
}

var _ vfs.FileProvider = (*diskFS)(nil)

// New returns a FileProvider for the tree of files rooted at the given
// directory.
func New(root string) vfs.FileProvider {
	return &diskFS{root: filepath.Clean(root)}
}

func (f *diskFS) resolve(subpath string) string {
	trimmed := internal.TrimLeadingSeparator(subpath)

	return filepath.Join(f.root, filepath.FromSlash(trimmed))
}

func (f *diskFS) GetFile(subpath string) vfs.FileInfo {
	if subpath == "" {
		return vfs.NotFoundFile("")
	}

	full := f.resolve(subpath)

	fi, err := os.Stat(full)
	if err != nil || fi.IsDir() {
		return vfs.NotFoundFile(filepath.Base(full))
	}

	return &diskFile{path: full, fi: fi}
}

func (f *diskFS) GetDirectory(subpath string) vfs.DirContents {
	full := f.resolve(subpath)

	entries, err := os.ReadDir(full)
	if err != nil {
		return vfs.NotFoundDir()
	}

	files := make([]vfs.FileInfo, 0, len(entries))

	for _, de := range entries {
		fi, err := de.Info()
		if err != nil {
			// raced with a concurrent delete
			continue
		}

		files = append(files, &diskFile{path: filepath.Join(full, de.Name()), fi: fi})
	}

	return vfs.DirOf(files...)
}

// diskFile is an existing file on disk. Metadata comes from the stat call
// that found it; content is opened on demand.
type diskFile struct {
	path string
	fi   os.FileInfo
}

var _ vfs.FileInfo = (*diskFile)(nil)

func (f *diskFile) Exists() bool         { return true }
func (f *diskFile) Name() string         { return f.fi.Name() }
func (f *diskFile) Size() int64          { return f.fi.Size() }
func (f *diskFile) ModTime() time.Time   { return f.fi.ModTime() }
func (f *diskFile) IsDir() bool          { return f.fi.IsDir() }
func (f *diskFile) PhysicalPath() string { return f.path }

func (f *diskFile) Open() (io.ReadCloser, error) {
	return os.Open(f.path)
}
