package vfs

import (
	"io"
	"io/fs"
	"time"
)

// MaxModTime is the sentinel modification time reported for entries whose
// backing store carries no timestamp metadata, such as embedded resources.
// It means "unknown, assume always current" rather than any real time.
//
//nolint:gochecknoglobals
var MaxModTime = time.Date(9999, time.December, 31, 23, 59, 59, 999999999, time.UTC)

// FileInfo describes a single file held by a FileProvider.
type FileInfo interface {
	// Exists reports whether the file was found.
	Exists() bool

	// Name returns the display name of the file: the final segment of the
	// subpath it was looked up with.
	Name() string

	// Size returns the length of the file content in bytes, or -1 if the
	// length could not be determined. Providers may compute it lazily, in
	// which case the value is memoized on first access.
	Size() int64

	// ModTime returns the last modification time. Providers with no
	// timestamp metadata report MaxModTime.
	ModTime() time.Time

	// IsDir reports whether the entry is a directory.
	IsDir() bool

	// PhysicalPath returns the path of the file on disk, or "" when the
	// file has no disk presence.
	PhysicalPath() string

	// Open opens the file content for reading. Every call returns an
	// independent stream, which the caller must close. Opening a
	// non-existent file returns an error wrapping fs.ErrNotExist.
	Open() (io.ReadCloser, error)
}

// DirContents is a directory listing: an ordered collection of files plus an
// existence flag.
type DirContents interface {
	// Exists reports whether the directory was found. A listing may exist
	// and still be empty.
	Exists() bool

	// Files returns the entries of the directory.
	Files() []FileInfo
}

type notFoundFile struct {
	name string
}

var _ FileInfo = (*notFoundFile)(nil)

func (f *notFoundFile) Exists() bool         { return false }
func (f *notFoundFile) Name() string         { return f.name }
func (f *notFoundFile) Size() int64          { return -1 }
func (f *notFoundFile) ModTime() time.Time   { return time.Time{} }
func (f *notFoundFile) IsDir() bool          { return false }
func (f *notFoundFile) PhysicalPath() string { return "" }

func (f *notFoundFile) Open() (io.ReadCloser, error) {
	return nil, &fs.PathError{Op: "open", Path: f.name, Err: fs.ErrNotExist}
}

// NotFoundFile returns a FileInfo for a file that does not exist, carrying
// the given display name.
func NotFoundFile(name string) FileInfo { return &notFoundFile{name: name} }

type dirContents struct {
	files  []FileInfo
	exists bool
}

var _ DirContents = (*dirContents)(nil)

func (d *dirContents) Exists() bool      { return d.exists }
func (d *dirContents) Files() []FileInfo { return d.files }

// DirOf returns an existing DirContents holding the given files.
func DirOf(files ...FileInfo) DirContents {
	return &dirContents{files: files, exists: true}
}

// NotFoundDir returns an empty DirContents for a directory that does not
// exist.
func NotFoundDir() DirContents { return &dirContents{} }
