package vfs

import (
	"io"
	"io/fs"
	"time"
)

// FS adapts a FileProvider into a read-only fs.FS, so that providers can be
// used with standard io/fs consumers. Lookup misses surface as fs.ErrNotExist
// path errors, and the provider's root directory is exposed as ".".
func FS(p FileProvider) fs.FS {
	return &providerFS{p: p}
}

type providerFS struct {
	p FileProvider
}

var (
	_ fs.FS         = (*providerFS)(nil)
	_ fs.ReadDirFS  = (*providerFS)(nil)
	_ fs.ReadFileFS = (*providerFS)(nil)
	_ fs.StatFS     = (*providerFS)(nil)
)

func (f *providerFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}

	if name == "." {
		return f.openDir(name)
	}

	fi := f.p.GetFile(name)
	if fi.Exists() {
		return &providerFile{fi: fi}, nil
	}

	// may be a directory
	return f.openDir(name)
}

func (f *providerFS) openDir(name string) (fs.File, error) {
	subpath := name
	if subpath == "." {
		subpath = ""
	}

	dir := f.p.GetDirectory(subpath)
	if !dir.Exists() {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	return &providerDir{name: name, files: dir.Files()}, nil
}

func (f *providerFS) ReadDir(name string) ([]fs.DirEntry, error) {
	file, err := f.Open(name)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	dir, ok := file.(fs.ReadDirFile)
	if !ok {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}

	return dir.ReadDir(-1)
}

func (f *providerFS) ReadFile(name string) ([]byte, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "readfile", Path: name, Err: fs.ErrInvalid}
	}

	fi := f.p.GetFile(name)

	rc, err := fi.Open()
	if err != nil {
		return nil, err
	}

	defer rc.Close()

	return io.ReadAll(rc)
}

func (f *providerFS) Stat(name string) (fs.FileInfo, error) {
	file, err := f.Open(name)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	return file.Stat()
}

// providerFile adapts a FileInfo into an fs.File, opening the content stream
// on the first Read.
type providerFile struct {
	fi   FileInfo
	body io.ReadCloser
}

var _ fs.File = (*providerFile)(nil)

func (f *providerFile) Stat() (fs.FileInfo, error) {
	return fileInfoAdapter{fi: f.fi}, nil
}

func (f *providerFile) Read(p []byte) (int, error) {
	if f.body == nil {
		body, err := f.fi.Open()
		if err != nil {
			return 0, err
		}

		f.body = body
	}

	return f.body.Read(p)
}

func (f *providerFile) Close() error {
	if f.body == nil {
		return nil
	}

	return f.body.Close()
}

// providerDir is the fs.ReadDirFile for a provider directory listing.
type providerDir struct {
	name   string
	files  []FileInfo
	diroff int
}

var _ fs.ReadDirFile = (*providerDir)(nil)

func (d *providerDir) Stat() (fs.FileInfo, error) {
	return dirInfoAdapter{name: d.name}, nil
}

func (d *providerDir) Read(_ []byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: d.name, Err: fs.ErrInvalid}
}

func (d *providerDir) Close() error { return nil }

func (d *providerDir) ReadDir(n int) ([]fs.DirEntry, error) {
	if n > 0 && d.diroff >= len(d.files) {
		return nil, io.EOF
	}

	low := d.diroff
	high := d.diroff + n

	// clamp high at the max, and ensure it's higher than low
	if high >= len(d.files) || high <= low {
		high = len(d.files)
	}

	entries := make([]fs.DirEntry, high-low)
	for i := low; i < high; i++ {
		entries[i-low] = fileInfoAdapter{fi: d.files[i]}
	}

	d.diroff = high

	return entries, nil
}

// fileInfoAdapter presents a vfs.FileInfo as both an fs.FileInfo and an
// fs.DirEntry.
type fileInfoAdapter struct {
	fi FileInfo
}

var (
	_ fs.FileInfo = fileInfoAdapter{}
	_ fs.DirEntry = fileInfoAdapter{}
)

func (a fileInfoAdapter) Name() string       { return a.fi.Name() }
func (a fileInfoAdapter) Size() int64        { return a.fi.Size() }
func (a fileInfoAdapter) ModTime() time.Time { return a.fi.ModTime() }
func (a fileInfoAdapter) IsDir() bool        { return a.fi.IsDir() }
func (a fileInfoAdapter) Sys() interface{}   { return nil }

func (a fileInfoAdapter) Mode() fs.FileMode {
	if a.fi.IsDir() {
		return fs.ModeDir | 0o555
	}

	return 0o444
}

func (a fileInfoAdapter) Info() (fs.FileInfo, error) { return a, nil }
func (a fileInfoAdapter) Type() fs.FileMode          { return a.Mode().Type() }

// dirInfoAdapter is the fs.FileInfo for a synthesized directory.
type dirInfoAdapter struct {
	name string
}

var _ fs.FileInfo = dirInfoAdapter{}

func (a dirInfoAdapter) Name() string       { return a.name }
func (a dirInfoAdapter) Size() int64        { return 0 }
func (a dirInfoAdapter) Mode() fs.FileMode  { return fs.ModeDir | 0o555 }
func (a dirInfoAdapter) ModTime() time.Time { return time.Time{} }
func (a dirInfoAdapter) IsDir() bool        { return true }
func (a dirInfoAdapter) Sys() interface{}   { return nil }
