package embeddedfs

import (
	"io"
	"strings"
	"sync"
	"time"

	vfs "github.com/mnguyen284/go-vfs"
	"github.com/mnguyen284/go-vfs/internal"
)

// namespaceSeparator joins the segments of embedded resource names.
const namespaceSeparator = "."

//nolint:gochecknoglobals
var separatorReplacer = strings.NewReplacer("/", namespaceSeparator, `\`, namespaceSeparator)

type embeddedFS struct {
	artifact Artifact
	prefix   string
}

var _ vfs.FileProvider = (*embeddedFS)(nil)

// New returns a FileProvider exposing the resources of the given artifact
// that live under baseNamespace. A non-empty base namespace is joined to
// lookup keys with ".", so with the base namespace "app.wwwroot" a GetFile
// of "css/site.css" resolves the resource "app.wwwroot.css.site.css". An
// empty base namespace exposes every resource in the artifact.
func New(artifact Artifact, baseNamespace string) vfs.FileProvider {
	prefix := baseNamespace
	if prefix != "" {
		prefix += namespaceSeparator
	}

	return &embeddedFS{artifact: artifact, prefix: prefix}
}

func (f *embeddedFS) GetFile(subpath string) vfs.FileInfo {
	if subpath == "" {
		return vfs.NotFoundFile("")
	}

	trimmed := internal.TrimLeadingSeparator(subpath)

	// callers see the familiar filename even though the lookup key is the
	// translated resource name
	name := internal.LastSegment(trimmed)

	key := f.prefix + separatorReplacer.Replace(trimmed)
	if !f.artifact.Contains(key) {
		return vfs.NotFoundFile(name)
	}

	return &embeddedFile{artifact: f.artifact, key: key, name: name}
}

func (f *embeddedFS) GetDirectory(subpath string) vfs.DirContents {
	// the namespace is flat, so only the root directory exists
	if internal.TrimLeadingSeparator(subpath) != "" {
		return vfs.NotFoundDir()
	}

	files := []vfs.FileInfo{}

	for _, res := range f.artifact.Resources() {
		if !strings.HasPrefix(res, f.prefix) {
			continue
		}

		files = append(files, &embeddedFile{
			artifact: f.artifact,
			key:      res,
			name:     strings.TrimPrefix(res, f.prefix),
		})
	}

	return vfs.DirOf(files...)
}

func (f *embeddedFS) Watch(_ string) vfs.ChangeToken {
	return vfs.NullChangeToken()
}

// embeddedFile is a resource that exists in the artifact. Its size is read
// lazily from the resource stream and memoized.
type embeddedFile struct {
	artifact Artifact
	key      string
	name     string

	sizeOnce sync.Once
	size     int64
}

var _ vfs.FileInfo = (*embeddedFile)(nil)

func (f *embeddedFile) Exists() bool { return true }
func (f *embeddedFile) Name() string { return f.name }
func (f *embeddedFile) IsDir() bool  { return false }

// ModTime reports vfs.MaxModTime: the artifact carries no timestamp
// metadata for its resources.
func (f *embeddedFile) ModTime() time.Time { return vfs.MaxModTime }

func (f *embeddedFile) PhysicalPath() string { return "" }

func (f *embeddedFile) Size() int64 {
	f.sizeOnce.Do(func() {
		rc, n, err := f.artifact.Open(f.key)
		if err != nil {
			f.size = -1

			return
		}

		rc.Close()

		f.size = n
	})

	return f.size
}

func (f *embeddedFile) Open() (io.ReadCloser, error) {
	rc, _, err := f.artifact.Open(f.key)

	return rc, err
}
