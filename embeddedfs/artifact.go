package embeddedfs

import (
	"bytes"
	"io"
	"io/fs"
	"sort"
	"strings"
)

// Artifact is the set of primitives this provider needs from a compiled-in
// resource table.
type Artifact interface {
	// Resources returns the names of every resource in the artifact. No
	// particular order is guaranteed.
	Resources() []string

	// Contains reports whether a resource with exactly the given name
	// exists. Names are case-sensitive.
	Contains(name string) bool

	// Open opens the named resource for reading and reports its total
	// length in bytes. Every call returns an independent stream.
	Open(name string) (io.ReadCloser, int64, error)
}

// MapArtifact is an in-memory Artifact backed by a map from resource names
// to content.
type MapArtifact map[string][]byte

var _ Artifact = (MapArtifact)(nil)

func (a MapArtifact) Resources() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (a MapArtifact) Contains(name string) bool {
	_, ok := a[name]

	return ok
}

func (a MapArtifact) Open(name string) (io.ReadCloser, int64, error) {
	b, ok := a[name]
	if !ok {
		return nil, 0, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	return io.NopCloser(bytes.NewReader(b)), int64(len(b)), nil
}

// FSArtifact flattens the regular files of fsys into a flat artifact
// namespace, translating path separators to the namespace separator. It is
// intended for embed.FS values. The name index is built once, at
// construction, since embedded content cannot change at runtime.
func FSArtifact(fsys fs.FS) (Artifact, error) {
	paths := map[string]string{}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		paths[strings.ReplaceAll(p, "/", namespaceSeparator)] = p

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &fsArtifact{fsys: fsys, paths: paths}, nil
}

type fsArtifact struct {
	fsys  fs.FS
	paths map[string]string
}

var _ Artifact = (*fsArtifact)(nil)

func (a *fsArtifact) Resources() []string {
	names := make([]string, 0, len(a.paths))
	for name := range a.paths {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (a *fsArtifact) Contains(name string) bool {
	_, ok := a.paths[name]

	return ok
}

func (a *fsArtifact) Open(name string) (io.ReadCloser, int64, error) {
	p, ok := a.paths[name]
	if !ok {
		return nil, 0, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	f, err := a.fsys.Open(p)
	if err != nil {
		return nil, 0, err
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()

		return nil, 0, err
	}

	return f, fi.Size(), nil
}
