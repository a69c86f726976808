package compositefs

import (
	"errors"
	"sort"

	vfs "github.com/mnguyen284/go-vfs"
	"github.com/mnguyen284/go-vfs/embeddedfs"
)

type compositeFS struct {
	fallback vfs.FileProvider
	sources  []vfs.FileProvider
}

var _ vfs.FileProvider = (*compositeFS)(nil)

// New returns a FileProvider that merges the given sources behind an
// optional fallback provider. The fallback may be nil, in which case at
// least one source must be given.
//
// When two sources expose the same path, the source supplied last wins. A
// configured fallback takes precedence over every source.
func New(fallback vfs.FileProvider, sources ...vfs.FileProvider) (vfs.FileProvider, error) {
	if fallback == nil && len(sources) == 0 {
		return nil, errors.New("compositefs: a fallback provider or at least one source is required")
	}

	// store the sources in reverse so that lookups favour later-supplied
	// sources on collisions
	reversed := make([]vfs.FileProvider, len(sources))
	for i, src := range sources {
		reversed[len(sources)-1-i] = src
	}

	return &compositeFS{fallback: fallback, sources: reversed}, nil
}

// A Source pairs an embedded artifact with the base namespace that scopes
// it.
type Source struct {
	Artifact      embeddedfs.Artifact
	BaseNamespace string
}

// NewFromArtifacts is a convenience over New for the common case of
// composing raw artifacts: each source is wrapped in an embeddedfs provider.
func NewFromArtifacts(fallback vfs.FileProvider, sources ...Source) (vfs.FileProvider, error) {
	providers := make([]vfs.FileProvider, len(sources))
	for i, src := range sources {
		providers[i] = embeddedfs.New(src.Artifact, src.BaseNamespace)
	}

	return New(fallback, providers...)
}

func (f *compositeFS) GetFile(subpath string) vfs.FileInfo {
	var miss vfs.FileInfo

	if f.fallback != nil {
		fi := f.fallback.GetFile(subpath)
		if fi.Exists() {
			return fi
		}

		// keep the fallback's own not-found shape in case nothing matches
		miss = fi
	}

	for _, src := range f.sources {
		if fi := src.GetFile(subpath); fi.Exists() {
			return fi
		}
	}

	if miss == nil {
		miss = vfs.NotFoundFile(subpath)
	}

	return miss
}

func (f *compositeFS) GetDirectory(subpath string) vfs.DirContents {
	listings := []vfs.DirContents{}

	var miss vfs.DirContents

	if f.fallback != nil {
		dir := f.fallback.GetDirectory(subpath)
		if dir.Exists() {
			listings = append(listings, dir)
		} else {
			miss = dir
		}
	}

	for _, src := range f.sources {
		if dir := src.GetDirectory(subpath); dir.Exists() {
			listings = append(listings, dir)
		}
	}

	if len(listings) == 0 {
		if miss != nil {
			return miss
		}

		return vfs.NotFoundDir()
	}

	// merge with first-listed-wins dedup - a single listing never holds
	// duplicate names on its own
	seen := map[string]struct{}{}
	files := []vfs.FileInfo{}

	for _, dir := range listings {
		for _, fi := range dir.Files() {
			if _, ok := seen[fi.Name()]; ok {
				continue
			}

			seen[fi.Name()] = struct{}{}

			files = append(files, fi)
		}
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name() < files[j].Name()
	})

	return vfs.DirOf(files...)
}

func (f *compositeFS) Watch(pattern string) vfs.ChangeToken {
	if f.fallback != nil {
		return f.fallback.Watch(pattern)
	}

	return vfs.NullChangeToken()
}
