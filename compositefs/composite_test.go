package compositefs

import (
	"bytes"
	"io"
	"testing"
	"time"

	vfs "github.com/mnguyen284/go-vfs"
	"github.com/mnguyen284/go-vfs/embeddedfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFallback is a fallback provider with recognizable not-found values, so
// tests can verify that its miss shapes are preserved.
type fakeFallback struct {
	files map[string][]byte

	watched  string
	token    vfs.ChangeToken
	dirMiss  vfs.DirContents
	fileMiss map[string]vfs.FileInfo
}

func newFakeFallback(files map[string][]byte) *fakeFallback {
	return &fakeFallback{
		files:    files,
		token:    &fakeToken{done: make(chan struct{})},
		dirMiss:  vfs.NotFoundDir(),
		fileMiss: map[string]vfs.FileInfo{},
	}
}

func (f *fakeFallback) GetFile(subpath string) vfs.FileInfo {
	if _, ok := f.files[subpath]; ok {
		return &fakeFile{name: subpath, content: f.files[subpath]}
	}

	miss := vfs.NotFoundFile(subpath)
	f.fileMiss[subpath] = miss

	return miss
}

func (f *fakeFallback) GetDirectory(subpath string) vfs.DirContents {
	if subpath != "" {
		return f.dirMiss
	}

	files := []vfs.FileInfo{}
	for name, content := range f.files {
		files = append(files, &fakeFile{name: name, content: content})
	}

	return vfs.DirOf(files...)
}

func (f *fakeFallback) Watch(pattern string) vfs.ChangeToken {
	f.watched = pattern

	return f.token
}

type fakeFile struct {
	name    string
	content []byte
}

func (f *fakeFile) Exists() bool         { return true }
func (f *fakeFile) Name() string         { return f.name }
func (f *fakeFile) Size() int64          { return int64(len(f.content)) }
func (f *fakeFile) ModTime() time.Time   { return time.Time{} }
func (f *fakeFile) IsDir() bool          { return false }
func (f *fakeFile) PhysicalPath() string { return "/fake/" + f.name }

func (f *fakeFile) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.content)), nil
}

type fakeToken struct {
	done chan struct{}
}

func (t *fakeToken) HasChanged() bool      { return false }
func (t *fakeToken) Done() <-chan struct{} { return t.done }

func content(t *testing.T, fi vfs.FileInfo) string {
	t.Helper()

	rc, err := fi.Open()
	require.NoError(t, err)

	defer rc.Close()

	b, err := io.ReadAll(rc)
	require.NoError(t, err)

	return string(b)
}

func TestNew_RequiresSomewhereToLook(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(nil, embeddedfs.New(embeddedfs.MapArtifact{}, ""))
	assert.NoError(t, err)

	_, err = New(newFakeFallback(nil))
	assert.NoError(t, err)
}

func TestGetFile_LastSourceWins(t *testing.T) {
	srcA := embeddedfs.New(embeddedfs.MapArtifact{"x": []byte("from A")}, "")
	srcB := embeddedfs.New(embeddedfs.MapArtifact{"x": []byte("from B")}, "")

	fsys, err := New(nil, srcA, srcB)
	require.NoError(t, err)

	fi := fsys.GetFile("x")
	require.True(t, fi.Exists())
	assert.Equal(t, "from B", content(t, fi))
}

func TestGetFile_FallbackWins(t *testing.T) {
	fallback := newFakeFallback(map[string][]byte{"x": []byte("from disk")})
	src := embeddedfs.New(embeddedfs.MapArtifact{"x": []byte("embedded")}, "")

	fsys, err := New(fallback, src)
	require.NoError(t, err)

	fi := fsys.GetFile("x")
	require.True(t, fi.Exists())
	assert.Equal(t, "from disk", content(t, fi))
	assert.Equal(t, "/fake/x", fi.PhysicalPath())
}

func TestGetFile_Miss(t *testing.T) {
	srcA := embeddedfs.New(embeddedfs.MapArtifact{"present.txt": []byte("hi")}, "")
	srcB := embeddedfs.New(embeddedfs.MapArtifact{}, "")

	fsys, err := New(nil, srcA, srcB)
	require.NoError(t, err)

	fi := fsys.GetFile("missing.txt")
	assert.False(t, fi.Exists())
	assert.Equal(t, "missing.txt", fi.Name())

	// with a fallback configured, its own miss value is returned
	fallback := newFakeFallback(nil)

	fsys, err = New(fallback, srcA)
	require.NoError(t, err)

	fi = fsys.GetFile("missing.txt")
	assert.False(t, fi.Exists())
	assert.Same(t, fallback.fileMiss["missing.txt"], fi)
}

func TestGetDirectory_MergesAndSorts(t *testing.T) {
	srcA := embeddedfs.New(embeddedfs.MapArtifact{
		"y": []byte("A's y"),
		"c": []byte("A's c"),
	}, "")
	srcB := embeddedfs.New(embeddedfs.MapArtifact{
		"y": []byte("B's y"),
		"a": []byte("B's a"),
	}, "")

	fsys, err := New(nil, srcA, srcB)
	require.NoError(t, err)

	dir := fsys.GetDirectory("")
	require.True(t, dir.Exists())

	names := []string{}
	for _, fi := range dir.Files() {
		names = append(names, fi.Name())
	}

	// exactly one "y", sorted ascending regardless of input order
	assert.Equal(t, []string{"a", "c", "y"}, names)

	// srcB was supplied last, so its "y" won the collision
	for _, fi := range dir.Files() {
		if fi.Name() == "y" {
			assert.Equal(t, "B's y", content(t, fi))
		}
	}
}

func TestGetDirectory_FallbackEntriesWin(t *testing.T) {
	fallback := newFakeFallback(map[string][]byte{"y": []byte("disk y")})
	src := embeddedfs.New(embeddedfs.MapArtifact{"y": []byte("embedded y")}, "")

	fsys, err := New(fallback, src)
	require.NoError(t, err)

	dir := fsys.GetDirectory("")
	require.True(t, dir.Exists())
	require.Len(t, dir.Files(), 1)
	assert.Equal(t, "disk y", content(t, dir.Files()[0]))
}

func TestGetDirectory_Miss(t *testing.T) {
	src := embeddedfs.New(embeddedfs.MapArtifact{"x": []byte("hi")}, "")

	fsys, err := New(nil, src)
	require.NoError(t, err)

	// flat sources have no subdirectories
	dir := fsys.GetDirectory("sub")
	assert.False(t, dir.Exists())
	assert.Empty(t, dir.Files())

	// with a fallback, its particular miss shape is preserved
	fallback := newFakeFallback(nil)

	fsys, err = New(fallback, src)
	require.NoError(t, err)

	dir = fsys.GetDirectory("sub")
	assert.False(t, dir.Exists())
	assert.Same(t, fallback.dirMiss, dir)
}

func TestWatch(t *testing.T) {
	src := embeddedfs.New(embeddedfs.MapArtifact{}, "")

	fsys, err := New(nil, src)
	require.NoError(t, err)

	token := fsys.Watch("*.css")
	assert.False(t, token.HasChanged())

	fallback := newFakeFallback(nil)

	fsys, err = New(fallback, src)
	require.NoError(t, err)

	token = fsys.Watch("*.css")
	assert.Equal(t, "*.css", fallback.watched)
	assert.Same(t, fallback.token, token)
}

func TestNewFromArtifacts(t *testing.T) {
	fsys, err := NewFromArtifacts(nil,
		Source{Artifact: embeddedfs.MapArtifact{"app.a.txt": []byte("first")}, BaseNamespace: "app"},
		Source{Artifact: embeddedfs.MapArtifact{"app.a.txt": []byte("second")}, BaseNamespace: "app"},
	)
	require.NoError(t, err)

	fi := fsys.GetFile("a.txt")
	require.True(t, fi.Exists())
	assert.Equal(t, "second", content(t, fi))

	_, err = NewFromArtifacts(nil)
	assert.Error(t, err)
}
