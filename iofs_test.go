package vfs_test

import (
	"io"
	"io/fs"
	"testing"
	"testing/fstest"

	vfs "github.com/mnguyen284/go-vfs"
	"github.com/mnguyen284/go-vfs/embeddedfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProvider() vfs.FileProvider {
	return embeddedfs.New(embeddedfs.MapArtifact{
		"app.css.site.css": []byte("body{}"),
		"app.js.app.js":    []byte("console.log('hi')"),
	}, "app")
}

func TestFS_TestFS(t *testing.T) {
	fsys := vfs.FS(setupProvider())

	assert.NoError(t, fstest.TestFS(fsys, "css.site.css", "js.app.js"))
}

func TestFS_Open(t *testing.T) {
	fsys := vfs.FS(setupProvider())

	f, err := fsys.Open("css.site.css")
	require.NoError(t, err)

	defer f.Close()

	b, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(b))

	_, err = fsys.Open("missing.css")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = fsys.Open("/rooted")
	assert.ErrorIs(t, err, fs.ErrInvalid)
}

func TestFS_Stat(t *testing.T) {
	fsys := vfs.FS(setupProvider())

	fi, err := fs.Stat(fsys, "css.site.css")
	require.NoError(t, err)
	assert.Equal(t, "css.site.css", fi.Name())
	assert.Equal(t, int64(6), fi.Size())
	assert.False(t, fi.IsDir())
	assert.Equal(t, vfs.MaxModTime, fi.ModTime())

	fi, err = fs.Stat(fsys, ".")
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}

func TestFS_ReadDir(t *testing.T) {
	fsys := vfs.FS(setupProvider())

	des, err := fs.ReadDir(fsys, ".")
	require.NoError(t, err)
	require.Len(t, des, 2)
	assert.Equal(t, "css.site.css", des[0].Name())
	assert.Equal(t, "js.app.js", des[1].Name())

	_, err = fs.ReadDir(fsys, "css")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFS_ReadFile(t *testing.T) {
	fsys := vfs.FS(setupProvider())

	b, err := fs.ReadFile(fsys, "js.app.js")
	require.NoError(t, err)
	assert.Equal(t, "console.log('hi')", string(b))

	_, err = fs.ReadFile(fsys, "missing.js")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
