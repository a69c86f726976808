package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type typedFileInfo struct {
	FileInfo

	contentType string
}

func (fi typedFileInfo) ContentType() string { return fi.contentType }

func TestContentType(t *testing.T) {
	assert.Equal(t, "", ContentType(NotFoundFile("foo")))

	assert.Equal(t, "application/json",
		ContentType(NotFoundFile("foo.json")))

	assert.Equal(t, "text/csv; charset=utf-8",
		ContentType(NotFoundFile("data.csv")))

	// an entry that knows its own content type wins over extension guessing
	fi := typedFileInfo{FileInfo: NotFoundFile("foo.json"), contentType: "text/plain"}
	assert.Equal(t, "text/plain", ContentType(fi))
}
