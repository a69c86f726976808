package vfs

import (
	"mime"
	"path"
	"sync"
)

// common types we want to be able to handle which can be missing by default
//
//nolint:gochecknoglobals
var (
	extraMimeTypes = map[string]string{
		".yml":  "application/yaml",
		".yaml": "application/yaml",
		".csv":  "text/csv",
		".toml": "application/toml",
		".env":  "application/x-env",
		".txt":  "text/plain",
	}
	extraMimeInit sync.Once
)

type contentTypeFileInfo interface {
	FileInfo

	ContentType() string
}

// ContentType returns the MIME content type for the given FileInfo. If fi has
// a ContentType method, that will be used, otherwise the type will be guessed
// by the filename's extension. See the docs for mime.TypeByExtension for
// details on how extension lookup works.
//
// The returned value may have parameters (e.g. "application/json; charset=utf-8")
// which can be parsed with mime.ParseMediaType.
func ContentType(fi FileInfo) string {
	if cf, ok := fi.(contentTypeFileInfo); ok {
		return cf.ContentType()
	}

	extraMimeInit.Do(func() {
		for k, v := range extraMimeTypes {
			_ = mime.AddExtensionType(k, v)
		}
	})

	// fall back to guessing based on extension
	ext := path.Ext(fi.Name())

	return mime.TypeByExtension(ext)
}
