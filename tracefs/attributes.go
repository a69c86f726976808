package tracefs

import (
	"go.opentelemetry.io/otel/attribute"
)

const (
	typeKey    = attribute.Key("vfs.type")
	pathKey    = attribute.Key("vfs.path")
	patternKey = attribute.Key("vfs.pattern")

	foundKey   = attribute.Key("vfs.found")
	direntKey  = attribute.Key("dir.entries")
	sizeKey    = attribute.Key("file.size")
	bytesKey   = attribute.Key("file.bytes_read")
	physKey    = attribute.Key("file.physical_path")
)

// The type of provider being operated on.
//
// Type: string
// Required: No
// Examples: "*embeddedfs.embeddedFS", "*compositefs.compositeFS"
func Type(name string) attribute.KeyValue {
	return typeKey.String(name)
}

// The subpath being operated on.
//
// Type: string
// Required: Yes
// Examples: "css/site.css", "js/app.js"
func Path(name string) attribute.KeyValue {
	return pathKey.String(name)
}

// The pattern used by Watch to match files.
//
// Type: string
// Required: No
// Examples: "*.txt", "css/*"
func Pattern(pattern string) attribute.KeyValue {
	return patternKey.String(pattern)
}

// Whether the lookup found an existing file or directory.
//
// Type: bool
// Required: No
// Examples: true, false
func Found(found bool) attribute.KeyValue {
	return foundKey.Bool(found)
}

// The number of entries in a directory listing.
//
// Type: int
// Required: No
// Examples: 3, 0
func DirEntries(n int) attribute.KeyValue {
	return direntKey.Int(n)
}

// The size of a file.
//
// Type: int64
// Required: No
// Examples: 1024, 0
func FileSize(n int64) attribute.KeyValue {
	return sizeKey.Int64(n)
}

// The number of bytes read from a file during a Read operation.
//
// Type: int
// Required: No
// Examples: 1024, 0
func FileBytesRead(n int) attribute.KeyValue {
	return bytesKey.Int(n)
}

// The on-disk path of a file, for files with a disk presence.
//
// Type: string
// Required: No
// Examples: "/var/www/site.css"
func PhysicalPath(p string) attribute.KeyValue {
	return physKey.String(p)
}
