// Package vfs defines a small read-only file-provider abstraction: a
// capability interface for file lookup, directory listing, and change
// watching, along with the value types those operations return.
//
// Provider implementations live in the subpackages of this module:
// embeddedfs exposes resources compiled into a binary, diskfs exposes a
// directory tree on the local filesystem, and compositefs merges any number
// of providers behind a single lookup with deterministic precedence. The
// tracefs package instruments any provider for distributed tracing.
//
// Any provider can also be used as a standard [io/fs.FS] through [FS].
package vfs
