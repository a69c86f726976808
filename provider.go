package vfs

// FileProvider is the capability shared by every filesystem in this module,
// leaf or composite. Lookups never fail with a "not found" error: absence is
// reported through the Exists method on the returned values, so callers can
// branch without error-style control flow.
type FileProvider interface {
	// GetFile looks up the file at the given subpath. The result is never
	// nil; check Exists on it.
	GetFile(subpath string) FileInfo

	// GetDirectory lists the directory at the given subpath. The result is
	// never nil; a missing directory is an empty, non-existent listing.
	GetDirectory(subpath string) DirContents

	// Watch returns a token that signals when files matching the given
	// glob pattern change.
	Watch(pattern string) ChangeToken
}

// ChangeToken signals a single change in a watched filesystem.
type ChangeToken interface {
	// HasChanged reports whether a change has occurred since the token was
	// produced.
	HasChanged() bool

	// Done returns a channel that is closed when a change occurs. Tokens
	// for sources that can never change return a channel that is never
	// closed.
	Done() <-chan struct{}
}

//nolint:gochecknoglobals
var neverDone = make(chan struct{})

type nullChangeToken struct{}

func (nullChangeToken) HasChanged() bool      { return false }
func (nullChangeToken) Done() <-chan struct{} { return neverDone }

// NullChangeToken returns an inert ChangeToken that never signals a change.
// It is the token produced when watching embedded content, which cannot
// change once the binary is built.
func NullChangeToken() ChangeToken { return nullChangeToken{} }
