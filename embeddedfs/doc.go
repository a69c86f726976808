// Package embeddedfs provides a FileProvider over resources compiled into a
// binary artifact.
//
// An artifact's resource table is a flat namespace: a mapping from dotted
// resource names (like "app.wwwroot.css.site.css") to content, with no real
// directories. This provider translates path-style lookups into that
// namespace, so a file compiled in as "app.wwwroot.css.site.css" can be
// looked up as "css/site.css" when the provider is scoped to the
// "app.wwwroot" base namespace.
//
// # Usage
//
// Construct a provider with [New], giving it an [Artifact] and a base
// namespace. Two artifact implementations are included: [MapArtifact], an
// in-memory resource table, and [FSArtifact], which flattens an [io/fs.FS]
// (typically an [embed.FS]) into the dotted namespace.
//
// Because the namespace is flat, every resource under the base namespace is
// a direct child of the provider's root: GetDirectory only exists for the
// empty subpath, and lists all resources with the base namespace stripped
// from their names.
//
// Embedded content cannot change at runtime, so Watch always returns an
// inert token.
package embeddedfs
