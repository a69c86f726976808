// Package compositefs provides a FileProvider that merges an ordered list of
// providers, usually embedded sources, behind an optional fallback provider.
//
// # Precedence
//
// The fallback, when configured, always wins: a file it holds shadows the
// same path in every source, and its Watch implementation handles all watch
// requests. Among the sources themselves the one supplied last to [New] wins
// ties, so later-registered sources override earlier ones.
//
// Directory listings are merged across the fallback and every source,
// deduplicated by name with the same precedence, and sorted ascending by
// name.
package compositefs
