package internal

import "strings"

// A few convenience functions intended for use only inside this module.

// TrimLeadingSeparator strips at most one leading path separator from
// subpath. Both "/" and "\" are tolerated, so rooted lookups resolve the
// same as relative ones.
func TrimLeadingSeparator(subpath string) string {
	if subpath == "" {
		return subpath
	}

	if subpath[0] == '/' || subpath[0] == '\\' {
		return subpath[1:]
	}

	return subpath
}

// LastSegment returns the final path segment of subpath, accepting either
// separator style.
func LastSegment(subpath string) string {
	i := strings.LastIndexAny(subpath, `/\`)

	return subpath[i+1:]
}
