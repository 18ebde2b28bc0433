package dirserve

import (
	"path"
	"strings"
)

// CleanPath normalises a request path: no dot segments, no repeated or
// trailing slash, always starts with "/". ".." never climbs above "/".
func CleanPath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

// DirPath is the canonical URL of a directory: CleanPath plus a trailing
// slash.
func DirPath(p string) string {
	p = CleanPath(p)
	if p == "/" {
		return p
	}
	return p + "/"
}
