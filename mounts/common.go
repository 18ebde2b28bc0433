// Package mounts provides the filesystem providers a web root can be served
// from: the host directory tree (LocalFS) and an in-memory tree (MemFS).
package mounts

import (
	"path"
	"strings"
)

// normPath maps any request path onto the provider key space: cleaned,
// no leading or trailing slash, "" for the root. ".." never escapes the root.
func normPath(p string) string {
	p = path.Clean("/" + p)
	return strings.TrimPrefix(p, "/")
}

// splitPath splits a normalised path into its parent and base name.
func splitPath(p string) (dir, name string) {
	idx := strings.LastIndexByte(p, '/')
	if idx < 0 {
		return "", p
	}
	return p[:idx], p[idx+1:]
}
