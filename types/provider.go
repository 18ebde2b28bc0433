// Package types defines the core types and interfaces shared by the listing
// renderer, the filesystem providers and the HTTP layer.
// This package is intentionally kept minimal with no external dependencies.
package types

import "context"

// Provider is the filesystem collaborator every web root implements.
// Paths are slash-separated and relative to the provider root; a leading
// "/" is accepted and ignored.
//
// Additional capabilities are expressed as optional interfaces:
//   - LinkReader: read the literal target of a symbolic link
//   - Readable: open regular files for streaming
//
// Callers detect them at runtime via type assertion.
type Provider interface {
	// ReadDir enumerates a directory in the order the backing store
	// returns it. No sorting is applied.
	ReadDir(ctx context.Context, path string) ([]DirEntry, error)
	// Stat follows symbolic links.
	Stat(ctx context.Context, path string) (*Metadata, error)
}

// LinkReader is implemented by providers that can resolve symbolic links.
type LinkReader interface {
	Readlink(ctx context.Context, path string) (string, error)
}

// Readable is implemented by providers that support reading file content.
type Readable interface {
	Open(ctx context.Context, path string) (File, error)
}

// MountInfoProvider is implemented by providers that can describe themselves.
type MountInfoProvider interface {
	MountInfo() (name, extra string)
}
