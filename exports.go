// Package dirserve is a static file server that renders browsable HTML
// listings for directories.
//
// The key abstraction is Provider: a minimal interface (ReadDir + Stat)
// that every web root implements. Additional capabilities (LinkReader,
// Readable) are detected at runtime via type assertions. The listing
// package turns a Provider directory into an HTML page and the httpserve
// package puts both behind an HTTP endpoint.
package dirserve

import "github.com/jackfish212/dirserve/types"

type (
	Kind              = types.Kind
	DirEntry          = types.DirEntry
	Metadata          = types.Metadata
	ClassifiedEntry   = types.ClassifiedEntry
	ProjectInfo       = types.ProjectInfo
	File              = types.File
	Provider          = types.Provider
	LinkReader        = types.LinkReader
	Readable          = types.Readable
	MountInfoProvider = types.MountInfoProvider
)

const (
	KindRegular     = types.KindRegular
	KindDir         = types.KindDir
	KindSymlink     = types.KindSymlink
	KindBlockDevice = types.KindBlockDevice
	KindCharDevice  = types.KindCharDevice
	KindFIFO        = types.KindFIFO
	KindSocket      = types.KindSocket
)

var (
	NewSeekableFile = types.NewSeekableFile
	KindFromMode    = types.KindFromMode
)

var (
	ErrNotFound     = types.ErrNotFound
	ErrNotDir       = types.ErrNotDir
	ErrNotRegular   = types.ErrNotRegular
	ErrNotLink      = types.ErrNotLink
	ErrLinkLoop     = types.ErrLinkLoop
	ErrNotSupported = types.ErrNotSupported
)
