package types

import "errors"

var (
	ErrNotFound     = errors.New("dirserve: not found")
	ErrNotDir       = errors.New("dirserve: not a directory")
	ErrNotRegular   = errors.New("dirserve: not a regular file")
	ErrNotLink      = errors.New("dirserve: not a symbolic link")
	ErrLinkLoop     = errors.New("dirserve: too many levels of symbolic links")
	ErrNotSupported = errors.New("dirserve: operation not supported")
)
