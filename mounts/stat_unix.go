//go:build linux || darwin

package mounts

import (
	"golang.org/x/sys/unix"

	"github.com/jackfish212/dirserve/types"
)

func kindFromUnixMode(mode uint32) types.Kind {
	switch mode & unix.S_IFMT {
	case unix.S_IFDIR:
		return types.KindDir
	case unix.S_IFLNK:
		return types.KindSymlink
	case unix.S_IFBLK:
		return types.KindBlockDevice
	case unix.S_IFCHR:
		return types.KindCharDevice
	case unix.S_IFIFO:
		return types.KindFIFO
	case unix.S_IFSOCK:
		return types.KindSocket
	default:
		return types.KindRegular
	}
}
