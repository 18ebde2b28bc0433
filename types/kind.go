package types

import "io/fs"

// Kind is the closed set of filesystem object kinds a listing can contain.
type Kind uint8

const (
	KindRegular Kind = iota
	KindDir
	KindSymlink
	KindBlockDevice
	KindCharDevice
	KindFIFO
	KindSocket
)

func (k Kind) String() string {
	switch k {
	case KindRegular:
		return "file"
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	case KindBlockDevice:
		return "block-device"
	case KindCharDevice:
		return "character-device"
	case KindFIFO:
		return "fifo"
	case KindSocket:
		return "socket"
	default:
		return "unknown"
	}
}

// Flag returns the single-character type marker used by ls -l.
func (k Kind) Flag() byte {
	switch k {
	case KindDir:
		return 'd'
	case KindSymlink:
		return 'l'
	case KindBlockDevice:
		return 'b'
	case KindCharDevice:
		return 'c'
	case KindFIFO:
		return 'p'
	case KindSocket:
		return 's'
	default:
		return '-'
	}
}

// KindFromMode derives the Kind from the type bits of a fs.FileMode.
// Irregular files count as regular.
func KindFromMode(mode fs.FileMode) Kind {
	switch {
	case mode.IsDir():
		return KindDir
	case mode&fs.ModeSymlink != 0:
		return KindSymlink
	case mode&fs.ModeCharDevice != 0:
		return KindCharDevice
	case mode&fs.ModeDevice != 0:
		return KindBlockDevice
	case mode&fs.ModeNamedPipe != 0:
		return KindFIFO
	case mode&fs.ModeSocket != 0:
		return KindSocket
	default:
		return KindRegular
	}
}
