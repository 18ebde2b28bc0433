package mounts

import (
	"errors"
	"io/fs"
	"time"

	"golang.org/x/sys/unix"

	"github.com/jackfish212/dirserve/types"
)

// statHost uses statx so the birth time is available where the filesystem
// records one. Without it, Created falls back to the change time.
func statHost(hp string) (*types.Metadata, error) {
	var sx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, hp, unix.AT_STATX_SYNC_AS_STAT, unix.STATX_BASIC_STATS|unix.STATX_BTIME, &sx)
	if errors.Is(err, unix.ENOSYS) {
		return statPortable(hp)
	}
	if err != nil {
		return nil, &fs.PathError{Op: "statx", Path: hp, Err: err}
	}

	meta := &types.Metadata{
		Kind:     kindFromUnixMode(uint32(sx.Mode)),
		Size:     int64(sx.Size),
		Modified: statxTime(sx.Mtime),
		Changed:  statxTime(sx.Ctime),
		Accessed: statxTime(sx.Atime),
	}
	meta.Created = meta.Changed
	if sx.Mask&unix.STATX_BTIME != 0 {
		meta.Created = statxTime(sx.Btime)
	}
	return meta, nil
}

func statxTime(ts unix.StatxTimestamp) time.Time {
	return time.Unix(ts.Sec, int64(ts.Nsec))
}
