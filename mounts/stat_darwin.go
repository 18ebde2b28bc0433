package mounts

import (
	"io/fs"
	"time"

	"golang.org/x/sys/unix"

	"github.com/jackfish212/dirserve/types"
)

func statHost(hp string) (*types.Metadata, error) {
	var st unix.Stat_t
	if err := unix.Stat(hp, &st); err != nil {
		return nil, &fs.PathError{Op: "stat", Path: hp, Err: err}
	}
	return &types.Metadata{
		Kind:     kindFromUnixMode(uint32(st.Mode)),
		Size:     st.Size,
		Modified: timespecTime(st.Mtim),
		Changed:  timespecTime(st.Ctim),
		Accessed: timespecTime(st.Atim),
		Created:  timespecTime(st.Btim),
	}, nil
}

func timespecTime(ts unix.Timespec) time.Time {
	return time.Unix(ts.Unix())
}
