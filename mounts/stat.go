package mounts

import (
	"os"

	"github.com/jackfish212/dirserve/types"
)

// statPortable fills every timestamp from the modification time. It is the
// fallback where the platform exposes no change, access or birth times.
func statPortable(hp string) (*types.Metadata, error) {
	info, err := os.Stat(hp)
	if err != nil {
		return nil, err
	}
	mod := info.ModTime()
	return &types.Metadata{
		Kind:     types.KindFromMode(info.Mode()),
		Size:     info.Size(),
		Modified: mod,
		Changed:  mod,
		Accessed: mod,
		Created:  mod,
	}, nil
}
