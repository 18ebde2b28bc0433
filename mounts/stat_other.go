//go:build !linux && !darwin

package mounts

import "github.com/jackfish212/dirserve/types"

func statHost(hp string) (*types.Metadata, error) {
	return statPortable(hp)
}
