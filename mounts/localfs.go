package mounts

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jackfish212/dirserve/types"
)

var (
	_ types.Provider          = (*LocalFS)(nil)
	_ types.LinkReader        = (*LocalFS)(nil)
	_ types.Readable          = (*LocalFS)(nil)
	_ types.MountInfoProvider = (*LocalFS)(nil)
)

// LocalFS serves a host directory as the web root. It is read-only.
type LocalFS struct {
	root string
}

func NewLocalFS(root string) *LocalFS {
	return &LocalFS{root: filepath.Clean(root)}
}

func (fs *LocalFS) hostPath(p string) string {
	p = normPath(p)
	if p == "" {
		return fs.root
	}
	return filepath.Join(fs.root, filepath.FromSlash(p))
}

func (fs *LocalFS) Stat(_ context.Context, path string) (*types.Metadata, error) {
	meta, err := statHost(fs.hostPath(path))
	if err != nil {
		return nil, wrapHostErr(path, err)
	}
	return meta, nil
}

// ReadDir returns entries in on-disk order; os.ReadDir would sort them.
func (fs *LocalFS) ReadDir(_ context.Context, path string) ([]types.DirEntry, error) {
	hp := fs.hostPath(path)
	f, err := os.Open(hp)
	if err != nil {
		return nil, wrapHostErr(path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, wrapHostErr(path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", types.ErrNotDir, path)
	}

	dirEntries, err := f.ReadDir(-1)
	if err != nil && len(dirEntries) == 0 {
		return nil, err
	}
	if err != nil {
		slog.Debug("localfs: partial directory read", "path", path, "error", err)
	}

	entries := make([]types.DirEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entries = append(entries, types.DirEntry{Name: de.Name(), Kind: types.KindFromMode(de.Type())})
	}
	return entries, nil
}

func (fs *LocalFS) Readlink(_ context.Context, path string) (string, error) {
	target, err := os.Readlink(fs.hostPath(path))
	if err != nil {
		if os.IsNotExist(err) {
			return "", wrapHostErr(path, err)
		}
		return "", fmt.Errorf("%w: %s: %v", types.ErrNotLink, path, err)
	}
	return target, nil
}

func (fs *LocalFS) Open(_ context.Context, path string) (types.File, error) {
	f, err := os.Open(fs.hostPath(path))
	if err != nil {
		return nil, wrapHostErr(path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, fmt.Errorf("%w: %s", types.ErrNotRegular, path)
	}
	return types.NewSeekableFile(path, f, f), nil
}

func (fs *LocalFS) MountInfo() (string, string) { return "localfs", fs.root }

func wrapHostErr(path string, err error) error {
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", types.ErrNotFound, path)
	}
	return err
}
