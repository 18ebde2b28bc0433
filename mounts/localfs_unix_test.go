//go:build linux || darwin

package mounts

import (
	"context"
	"net"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/jackfish212/dirserve/types"
)

func TestLocalFSSpecialKinds(t *testing.T) {
	fs, dir := setupLocalFS(t)
	ctx := context.Background()

	if err := unix.Mkfifo(filepath.Join(dir, "pipe"), 0o644); err != nil {
		t.Skipf("mkfifo unsupported: %v", err)
	}
	l, err := net.Listen("unix", filepath.Join(dir, "sock"))
	if err != nil {
		t.Skipf("unix sockets unsupported: %v", err)
	}
	defer l.Close()

	entries, err := fs.ReadDir(ctx, "")
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	kinds := make(map[string]types.Kind)
	for _, e := range entries {
		kinds[e.Name] = e.Kind
	}
	if kinds["pipe"] != types.KindFIFO {
		t.Errorf("pipe kind = %v, want fifo", kinds["pipe"])
	}
	if kinds["sock"] != types.KindSocket {
		t.Errorf("sock kind = %v, want socket", kinds["sock"])
	}

	meta, err := fs.Stat(ctx, "pipe")
	if err != nil {
		t.Fatalf("Stat pipe: %v", err)
	}
	if meta.Kind != types.KindFIFO {
		t.Errorf("Stat pipe kind = %v, want fifo", meta.Kind)
	}
}

func TestKindFromUnixMode(t *testing.T) {
	tests := []struct {
		mode uint32
		want types.Kind
	}{
		{unix.S_IFREG | 0o644, types.KindRegular},
		{unix.S_IFDIR | 0o755, types.KindDir},
		{unix.S_IFLNK, types.KindSymlink},
		{unix.S_IFBLK, types.KindBlockDevice},
		{unix.S_IFCHR, types.KindCharDevice},
		{unix.S_IFIFO, types.KindFIFO},
		{unix.S_IFSOCK, types.KindSocket},
	}
	for _, tt := range tests {
		if got := kindFromUnixMode(tt.mode); got != tt.want {
			t.Errorf("kindFromUnixMode(%o) = %v, want %v", tt.mode, got, tt.want)
		}
	}
}
