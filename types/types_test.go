package types

import (
	"io"
	"io/fs"
	"strings"
	"testing"
)

// ─── Kind ───

func TestKindFromMode(t *testing.T) {
	tests := []struct {
		mode fs.FileMode
		want Kind
	}{
		{0o644, KindRegular},
		{fs.ModeDir | 0o755, KindDir},
		{fs.ModeSymlink | 0o777, KindSymlink},
		{fs.ModeDevice, KindBlockDevice},
		{fs.ModeDevice | fs.ModeCharDevice, KindCharDevice},
		{fs.ModeNamedPipe, KindFIFO},
		{fs.ModeSocket, KindSocket},
		{fs.ModeIrregular, KindRegular},
	}
	for _, tt := range tests {
		if got := KindFromMode(tt.mode); got != tt.want {
			t.Errorf("KindFromMode(%v) = %v, want %v", tt.mode, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		str  string
		flag byte
	}{
		{KindRegular, "file", '-'},
		{KindDir, "dir", 'd'},
		{KindSymlink, "symlink", 'l'},
		{KindBlockDevice, "block-device", 'b'},
		{KindCharDevice, "character-device", 'c'},
		{KindFIFO, "fifo", 'p'},
		{KindSocket, "socket", 's'},
		{Kind(200), "unknown", '-'},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.str {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.str)
		}
		if got := tt.kind.Flag(); got != tt.flag {
			t.Errorf("Kind(%d).Flag() = %q, want %q", tt.kind, got, tt.flag)
		}
	}
}

// ─── DirEntry ───

func TestDirEntryString(t *testing.T) {
	got := DirEntry{Name: "hello.txt"}.String()
	if !strings.HasPrefix(got, "-") || !strings.HasSuffix(got, "hello.txt") {
		t.Errorf("DirEntry.String() = %q", got)
	}

	got = DirEntry{Name: "docs", Kind: KindDir}.String()
	if !strings.HasPrefix(got, "d") {
		t.Errorf("DirEntry.String() should start with 'd' for dir: %q", got)
	}
	if !strings.HasSuffix(got, "docs/") {
		t.Errorf("DirEntry.String() should append '/' for dir: %q", got)
	}
}

// ─── File ───

func TestNewSeekableFile(t *testing.T) {
	content := "hello world"
	sr := strings.NewReader(content)
	f := NewSeekableFile("seek.txt", io.NopCloser(sr), sr)

	if f.Name() != "seek.txt" {
		t.Errorf("Name() = %q, want %q", f.Name(), "seek.txt")
	}

	buf := make([]byte, 5)
	n, _ := f.Read(buf)
	if string(buf[:n]) != "hello" {
		t.Errorf("first read = %q, want %q", string(buf[:n]), "hello")
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	data, _ := io.ReadAll(f)
	if string(data) != content {
		t.Errorf("after seek, read = %q, want %q", string(data), content)
	}
}

// ─── Errors ───

func TestErrorsSentinel(t *testing.T) {
	if ErrNotFound.Error() != "dirserve: not found" {
		t.Errorf("ErrNotFound = %q", ErrNotFound.Error())
	}
	if ErrNotDir == ErrNotFound {
		t.Error("sentinels must be distinct")
	}
}
