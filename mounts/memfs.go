package mounts

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/jackfish212/dirserve/types"
)

var (
	_ types.Provider          = (*MemFS)(nil)
	_ types.LinkReader        = (*MemFS)(nil)
	_ types.Readable          = (*MemFS)(nil)
	_ types.MountInfoProvider = (*MemFS)(nil)
)

const maxLinkHops = 40

// MemFS is an in-memory filesystem. Directories enumerate their children in
// insertion order, which makes listing order fully deterministic. Stat
// latency and stat failures can be injected per path.
type MemFS struct {
	mu        sync.RWMutex
	nodes     map[string]*memNode
	children  map[string][]string
	statDelay func(path string) time.Duration
}

type memNode struct {
	kind     types.Kind
	content  []byte
	target   string
	modified time.Time
	changed  time.Time
	accessed time.Time
	created  time.Time
	statErr  error
}

// MemOption configures a MemFS.
type MemOption func(*MemFS)

// WithStatDelay makes every Stat sleep for fn(path) before answering.
func WithStatDelay(fn func(path string) time.Duration) MemOption {
	return func(fs *MemFS) { fs.statDelay = fn }
}

// NewMemFS creates an empty in-memory filesystem.
func NewMemFS(opts ...MemOption) *MemFS {
	now := time.Now()
	fs := &MemFS{
		nodes:    map[string]*memNode{"": newMemNode(types.KindDir, now)},
		children: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(fs)
	}
	return fs
}

func newMemNode(kind types.Kind, t time.Time) *memNode {
	return &memNode{kind: kind, modified: t, changed: t, accessed: t, created: t}
}

func (fs *MemFS) AddFile(path string, content []byte) {
	n := newMemNode(types.KindRegular, time.Now())
	n.content = content
	fs.add(path, n)
	slog.Debug("memfs: added file", "path", path, "size", len(content))
}

func (fs *MemFS) AddDir(path string) {
	fs.add(path, newMemNode(types.KindDir, time.Now()))
	slog.Debug("memfs: added directory", "path", path)
}

// AddSymlink adds a link whose literal target is target. Relative targets
// resolve against the link's directory, absolute ones against the root.
func (fs *MemFS) AddSymlink(path, target string) {
	n := newMemNode(types.KindSymlink, time.Now())
	n.target = target
	fs.add(path, n)
	slog.Debug("memfs: added symlink", "path", path, "target", target)
}

// AddSpecial adds a device, pipe or socket node.
func (fs *MemFS) AddSpecial(path string, kind types.Kind) {
	fs.add(path, newMemNode(kind, time.Now()))
}

// SetTimes overrides the four timestamps of an existing node.
func (fs *MemFS) SetTimes(path string, modified, changed, accessed, created time.Time) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	n, ok := fs.nodes[normPath(path)]
	if !ok {
		return fmt.Errorf("%w: %s", types.ErrNotFound, path)
	}
	n.modified, n.changed, n.accessed, n.created = modified, changed, accessed, created
	return nil
}

// FailStat makes every Stat of path return err while the node stays
// listed, like an entry deleted between enumeration and stat.
func (fs *MemFS) FailStat(path string, err error) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	n, ok := fs.nodes[normPath(path)]
	if !ok {
		return fmt.Errorf("%w: %s", types.ErrNotFound, path)
	}
	n.statErr = err
	return nil
}

func (fs *MemFS) add(p string, n *memNode) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	p = normPath(p)
	if p == "" {
		return
	}
	dir, name := splitPath(p)
	fs.mkdirAll(dir)
	if _, exists := fs.nodes[p]; !exists {
		fs.children[dir] = append(fs.children[dir], name)
	}
	fs.nodes[p] = n
}

func (fs *MemFS) mkdirAll(p string) {
	if p == "" {
		return
	}
	if _, ok := fs.nodes[p]; ok {
		return
	}
	dir, name := splitPath(p)
	fs.mkdirAll(dir)
	fs.nodes[p] = newMemNode(types.KindDir, time.Now())
	fs.children[dir] = append(fs.children[dir], name)
}

func (fs *MemFS) ReadDir(_ context.Context, path string) ([]types.DirEntry, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	p := normPath(path)
	n, ok := fs.nodes[p]
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrNotFound, path)
	}
	if n.kind != types.KindDir {
		return nil, fmt.Errorf("%w: %s", types.ErrNotDir, path)
	}

	names := fs.children[p]
	entries := make([]types.DirEntry, 0, len(names))
	for _, name := range names {
		child := name
		if p != "" {
			child = p + "/" + name
		}
		entries = append(entries, types.DirEntry{Name: name, Kind: fs.nodes[child].kind})
	}
	return entries, nil
}

func (fs *MemFS) Stat(ctx context.Context, path string) (*types.Metadata, error) {
	if fs.statDelay != nil {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(fs.statDelay(path)):
		}
	}

	fs.mu.RLock()
	defer fs.mu.RUnlock()

	p := normPath(path)
	if n, ok := fs.nodes[p]; ok && n.statErr != nil {
		return nil, n.statErr
	}
	_, n, err := fs.resolve(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}
	return &types.Metadata{
		Kind:     n.kind,
		Size:     int64(len(n.content)),
		Modified: n.modified,
		Changed:  n.changed,
		Accessed: n.accessed,
		Created:  n.created,
	}, nil
}

func (fs *MemFS) Readlink(_ context.Context, path string) (string, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	n, ok := fs.nodes[normPath(path)]
	if !ok {
		return "", fmt.Errorf("%w: %s", types.ErrNotFound, path)
	}
	if n.kind != types.KindSymlink {
		return "", fmt.Errorf("%w: %s", types.ErrNotLink, path)
	}
	return n.target, nil
}

func (fs *MemFS) Open(_ context.Context, path string) (types.File, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	_, n, err := fs.resolve(normPath(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}
	if n.kind != types.KindRegular {
		return nil, fmt.Errorf("%w: %s", types.ErrNotRegular, path)
	}
	br := bytes.NewReader(n.content)
	return types.NewSeekableFile(path, io.NopCloser(br), br), nil
}

// resolve follows symbolic links from p, including links in intermediate
// components. Callers hold fs.mu.
func (fs *MemFS) resolve(p string) (string, *memNode, error) {
	hops := 0
	return fs.walk(p, &hops)
}

func (fs *MemFS) walk(p string, hops *int) (string, *memNode, error) {
	cur, n := "", fs.nodes[""]
	if p == "" {
		return cur, n, nil
	}
	for _, seg := range strings.Split(p, "/") {
		next := seg
		if cur != "" {
			next = cur + "/" + seg
		}
		child, ok := fs.nodes[next]
		if !ok {
			return "", nil, types.ErrNotFound
		}
		if child.kind == types.KindSymlink {
			*hops++
			if *hops > maxLinkHops {
				return "", nil, types.ErrLinkLoop
			}
			target := normPath(child.target)
			if !path.IsAbs(child.target) {
				target = normPath(path.Join("/"+cur, child.target))
			}
			var err error
			if next, child, err = fs.walk(target, hops); err != nil {
				return "", nil, err
			}
		}
		cur, n = next, child
	}
	return cur, n, nil
}

func (fs *MemFS) MountInfo() (string, string) { return "memfs", "in-memory" }
