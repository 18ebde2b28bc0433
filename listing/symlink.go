package listing

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jackfish212/dirserve/types"
)

// LinkTarget is what is known about a symbolic link before display.
type LinkTarget struct {
	Target string // literal link text, meaningful only when OK
	OK     bool   // Readlink succeeded
	IsDir  bool   // the followed stat reports a directory
}

// ResolveSymlink computes the label and href of a link entry. A resolved
// link is shown as "<name> -> <target>" and points at the target itself;
// an unresolved one falls back to urlPath + name. Links to directories get
// a trailing "/" on both sides.
func ResolveSymlink(urlPath, name string, link LinkTarget) (displayName, targetPath string) {
	if link.IsDir {
		name += "/"
	}
	if !link.OK || link.Target == "" {
		return name, urlPath + name
	}
	target := link.Target
	if link.IsDir && !strings.HasSuffix(target, "/") {
		target += "/"
	}
	return name + " -> " + target, target
}

// readLinkTarget gathers the link text for entryPath. Failures degrade to
// an unresolved link.
func readLinkTarget(ctx context.Context, p types.Provider, entryPath string, meta *types.Metadata, logger *slog.Logger) LinkTarget {
	link := LinkTarget{IsDir: meta != nil && meta.Kind == types.KindDir}
	lr, ok := p.(types.LinkReader)
	if !ok {
		return link
	}
	target, err := lr.Readlink(ctx, entryPath)
	if err != nil {
		logger.Debug("listing: readlink failed", "path", entryPath, "error", err)
		return link
	}
	link.Target = target
	link.OK = true
	return link
}
