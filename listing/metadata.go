package listing

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackfish212/dirserve/types"
)

const timestampLayout = "2006-01-02 15:04:05"

// FetchMetadata stats one entry, following links. It returns nil when the
// stat fails; the row then renders with placeholder cells.
func FetchMetadata(ctx context.Context, p types.Provider, entryPath string, logger *slog.Logger) *types.Metadata {
	meta, err := p.Stat(ctx, entryPath)
	if err != nil {
		logger.Debug("listing: stat failed", "path", entryPath, "error", err)
		return nil
	}
	return meta
}

// FormatTimestamp renders t in UTC with second precision and no zone
// suffix. The zero time renders empty.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timestampLayout)
}

// sizeCell shows sizes for regular files only; everything else, and any
// entry without metadata, gets "-".
func sizeCell(ce types.ClassifiedEntry) string {
	if ce.Meta == nil || ce.Entry.Kind != types.KindRegular {
		return "-"
	}
	return FormatSize(ce.Meta.Size)
}
