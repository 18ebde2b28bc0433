package types

import (
	"fmt"
	"time"
)

// DirEntry is one item returned by enumerating a directory. Kind comes from
// the enumeration itself; no extra stat call is needed to fill it.
type DirEntry struct {
	Name string // base name, any filesystem-legal characters
	Kind Kind
}

// String returns an ls-style line for this entry.
func (e DirEntry) String() string {
	name := e.Name
	if e.Kind == KindDir {
		name += "/"
	}
	return fmt.Sprintf("%c  %s", e.Kind.Flag(), name)
}

// Metadata is the result of a stat that follows symbolic links. Kind is the
// kind of the final target, not of the link itself.
type Metadata struct {
	Kind     Kind
	Size     int64
	Modified time.Time
	Changed  time.Time
	Accessed time.Time
	Created  time.Time
}

// ClassifiedEntry is the display view of a DirEntry inside one listing.
type ClassifiedEntry struct {
	Entry       DirEntry
	DisplayName string    // entry name, or "<name> -> <target>" for resolved links
	TargetPath  string    // href of the rendered link
	TypeTag     string    // "dir", a MIME type, "symlink", a special-file tag, "unknown" or "???"
	ClassName   string    // CSS class derived from TypeTag
	Meta        *Metadata // nil when the stat failed
}

// ProjectInfo feeds the listing footer.
type ProjectInfo struct {
	Name     string
	Version  string
	Author   string
	Homepage string
	Revision string
}
