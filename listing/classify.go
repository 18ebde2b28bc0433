package listing

import (
	"strings"

	"github.com/jackfish212/dirserve/types"
)

// Type tags assigned by Classify besides MIME types.
const (
	TagDir         = "dir"
	TagBlockDevice = "block-device"
	TagCharDevice  = "character-device"
	TagFIFO        = "fifo-pipe"
	TagSocket      = "socket"
	TagSymlink     = "symlink"
	TagUnknown     = "unknown"

	// TagUnclassified marks extensionless regular files. It is a
	// placeholder, not a classification; callers must treat it as opaque.
	TagUnclassified = "???"
)

// Classify derives the display view of entry e listed under urlPath, which
// must end in "/". link is consulted only when e is a symbolic link.
// Exactly one type tag is assigned; the first matching rule wins.
func Classify(urlPath string, e types.DirEntry, link LinkTarget) types.ClassifiedEntry {
	name := e.Name
	var tag string

	switch e.Kind {
	case types.KindDir:
		name += "/"
		tag = TagDir
	case types.KindBlockDevice:
		tag = TagBlockDevice
	case types.KindCharDevice:
		tag = TagCharDevice
	case types.KindFIFO:
		tag = TagFIFO
	case types.KindSocket:
		tag = TagSocket
	case types.KindSymlink:
		display, target := ResolveSymlink(urlPath, name, link)
		return types.ClassifiedEntry{
			Entry:       e,
			DisplayName: display,
			TargetPath:  target,
			TypeTag:     TagSymlink,
			ClassName:   ClassName(TagSymlink),
		}
	case types.KindRegular:
		tag = tagForName(name)
	}

	return types.ClassifiedEntry{
		Entry:       e,
		DisplayName: name,
		TargetPath:  urlPath + name,
		TypeTag:     tag,
		ClassName:   ClassName(tag),
	}
}

func tagForName(name string) string {
	ext, ok := extension(name)
	if !ok {
		return TagUnclassified
	}
	if t, ok := MIMEByExtension(ext); ok {
		return t
	}
	return TagUnknown
}

// ClassName turns a type tag into CSS classes: "/" becomes "-" and
// application types also get "code".
func ClassName(tag string) string {
	if tag == "" {
		return ""
	}
	cls := strings.ReplaceAll(tag, "/", "-")
	if strings.HasPrefix(tag, "application") {
		cls += " code"
	}
	return cls
}
