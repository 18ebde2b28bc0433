package listing

import (
	"mime"
	"strings"
)

// builtinTypes is consulted before the system registry so that common web
// types classify identically on every host, whatever its mime.types says.
var builtinTypes = map[string]string{
	"html":  "text/html",
	"htm":   "text/html",
	"css":   "text/css",
	"js":    "text/javascript",
	"mjs":   "text/javascript",
	"json":  "application/json",
	"map":   "application/json",
	"xml":   "application/xml",
	"txt":   "text/plain",
	"log":   "text/plain",
	"md":    "text/markdown",
	"csv":   "text/csv",
	"yaml":  "text/yaml",
	"yml":   "text/yaml",
	"toml":  "application/toml",
	"sh":    "application/x-sh",
	"png":   "image/png",
	"jpg":   "image/jpeg",
	"jpeg":  "image/jpeg",
	"gif":   "image/gif",
	"svg":   "image/svg+xml",
	"webp":  "image/webp",
	"ico":   "image/vnd.microsoft.icon",
	"pdf":   "application/pdf",
	"zip":   "application/zip",
	"gz":    "application/gzip",
	"tar":   "application/x-tar",
	"wasm":  "application/wasm",
	"mp3":   "audio/mpeg",
	"wav":   "audio/wav",
	"ogg":   "audio/ogg",
	"mp4":   "video/mp4",
	"webm":  "video/webm",
	"woff":  "font/woff",
	"woff2": "font/woff2",
	"ttf":   "font/ttf",
}

// MIMEByExtension looks up the media type for a file extension given
// without the leading dot. Parameters such as charset are stripped.
func MIMEByExtension(ext string) (string, bool) {
	ext = strings.ToLower(ext)
	if ext == "" {
		return "", false
	}
	if t, ok := builtinTypes[ext]; ok {
		return t, true
	}
	t := mime.TypeByExtension("." + ext)
	if t == "" {
		return "", false
	}
	mediaType, _, err := mime.ParseMediaType(t)
	if err != nil {
		return "", false
	}
	return mediaType, true
}

// extension returns the text after the last dot. A dot in first position
// (dotfiles) does not start an extension.
func extension(name string) (string, bool) {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 {
		return "", false
	}
	return name[idx+1:], true
}

// TypeByName is MIMEByExtension applied to the extension of a file name.
func TypeByName(name string) (string, bool) {
	ext, ok := extension(name)
	if !ok {
		return "", false
	}
	return MIMEByExtension(ext)
}
