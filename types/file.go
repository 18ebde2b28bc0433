package types

import "io"

// File is an open regular file. Seek is required so the HTTP layer can
// answer range and conditional requests.
type File interface {
	io.ReadSeekCloser
	Name() string
}

type seekableFile struct {
	io.ReadCloser
	seeker io.Seeker
	name   string
}

// NewSeekableFile creates a File from a reader and the seeker positioned
// over the same content.
func NewSeekableFile(name string, rc io.ReadCloser, seeker io.Seeker) File {
	return &seekableFile{ReadCloser: rc, seeker: seeker, name: name}
}

func (f *seekableFile) Name() string                                 { return f.name }
func (f *seekableFile) Seek(offset int64, whence int) (int64, error) { return f.seeker.Seek(offset, whence) }
