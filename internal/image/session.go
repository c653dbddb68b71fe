// Package image owns the single exclusive file handle held for the
// lifetime of a dir/del/undel session.
package image

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Mode selects whether the underlying image file is opened for
// reading only (dir) or for reading and writing (del, undel).
type Mode int

const (
	ReadOnly Mode = iota
	ReadWrite
)

// Session wraps the one *os.File held open for a dir/del/undel run.
type Session struct {
	file *os.File
	size int64
}

// Open opens path according to mode. For block devices whose Stat
// reports a zero size, the size is recovered by seeking to the end —
// the same fallback the teacher's disk reader uses.
func Open(path string, mode Mode) (*Session, error) {
	flag := os.O_RDONLY
	if mode == ReadWrite {
		flag = os.O_RDWR
	}

	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open image")
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "cannot stat image")
	}

	size := info.Size()
	if size == 0 {
		size, err = f.Seek(0, io.SeekEnd)
		if err != nil {
			f.Close()
			return nil, errors.Wrap(err, "cannot determine image size")
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			f.Close()
			return nil, errors.Wrap(err, "cannot rewind image")
		}
	}

	return &Session{file: f, size: size}, nil
}

// Close releases the underlying file handle.
func (s *Session) Close() error {
	return s.file.Close()
}

// Size returns the image's byte length as observed at open time.
func (s *Session) Size() int64 {
	return s.size
}

// ReadAt reads exactly len(buf) bytes at offset, failing loudly (the
// FAT engine never tolerates a short read of a sector it expects to
// be whole).
func (s *Session) ReadAt(buf []byte, offset int64) error {
	n, err := s.file.ReadAt(buf, offset)
	if err != nil {
		return errors.Wrapf(err, "read at %d", offset)
	}
	if n != len(buf) {
		return errors.Errorf("short read at %d: got %d of %d bytes", offset, n, len(buf))
	}
	return nil
}

// WriteAt writes exactly len(buf) bytes at offset.
func (s *Session) WriteAt(buf []byte, offset int64) error {
	n, err := s.file.WriteAt(buf, offset)
	if err != nil {
		return errors.Wrapf(err, "write at %d", offset)
	}
	if n != len(buf) {
		return errors.Errorf("short write at %d: wrote %d of %d bytes", offset, n, len(buf))
	}
	return nil
}
