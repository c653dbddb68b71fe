package fat

import (
	"github.com/pkg/errors"
	"github.com/shubham030/fatrescue/internal/image"
)

// Delete tombstones the entry at position by writing 0xE5 to its
// first byte. The FAT chain is left untouched — that is precisely
// what makes Restore possible afterwards.
func Delete(s *image.Session, position int64) error {
	if err := s.WriteAt([]byte{tombstoneByte}, position); err != nil {
		return errors.Wrap(ErrIoFailed, err.Error())
	}
	return nil
}

// Restore overwrites the tombstone byte at position with letter,
// reviving the entry. Callers are responsible for having validated
// the candidate first (see internal/recovery).
func Restore(s *image.Session, position int64, letter byte) error {
	if err := s.WriteAt([]byte{letter}, position); err != nil {
		return errors.Wrap(ErrIoFailed, err.Error())
	}
	return nil
}
