package recovery

import (
	"github.com/pkg/errors"
	"github.com/shubham030/fatrescue/internal/fat"
	"github.com/shubham030/fatrescue/internal/image"
)

// ErrNotValidated is returned by Restore if Validate was never run, or
// returned false, for the current selection.
var ErrNotValidated = errors.New("recovery: candidate has not passed validation")

// DeletedEntries filters a scan down to tombstoned entries, preserving
// scan order. This is the 1-based list undel's menu shows, and the
// only slice Select ever indexes.
func DeletedEntries(all []fat.ScannedEntry) []fat.ScannedEntry {
	var out []fat.ScannedEntry
	for _, e := range all {
		if e.Deleted {
			out = append(out, e)
		}
	}
	return out
}

// LiveEntries filters a scan down to entries still in use — del's
// menu shows these.
func LiveEntries(all []fat.ScannedEntry) []fat.ScannedEntry {
	var out []fat.ScannedEntry
	for _, e := range all {
		if !e.Deleted {
			out = append(out, e)
		}
	}
	return out
}

// Select returns the nth 1-based entry from menu. Both del and undel
// index the exact slice their menu printed, so a user's choice of "3"
// always means the third printed line — never a second, differently
// filtered count as the original's sentinel-headed linked list let
// happen (see DESIGN.md).
func Select(menu []fat.ScannedEntry, n int) (fat.ScannedEntry, error) {
	if n < 1 || n > len(menu) {
		return fat.ScannedEntry{}, fat.ErrInvalidSelection
	}
	return menu[n-1], nil
}

// Session drives one undelete: Deleted builds the menu, Select and
// Validate narrow it to a single checked candidate, and Restore writes
// the replacement first byte once a caller has confirmed both the
// choice and the validation result.
type Session struct {
	session   *image.Session
	walker    *fat.Walker
	geometry  fat.Geometry
	all       []fat.ScannedEntry
	validated bool
	candidate fat.ScannedEntry
}

// NewSession scans s and prepares an undelete session over the
// result. The scan is taken once; Restore mutates the same handle
// in place rather than rescanning.
func NewSession(s *image.Session, g fat.Geometry) (*Session, error) {
	w, err := fat.NewWalker(s, g)
	if err != nil {
		return nil, err
	}
	all, err := fat.Scan(s, g)
	if err != nil && all == nil {
		return nil, err
	}
	return &Session{session: s, walker: w, geometry: g, all: all}, nil
}

// Entries returns every entry found by the scan backing this session,
// live and deleted alike.
func (sess *Session) Entries() []fat.ScannedEntry { return sess.all }

// Deleted returns the undelete menu: every tombstoned entry, in scan
// order.
func (sess *Session) Deleted() []fat.ScannedEntry { return DeletedEntries(sess.all) }

// Validate runs the overwrite check against candidate and remembers
// the result so a subsequent Restore call can refuse to proceed if it
// was never called, or returned false.
func (sess *Session) Validate(candidate fat.ScannedEntry) (bool, error) {
	ok, err := Validate(sess.walker, sess.all, candidate, sess.geometry.SectorSize)
	if err != nil {
		return false, err
	}
	sess.validated = ok
	sess.candidate = candidate
	return ok, nil
}

// Restore writes letter as the first byte of candidate's directory
// entry, reviving it. It refuses unless candidate is the same entry
// that last passed Validate.
func (sess *Session) Restore(candidate fat.ScannedEntry, letter byte) error {
	if !sess.validated || candidate.BytePosition != sess.candidate.BytePosition {
		return ErrNotValidated
	}
	return fat.Restore(sess.session, candidate.BytePosition, letter)
}

// Delete tombstones candidate's directory entry — the del binary's
// sole write operation, kept here so both binaries share one mutation
// path over the same Session type.
func (sess *Session) Delete(candidate fat.ScannedEntry) error {
	return fat.Delete(sess.session, candidate.BytePosition)
}
