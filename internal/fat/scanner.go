package fat

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/shubham030/fatrescue/internal/image"
)

// ScannedEntry is one directory record surfaced by Scan, annotated
// with its absolute position in the image so a mutator can act on it
// later without rescanning. Name reflects the tombstone byte as
// stored (0xE5 for a deleted entry), matching what the original's
// menus print for deleted files.
type ScannedEntry struct {
	Name string

	BytePosition int64
	StartCluster uint32
	CreateDate   uint16
	CreateTime   uint16
	AccessDate   uint16
	ModDate      uint16
	ModTime      uint16
	ModTimestamp uint32
	FileSize     uint32
	Deleted      bool
	IsDir        bool
}

// warnings accumulates non-fatal problems encountered while recursing
// a directory tree (an unreadable subdirectory cluster, a FAT entry
// that can't be decoded) so the rest of the tree still gets listed.
type warnings struct {
	err *multierror.Error
}

func (w *warnings) add(err error) {
	w.err = multierror.Append(w.err, err)
}

// Scan walks the root directory (a fixed-extent region) and recurses
// into every subdirectory entry other than "..", deleted ones
// included, returning every entry that is not never-used, hidden,
// system, or a volume label — live and deleted alike, the way the
// undelete listing mode in spec §4.4 needs. dir prints this list
// whole; del filters it on !Deleted.
//
// A non-nil error return is a warning summary (partial results are
// still returned and usable) except when a root directory sector
// cannot be read, which aborts the scan and returns only the entries
// gathered before that sector.
func Scan(s *image.Session, g Geometry) ([]ScannedEntry, error) {
	w, err := NewWalker(s, g)
	if err != nil {
		return nil, err
	}

	var entries []ScannedEntry
	warn := &warnings{}
	visited := map[uint32]bool{}

	var scanDir func(startCluster uint32, fixedExtent bool) error
	scanDir = func(startCluster uint32, fixedExtent bool) error {
		if fixedExtent {
			return scanFixedExtent(s, g, g.RootSectors, &entries, scanDir, warn)
		}
		if visited[startCluster] {
			return nil
		}
		visited[startCluster] = true
		return scanChain(s, g, w, startCluster, &entries, scanDir, warn)
	}

	if err := scanDir(2, true); err != nil {
		return entries, err
	}

	return entries, warn.err.ErrorOrNil()
}

func scanFixedExtent(
	s *image.Session,
	g Geometry,
	maxSectors int,
	entries *[]ScannedEntry,
	recurse func(uint32, bool) error,
	warn *warnings,
) error {
	for i := 0; i < maxSectors; i++ {
		sectorByte := g.ClusterByteOffset(uint32(2 + i))
		buf := make([]byte, g.SectorSize)
		if err := s.ReadAt(buf, sectorByte); err != nil {
			return errors.Wrap(ErrIoFailed, err.Error())
		}
		scanSector(buf, sectorByte, entries, recurse, warn)
	}
	return nil
}

func scanChain(
	s *image.Session,
	g Geometry,
	w *Walker,
	startCluster uint32,
	entries *[]ScannedEntry,
	recurse func(uint32, bool) error,
	warn *warnings,
) error {
	current := startCluster
	for {
		if current < 2 {
			break
		}
		sectorByte := g.ClusterByteOffset(current)
		buf := make([]byte, g.SectorSize)
		if err := s.ReadAt(buf, sectorByte); err != nil {
			warn.add(errors.Wrap(ErrIoFailed, err.Error()))
			return nil
		}
		scanSector(buf, sectorByte, entries, recurse, warn)

		next, marker, err := w.NextCluster(current)
		if err != nil {
			warn.add(err)
			return nil
		}
		if !IsChainable(marker) {
			break
		}
		current = next
	}
	return nil
}

// scanSector decodes every 32-byte slot in one sector, appending live
// and deleted entries to *entries and recursing into subdirectories.
func scanSector(
	sector []byte,
	sectorAbsoluteByte int64,
	entries *[]ScannedEntry,
	recurse func(uint32, bool) error,
	warn *warnings,
) {
	for off := 0; off+entrySize <= len(sector); off += entrySize {
		raw := sector[off : off+entrySize]
		e := decodeDirEntry(raw)

		if e.IsNeverUsed() {
			continue
		}
		if e.Attributes.has(AttrHidden) || e.Attributes.has(AttrSystem) || e.Attributes.has(AttrVolumeLabel) {
			continue
		}

		isDir := e.IsDotEntry() || e.Attributes.has(AttrSubdirectory)
		if isDir && !e.IsParentDotEntry() {
			if err := recurse(e.StartCluster(), false); err != nil {
				warn.add(err)
			}
		}

		record := ScannedEntry{
			Name:         DisplayName(e),
			BytePosition: sectorAbsoluteByte + int64(off),
			StartCluster: e.StartCluster(),
			CreateDate:   e.CreateDate,
			CreateTime:   e.CreateTime,
			AccessDate:   e.AccessDate,
			ModDate:      e.ModDate,
			ModTime:      e.ModTime,
			ModTimestamp: e.ModTimestamp(),
			FileSize:     e.FileSize,
			Deleted:      e.IsDeleted(),
			IsDir:        isDir,
		}
		*entries = append(*entries, record)
	}
}
