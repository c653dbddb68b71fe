package fat

import (
	"github.com/pkg/errors"
	"github.com/shubham030/fatrescue/internal/bitpack"
	"github.com/shubham030/fatrescue/internal/image"
)

// ClusterMarker classifies the value returned by NextCluster.
type ClusterMarker int

const (
	// ClusterNormal: value is a valid next-cluster number.
	ClusterNormal ClusterMarker = iota
	ClusterFree
	ClusterReserved
	ClusterBad
	ClusterEnd
)

// Walker follows a FAT12/16 cluster chain, keeping a single
// sector-sized window into the FAT region and paging in whichever
// sector covers the cluster currently being looked up.
//
// The original C source derives the cached sector's range by
// reassigning curFATSector = sizeofSector * (nextCluster /
// entriesPerFATSector) — a value scaled by sector size rather than a
// plain sector index — and then compares future lookups against that
// scaled value. Per spec §9 this is treated as a bug (it only causes
// redundant reloads, not wrong cluster values); this Walker keeps a
// plain sector index and a plain byte offset separately instead, per
// the recommended fix.
type Walker struct {
	session  *image.Session
	geometry Geometry

	haveSector  bool
	sectorIndex int
	sector      []byte
}

// NewWalker returns a Walker over s using geometry g. It refuses to
// walk FAT32 images: the engine only implements FAT12/16 chains.
func NewWalker(s *image.Session, g Geometry) (*Walker, error) {
	if g.FATType != 12 && g.FATType != 16 {
		return nil, ErrUnsupportedFatType
	}
	return &Walker{
		session:  s,
		geometry: g,
		sector:   make([]byte, g.SectorSize),
	}, nil
}

func (w *Walker) entriesPerFATSector() int {
	if w.geometry.FATType == 12 {
		return w.geometry.SectorSize * 2 / 3
	}
	return w.geometry.SectorSize / 2
}

// ensureSector makes sure the cached FAT sector covers cluster.
func (w *Walker) ensureSector(cluster uint32) error {
	epfs := w.entriesPerFATSector()
	if epfs <= 0 {
		return errors.New("fat: degenerate geometry (zero entries per FAT sector)")
	}
	wantIndex := int(cluster) / epfs

	if w.haveSector && wantIndex == w.sectorIndex {
		return nil
	}

	offset := w.geometry.FATStartByte + int64(w.geometry.SectorSize)*int64(wantIndex)
	if err := w.session.ReadAt(w.sector, offset); err != nil {
		return errors.Wrap(ErrIoFailed, err.Error())
	}
	w.sectorIndex = wantIndex
	w.haveSector = true
	return nil
}

// classify maps a raw FAT12/16 value to its marker, returning the
// cluster number unchanged for ClusterNormal.
func (w *Walker) classify(raw uint32) (uint32, ClusterMarker) {
	if w.geometry.FATType == 12 {
		switch {
		case raw == 0x000:
			return raw, ClusterFree
		case raw == 0x001:
			return raw, ClusterReserved
		case raw == 0xFF7:
			return raw, ClusterBad
		case raw >= 0xFF8:
			return raw, ClusterEnd
		default:
			return raw, ClusterNormal
		}
	}
	switch {
	case raw == 0x0000:
		return raw, ClusterFree
	case raw == 0x0001:
		return raw, ClusterReserved
	case raw == 0xFFF7:
		return raw, ClusterBad
	case raw >= 0xFFF8:
		return raw, ClusterEnd
	default:
		return raw, ClusterNormal
	}
}

// NextCluster returns the successor of cluster by decoding the
// appropriate FAT12/16 entry, paging in the owning FAT sector first.
func (w *Walker) NextCluster(cluster uint32) (uint32, ClusterMarker, error) {
	if err := w.ensureSector(cluster); err != nil {
		return 0, 0, err
	}

	epfs := w.entriesPerFATSector()
	localIndex := int(cluster) % epfs

	var raw uint32
	if w.geometry.FATType == 12 {
		tripletIndex := localIndex / 2
		byteOffset := tripletIndex * 3
		if byteOffset+3 > len(w.sector) {
			return 0, 0, errors.New("fat: FAT12 entry straddles sector boundary (widen window)")
		}
		which := 1
		if localIndex%2 == 1 {
			which = 2
		}
		raw = uint32(bitpack.LE12(w.sector[byteOffset:byteOffset+3], which))
	} else {
		byteOffset := localIndex * 2
		raw = bitpack.LE16(w.sector[byteOffset : byteOffset+2])
	}

	value, marker := w.classify(raw)
	return value, marker, nil
}

// IsChainable reports whether marker represents a cluster number that
// chain-following may continue from.
func IsChainable(marker ClusterMarker) bool {
	return marker == ClusterNormal
}

// Chain walks the FAT from start, collecting cluster numbers until an
// end-of-chain, bad, reserved, or free marker is reached. The starting
// cluster itself is included first.
func (w *Walker) Chain(start uint32) ([]uint32, error) {
	var chain []uint32
	current := start
	for {
		chain = append(chain, current)
		next, marker, err := w.NextCluster(current)
		if err != nil {
			return chain, err
		}
		if !IsChainable(marker) {
			break
		}
		current = next
	}
	return chain, nil
}
