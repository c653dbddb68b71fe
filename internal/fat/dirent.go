package fat

import (
	"strings"

	"github.com/shubham030/fatrescue/internal/bitpack"
)

// Attribute bits, as laid out in the 32-byte directory entry.
type Attribute uint8

const (
	AttrReadOnly     Attribute = 0x01
	AttrHidden       Attribute = 0x02
	AttrSystem       Attribute = 0x04
	AttrVolumeLabel  Attribute = 0x08
	AttrSubdirectory Attribute = 0x10
	AttrArchive      Attribute = 0x20
)

func (a Attribute) has(bit Attribute) bool { return a&bit != 0 }

const (
	firstByteNeverUsed = 0x00
	firstByteEscapedE5 = 0x05 // the name's actual first byte is 0xE5, see DisplayName
	firstByteDotEntry  = 0x2E
	tombstoneByte      = 0xE5
)

// entrySize is the fixed width of one directory entry on disk.
const entrySize = 32

// DirEntry is the decoded form of one 32-byte directory record.
type DirEntry struct {
	RawName     [8]byte
	RawExt      [3]byte
	Attributes  Attribute
	NTReserved  byte
	CreateTenth byte
	CreateTime  uint16
	CreateDate  uint16
	AccessDate  uint16
	ClusterHigh uint16
	ModTime     uint16
	ModDate     uint16
	ClusterLow  uint16
	FileSize    uint32

	// RawFirstByte is RawName[0] before the 0x05 escape is undone,
	// preserved so callers can test for 0x00/0xE5/0x2E directly.
	RawFirstByte byte
}

// decodeDirEntry parses one 32-byte slice into a DirEntry. Every
// multi-byte field is read with both of its bytes — the original C
// source has a known bug (spec §9) where timeCreated/dateCreated/
// dateAccessed/startingClusterUpper only ever write byte index 0,
// silently losing the high byte. That is corrected here.
func decodeDirEntry(b []byte) DirEntry {
	var e DirEntry
	copy(e.RawName[:], b[0:8])
	copy(e.RawExt[:], b[8:11])
	e.RawFirstByte = b[0]
	e.Attributes = Attribute(b[11])
	e.NTReserved = b[12]
	e.CreateTenth = b[13]
	e.CreateTime = uint16(bitpack.LE16(b[14:16]))
	e.CreateDate = uint16(bitpack.LE16(b[16:18]))
	e.AccessDate = uint16(bitpack.LE16(b[18:20]))
	e.ClusterHigh = uint16(bitpack.LE16(b[20:22]))
	e.ModTime = uint16(bitpack.LE16(b[22:24]))
	e.ModDate = uint16(bitpack.LE16(b[24:26]))
	e.ClusterLow = uint16(bitpack.LE16(b[26:28]))
	e.FileSize = bitpack.LE32(b[28:32])
	return e
}

// StartCluster returns the entry's starting cluster. FAT12/16 never
// populate ClusterHigh, but it is read anyway so the value is exact
// if a caller is pointed at a FAT32 image for inspection purposes.
func (e DirEntry) StartCluster() uint32 {
	return uint32(e.ClusterHigh)<<16 | uint32(e.ClusterLow)
}

// ModTimestamp combines ModDate and ModTime into the single monotonic
// (for same-day comparisons) value spec §3 describes.
func (e DirEntry) ModTimestamp() uint32 {
	return uint32(e.ModDate)<<16 | uint32(e.ModTime)
}

// IsNeverUsed reports whether this slot terminates the directory scan.
func (e DirEntry) IsNeverUsed() bool { return e.RawFirstByte == firstByteNeverUsed }

// IsDeleted reports whether this slot is tombstoned.
func (e DirEntry) IsDeleted() bool { return e.RawFirstByte == tombstoneByte }

// IsDotEntry reports whether this is "." or "..".
func (e DirEntry) IsDotEntry() bool { return e.RawFirstByte == firstByteDotEntry }

// IsParentDotEntry reports whether this is specifically "..", whose
// cluster field points at the parent (or 0 for root) and must never
// be followed, on pain of infinite recursion.
func (e DirEntry) IsParentDotEntry() bool {
	return e.RawFirstByte == firstByteDotEntry && e.RawName[1] == firstByteDotEntry
}

// DisplayName assembles "NAME.EXT" from the 8.3 fields, undoing the
// 0x05-means-literal-0xE5 escape and stripping trailing space padding.
func DisplayName(e DirEntry) string {
	name := append([]byte{}, e.RawName[:]...)
	if name[0] == firstByteEscapedE5 {
		name[0] = tombstoneByte
	}

	base := strings.TrimRight(string(name), " ")
	ext := strings.TrimRight(string(e.RawExt[:]), " ")

	if ext == "" {
		return base
	}
	return base + "." + ext
}
