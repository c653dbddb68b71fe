package fat

import (
	"github.com/pkg/errors"
	"github.com/shubham030/fatrescue/internal/bitpack"
	"github.com/shubham030/fatrescue/internal/image"
)

const bootSectorSize = 512

// BootSector is the typed view of the first 512 bytes of a FAT12/16
// image. Multi-byte fields are little-endian on disk; this struct
// holds them already decoded to native integers.
type BootSector struct {
	OEM               [8]byte
	BytesPerSector    uint16
	SectorsPerCluster uint8
	ReservedSectors   uint16
	FATCopies         uint8
	RootEntries       uint16
	TotalSectors16    uint16
	Media             uint8
	SectorsPerFAT     uint16
	SectorsPerTrack   uint16
	Heads             uint16
	HiddenSectors     uint32
	LargeSectors      uint32
	DriveNumber       uint8
	VolumeSerial      uint32
	VolumeLabel       [11]byte
	FormatTag         [8]byte

	// signatureOK records whether bytes 510-511 were 0x55 0xAA. A
	// mismatch is not fatal — malformed images must still be
	// inspectable — but callers should surface it as a warning.
	signatureOK bool
}

// SignatureOK reports whether the boot sector's trailing 0x55 0xAA
// marker was present.
func (b *BootSector) SignatureOK() bool {
	return b.signatureOK
}

// ReadBootSector reads and decodes the first sector of s.
func ReadBootSector(s *image.Session) (*BootSector, error) {
	if s.Size() < bootSectorSize {
		return nil, ErrImageTruncated
	}

	buf := make([]byte, bootSectorSize)
	if err := s.ReadAt(buf, 0); err != nil {
		return nil, errors.Wrap(ErrImageTruncated, err.Error())
	}

	bs := &BootSector{}
	copy(bs.OEM[:], buf[3:11])
	bs.BytesPerSector = uint16(bitpack.LE16(buf[11:13]))
	bs.SectorsPerCluster = buf[13]
	bs.ReservedSectors = uint16(bitpack.LE16(buf[14:16]))
	bs.FATCopies = buf[16]
	bs.RootEntries = uint16(bitpack.LE16(buf[17:19]))
	bs.TotalSectors16 = uint16(bitpack.LE16(buf[19:21]))
	bs.Media = buf[21]
	bs.SectorsPerFAT = uint16(bitpack.LE16(buf[22:24]))
	bs.SectorsPerTrack = uint16(bitpack.LE16(buf[24:26]))
	bs.Heads = uint16(bitpack.LE16(buf[26:28]))
	bs.HiddenSectors = bitpack.LE32(buf[28:32])
	bs.LargeSectors = bitpack.LE32(buf[32:36])
	bs.DriveNumber = buf[36]
	bs.VolumeSerial = bitpack.LE32(buf[39:43])
	copy(bs.VolumeLabel[:], buf[43:54])
	copy(bs.FormatTag[:], buf[54:62])

	bs.signatureOK = buf[510] == 0x55 && buf[511] == 0xAA

	return bs, nil
}

// Geometry is the immutable, derived layout of a FAT12/16 volume.
// It is computed once at image-open time and shared read-only by the
// walker, scanner and mutators.
type Geometry struct {
	FATType           int // 12, 16, or 32 (32 is detected, never walked)
	SectorSize        int
	SectorsPerCluster int
	ReservedSectors   int
	FATCopies         int
	SectorsPerFAT     int

	// FirstDataSector is expressed in the original's own unit: the
	// reserved region is modeled as a single boot sector, so this is
	// fat_copies*sectors_per_fat + 1 (see spec §3).
	FirstDataSector int

	RootEntries  int
	RootSectors  int
	ClusterCount int

	FATStartByte int64
}

// DeriveGeometry computes a Geometry from a decoded boot sector.
func DeriveGeometry(bs *BootSector) Geometry {
	sectorSize := int(bs.BytesPerSector)
	if sectorSize == 0 {
		sectorSize = bootSectorSize
	}

	// root_dir_sectors (ceiling) only feeds the cluster-count/data-sector
	// math below, per the original's getNumberClusters. The root
	// directory's actual scan extent is rootSectors (floor), matching
	// the original's separately-computed numRootClusters — a
	// non-sector-multiple RootEntries must not make the scan read one
	// sector into the data region.
	rootDirSectorsCeil := (int(bs.RootEntries)*32 + sectorSize - 1) / sectorSize
	rootSectors := int(bs.RootEntries) * 32 / sectorSize

	totalSectors := int(bs.TotalSectors16)
	if totalSectors == 0 {
		totalSectors = int(bs.LargeSectors)
	}

	fatCopies := int(bs.FATCopies)
	sectorsPerFAT := int(bs.SectorsPerFAT)
	reservedSectors := int(bs.ReservedSectors)

	dataSectors := totalSectors - (reservedSectors + fatCopies*sectorsPerFAT + rootDirSectorsCeil)
	sectorsPerCluster := int(bs.SectorsPerCluster)
	clusterCount := 0
	if sectorsPerCluster > 0 {
		clusterCount = dataSectors / sectorsPerCluster
	}

	fatType := 32
	switch {
	case clusterCount < 4085:
		fatType = 12
	case clusterCount < 65525:
		fatType = 16
	}

	return Geometry{
		FATType:           fatType,
		SectorSize:        sectorSize,
		SectorsPerCluster: sectorsPerCluster,
		ReservedSectors:   reservedSectors,
		FATCopies:         fatCopies,
		SectorsPerFAT:     sectorsPerFAT,
		FirstDataSector:   fatCopies*sectorsPerFAT + 1,
		RootEntries:       int(bs.RootEntries),
		RootSectors:       rootSectors,
		ClusterCount:      clusterCount,
		FATStartByte:      int64(sectorSize) * int64(reservedSectors),
	}
}

// ClusterByteOffset returns the absolute byte offset of the one
// sector that addresses cluster (cluster numbering starts at 2).
//
// Per spec §4.4 the scanner and walker both address one sector per
// cluster step — sector_size * (cluster - 2 + first_data_sector) —
// regardless of SectorsPerCluster. This mirrors the original source,
// which never multiplies by sectors-per-cluster when seeking; a
// multi-sector cluster's trailing sectors are never independently
// addressed by this simplified model, only the cluster's first
// sector is read per step.
func (g Geometry) ClusterByteOffset(cluster uint32) int64 {
	return int64(g.SectorSize) * int64(int(cluster)-2+g.FirstDataSector)
}
