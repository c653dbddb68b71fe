package fat

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shubham030/fatrescue/internal/image"
)

func putLE16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func putLE32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

// setFAT12Entry writes a 12-bit value into the FAT12 table fat at the
// given cluster index, preserving whichever entry shares its triplet.
func setFAT12Entry(fat []byte, cluster uint32, value uint16) {
	tripletIndex := cluster / 2
	off := tripletIndex * 3
	if cluster%2 == 0 {
		fat[off] = byte(value)
		fat[off+1] = (fat[off+1] & 0xF0) | byte((value>>8)&0x0F)
	} else {
		fat[off+1] = (fat[off+1] & 0x0F) | byte((value&0x0F)<<4)
		fat[off+2] = byte(value >> 4)
	}
}

func padField(s string, width int) []byte {
	b := []byte(strings.ToUpper(s))
	out := make([]byte, width)
	for i := range out {
		out[i] = ' '
	}
	copy(out, b)
	return out
}

// writeDirEntry fills a 32-byte slot with an 8.3 directory record.
// name/ext are right-padded with spaces; passing name "." or ".."
// naturally reproduces the self/parent records since padField pads
// after the literal dots.
func writeDirEntry(slot []byte, name, ext string, attr byte, startCluster uint32, size uint32, deleted bool) {
	copy(slot[0:8], padField(name, 8))
	copy(slot[8:11], padField(ext, 3))
	if deleted {
		slot[0] = 0xE5
	}
	slot[11] = attr
	putLE16(slot[20:22], uint16(startCluster>>16))
	putLE16(slot[26:28], uint16(startCluster&0xFFFF))
	putLE32(slot[28:32], size)
}

// buildFAT12Image assembles a tiny, well-formed FAT12 image:
//
//	sector 0: boot sector
//	sector 1: FAT (1 copy, 1 sector)
//	sector 2: root directory (16 entries)
//	sector 3: SUBDIR's sole cluster (cluster 3)
//
// Root holds a live file (FILE.TXT, cluster 4), a deleted file
// (GONE.TXT) and the SUBDIR entry. SUBDIR holds "." / ".." and one
// deleted file (DEEP.TXT), exercising recursion and the parent-entry
// recursion guard in the same pass.
func buildFAT12Image(t *testing.T) (*image.Session, Geometry) {
	t.Helper()

	const sectorSize = 512
	const totalSectors = 4

	buf := make([]byte, totalSectors*sectorSize)

	copy(buf[3:11], []byte("MSDOS5.0"))
	putLE16(buf[11:13], sectorSize)
	buf[13] = 1 // sectors per cluster
	putLE16(buf[14:16], 1)
	buf[16] = 1 // FAT copies
	putLE16(buf[17:19], 16)
	putLE16(buf[19:21], totalSectors)
	buf[21] = 0xF0
	putLE16(buf[22:24], 1) // sectors per FAT
	buf[510] = 0x55
	buf[511] = 0xAA

	fatSector := buf[512:1024]
	setFAT12Entry(fatSector, 3, 0xFFF) // SUBDIR's cluster ends its own chain

	root := buf[1024:1536]
	writeDirEntry(root[0:32], "FILE", "TXT", 0x20, 4, 10, false)
	writeDirEntry(root[32:64], "GONE", "TXT", 0x20, 0, 5, true)
	writeDirEntry(root[64:96], "SUBDIR", "", 0x10, 3, 0, false)

	subdir := buf[1536:2048]
	writeDirEntry(subdir[0:32], ".", "", 0x10, 3, 0, false)
	writeDirEntry(subdir[32:64], "..", "", 0x10, 0, 0, false)
	writeDirEntry(subdir[64:96], "DEEP", "TXT", 0x20, 0, 7, true)

	path := filepath.Join(t.TempDir(), "image.dat")
	if err := os.WriteFile(path, buf, 0o600); err != nil {
		t.Fatalf("write synthetic image: %v", err)
	}

	s, err := image.Open(path, image.ReadWrite)
	if err != nil {
		t.Fatalf("open synthetic image: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	bs, err := ReadBootSector(s)
	if err != nil {
		t.Fatalf("ReadBootSector: %v", err)
	}
	return s, DeriveGeometry(bs)
}
