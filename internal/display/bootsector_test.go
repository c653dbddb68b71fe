package display

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shubham030/fatrescue/internal/fat"
	"github.com/shubham030/fatrescue/internal/image"
)

func mustSignedSession(t *testing.T) *image.Session {
	t.Helper()
	buf := make([]byte, 512)
	buf[510] = 0x55
	buf[511] = 0xAA
	path := filepath.Join(t.TempDir(), "image.dat")
	if err := os.WriteFile(path, buf, 0o600); err != nil {
		t.Fatalf("write image: %v", err)
	}
	s, err := image.Open(path, image.ReadOnly)
	if err != nil {
		t.Fatalf("open image: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPrintBootSectorIncludesAllFields(t *testing.T) {
	bs := &fat.BootSector{
		OEM:            [8]byte{'M', 'S', 'D', 'O', 'S', '5', '.', '0'},
		BytesPerSector: 512,
		RootEntries:    512,
		Media:          0xF8,
		VolumeSerial:   0xDEADBEEF,
		VolumeLabel:    [11]byte{'N', 'O', ' ', 'N', 'A', 'M', 'E', ' ', ' ', ' ', ' '},
		FormatTag:      [8]byte{'F', 'A', 'T', '1', '6', ' ', ' ', ' '},
	}
	g := fat.Geometry{FATType: 16, ClusterCount: 4096}

	var buf bytes.Buffer
	PrintBootSector(&buf, bs, g)
	out := buf.String()

	for _, want := range []string{
		"OEM:", "MSDOS5.0",
		"Bytes Per Sector:    512",
		"Entries in Root:     512",
		"Media:               0xf8",
		"Volume SN:           0xdeadbeef",
		"NO NAME",
		"FAT16",
		"disk has 4096 clusters",
		"missing or corrupt",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("PrintBootSector() output missing %q; got:\n%s", want, out)
		}
	}
}

func TestPrintBootSectorReportsValidSignature(t *testing.T) {
	bs, err := fat.ReadBootSector(mustSignedSession(t))
	if err != nil {
		t.Fatalf("ReadBootSector: %v", err)
	}
	g := fat.DeriveGeometry(bs)

	var buf bytes.Buffer
	PrintBootSector(&buf, bs, g)
	if !strings.Contains(buf.String(), "ok (0x55 0xAA)") {
		t.Errorf("expected a valid-signature image to report ok (0x55 0xAA)")
	}
}
