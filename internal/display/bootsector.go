package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/shubham030/fatrescue/internal/fat"
)

// PrintBootSector writes the full boot-sector field dump to w, the way
// the original dir tool prints it before listing anything.
func PrintBootSector(w io.Writer, bs *fat.BootSector, g fat.Geometry) {
	fmt.Fprintf(w, "OEM:                 %s\n", trimNul(bs.OEM[:]))
	fmt.Fprintf(w, "Bytes Per Sector:    %d\n", bs.BytesPerSector)
	fmt.Fprintf(w, "Sectors Per Cluster: %d\n", bs.SectorsPerCluster)
	fmt.Fprintf(w, "Reserved Sectors:    %d\n", bs.ReservedSectors)
	fmt.Fprintf(w, "FATs:                %d\n", bs.FATCopies)
	fmt.Fprintf(w, "Entries in Root:     %d\n", bs.RootEntries)
	fmt.Fprintf(w, "Sectors:             %d\n", bs.TotalSectors16)
	fmt.Fprintf(w, "Media:               0x%02x\n", bs.Media)
	fmt.Fprintf(w, "FAT Sectors:         %d\n", bs.SectorsPerFAT)
	fmt.Fprintf(w, "Sectors Per Track:   %d\n", bs.SectorsPerTrack)
	fmt.Fprintf(w, "Sides:               %d\n", bs.Heads)
	fmt.Fprintf(w, "Hidden Sectors:      %d\n", bs.HiddenSectors)
	fmt.Fprintf(w, "Large Sectors:       %d\n", bs.LargeSectors)
	fmt.Fprintf(w, "Disk Number:         %d\n", bs.DriveNumber)
	fmt.Fprintf(w, "Signature:           %s\n", signatureLabel(bs.SignatureOK()))
	fmt.Fprintf(w, "Volume SN:           0x%08x\n", bs.VolumeSerial)
	fmt.Fprintf(w, "Volume Label:        %s\n", trimNul(bs.VolumeLabel[:]))
	fmt.Fprintf(w, "Format Type:         %s\n", trimNul(bs.FormatTag[:]))
	fmt.Fprintf(w, "FAT Type is FAT%d, disk has %d clusters\n", g.FATType, g.ClusterCount)
}

func signatureLabel(ok bool) string {
	if ok {
		return "ok (0x55 0xAA)"
	}
	return "missing or corrupt"
}

func trimNul(b []byte) string {
	return strings.TrimRight(string(b), "\x00")
}
