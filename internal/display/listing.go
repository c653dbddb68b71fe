package display

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/shubham030/fatrescue/internal/fat"
)

// Row formats one entry as "NAME.EXT  SIZE  created  accessed  modified",
// the layout dir prints per line; the name is the joined 8.3 name,
// left-aligned in a 12-character column. humanizeSize controls whether
// size is rendered as a raw byte count or a human-readable one (-h).
func Row(e fat.ScannedEntry, humanizeSize bool) string {
	size := fmt.Sprintf("%13d", e.FileSize)
	if humanizeSize {
		size = fmt.Sprintf("%13s", humanize.Bytes(uint64(e.FileSize)))
	}
	return fmt.Sprintf("%-12s %s  %s  %s  %s",
		Name(e.Name),
		size,
		FormatDateTime(e.CreateDate, e.CreateTime),
		FormatDate(e.AccessDate),
		FormatDateTime(e.ModDate, e.ModTime),
	)
}

// PrintListing writes one Row per entry, followed by the total-files /
// total-bytes summary line dir ends every run with.
func PrintListing(w io.Writer, entries []fat.ScannedEntry, humanizeSize bool) {
	var totalBytes uint64
	for _, e := range entries {
		fmt.Fprintln(w, Row(e, humanizeSize))
		totalBytes += uint64(e.FileSize)
	}

	size := fmt.Sprintf("%d bytes", totalBytes)
	if humanizeSize {
		size = humanize.Bytes(totalBytes)
	}
	fmt.Fprintf(w, "%d file(s), %s\n", len(entries), size)
}
