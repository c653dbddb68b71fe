package display

import (
	"golang.org/x/text/encoding/charmap"
)

// Name decodes a ScannedEntry's 8.3 name (already assembled by
// fat.DisplayName, byte-for-byte including the tombstone marker of a
// deleted entry) through CP437, the OEM codepage MS-DOS short names
// are actually encoded in. Plain ASCII names pass through unchanged;
// a high-byte name (accented letters, box-drawing characters used as
// filler) renders instead of being written out as invalid UTF-8. This
// is purely a presentation step — it never touches the raw bytes the
// engine parses or mutates.
func Name(raw string) string {
	decoded, err := charmap.CodePage437.NewDecoder().String(raw)
	if err != nil {
		return raw
	}
	return decoded
}
