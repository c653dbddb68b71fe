// Package display renders engine data (boot sectors, directory
// entries, sizes) the way the three binaries print it, decoupled from
// the scanning and mutation logic in internal/fat.
package display

import "fmt"

// DecodeTime splits a FAT time word into hour, minute, second,
// per the bit layout hour(5):minute(6):second/2(5).
func DecodeTime(word uint16) (hour, minute, second int) {
	hour = int(word>>11) & 0x1F
	minute = int(word>>5) & 0x3F
	second = (int(word) & 0x1F) * 2
	return hour, minute, second
}

// DecodeDate splits a FAT date word into year, month, day,
// per the bit layout (year-1980)(7):month(4):day(5).
func DecodeDate(word uint16) (year, month, day int) {
	year = 1980 + int(word>>9)&0x7F
	month = int(word>>5) & 0x0F
	day = int(word) & 0x1F
	return year, month, day
}

// FormatDateTime renders a date/time word pair as MM-DD-YYYY HH:MM:SS.
func FormatDateTime(dateWord, timeWord uint16) string {
	year, month, day := DecodeDate(dateWord)
	hour, minute, second := DecodeTime(timeWord)
	return fmt.Sprintf("%02d-%02d-%04d %02d:%02d:%02d", month, day, year, hour, minute, second)
}

// FormatDate renders a date word alone as MM-DD-YYYY. Used for the
// access timestamp, which the format has no time component for.
func FormatDate(dateWord uint16) string {
	year, month, day := DecodeDate(dateWord)
	return fmt.Sprintf("%02d-%02d-%04d", month, day, year)
}
