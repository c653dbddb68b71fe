// Package cli implements the numbered-menu / confirm / letter-prompt
// interaction flow that del and undel drive against stdin/stdout. It
// never touches the image directly — every function here takes a
// scanner and a writer so the prompt flow can be driven from a test
// without a terminal.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Menu prints a 1-based numbered list of names to w.
func Menu(w io.Writer, names []string) {
	for i, name := range names {
		fmt.Fprintf(w, "%d) %s\n", i+1, name)
	}
}

// PromptSelection asks "Which file do you want to <verb>? [1 - max, 0
// to quit]", reprompting on anything that isn't an integer in
// [0, max]. Returning 0 means the user chose to quit.
func PromptSelection(r *bufio.Scanner, w io.Writer, verb string, max int) (int, error) {
	for {
		fmt.Fprintf(w, "Which file do you want to %s? [1 - %d, 0 to quit] ", verb, max)
		if !r.Scan() {
			return 0, io.EOF
		}
		n, err := strconv.Atoi(strings.TrimSpace(r.Text()))
		if err != nil || n < 0 || n > max {
			continue
		}
		return n, nil
	}
}

// Confirm asks "<verb> <name>? [y/n]" and reports whether the answer
// was y or Y.
func Confirm(r *bufio.Scanner, w io.Writer, verb, name string) (bool, error) {
	fmt.Fprintf(w, "%s %s? [y/n] ", verb, name)
	if !r.Scan() {
		return false, io.EOF
	}
	answer := strings.TrimSpace(r.Text())
	return answer == "y" || answer == "Y", nil
}

// PromptLetter asks for a single replacement first letter, reprompting
// until exactly one alphabetic character is entered.
func PromptLetter(r *bufio.Scanner, w io.Writer) (byte, error) {
	for {
		fmt.Fprint(w, "Enter the first letter of the file name: ")
		if !r.Scan() {
			return 0, io.EOF
		}
		text := strings.TrimSpace(r.Text())
		if len(text) == 1 && isAlpha(text[0]) {
			return text[0], nil
		}
	}
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
