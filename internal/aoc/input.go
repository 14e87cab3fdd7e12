package aoc

import (
	"fmt"
	"os"
	"strings"
)

// ReadInput returns the full contents of filename.
func ReadInput(filename string) (string, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("read input %s: %w", filename, err)
	}
	return string(b), nil
}

// Lines splits input on newlines. A trailing newline does not produce an
// empty last line, and CRLF endings are tolerated.
func Lines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.TrimSuffix(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// Blocks splits input into blank-line separated chunks.
func Blocks(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	return strings.Split(strings.TrimSpace(input), "\n\n")
}
