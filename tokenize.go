package argv

import (
	"bufio"
	"io"
	"strings"
)

// Tokens reads whitespace-separated tokens from r, producing a vector
// suitable for Classify. Useful for classifying captured streams or
// files of pre-built command lines.
func Tokens(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	var tokens []string
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

// Split cuts s on any of the delimiter characters, dropping empty
// pieces, producing a vector suitable for Classify.
func Split(s, delims string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(delims, r)
	})
}
