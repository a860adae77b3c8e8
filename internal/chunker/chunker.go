// Package chunker splits long chat messages into bounded pieces.
package chunker

import (
	"iter"
	"slices"
)

// DefaultLimit matches the maximum text length of a Slack section block.
const DefaultLimit = 3000

// Chunks yields consecutive pieces of text, each at most limit runes long.
// A piece ends right after the last newline inside its window when the window
// does not reach the end of text; a window without a newline is cut at the
// limit. Concatenating the pieces yields text. Empty text yields nothing and
// a limit <= 0 yields text unsplit.
func Chunks(text string, limit int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if text == "" {
			return
		}
		if limit <= 0 {
			yield(text)
			return
		}

		runes := []rune(text)
		n := len(runes)
		for i := 0; i < n; {
			end := min(i+limit, n)
			if end < n {
				if nl := lastNewline(runes[i:end]); nl >= 0 {
					end = i + nl + 1
				}
			}
			if !yield(string(runes[i:end])) {
				return
			}
			i = end
		}
	}
}

// Split collects Chunks into a slice.
func Split(text string, limit int) []string {
	return slices.Collect(Chunks(text, limit))
}

func lastNewline(window []rune) int {
	for j := len(window) - 1; j >= 0; j-- {
		if window[j] == '\n' {
			return j
		}
	}
	return -1
}
