// Package text provides small text-analysis helpers shared by the article
// surfaces.
package text

import (
	"strings"
	"unicode/utf8"
)

// readingWordsPerMinute is the average adult reading speed used for the
// estimated reading time shown on article cards.
const readingWordsPerMinute = 200

// CountRunes counts Unicode characters, not bytes, so multi-byte scripts and
// emoji count once each.
func CountRunes(s string) int {
	return utf8.RuneCountInString(s)
}

// CountWords counts whitespace-separated words.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// ReadingMinutes estimates reading time in whole minutes, rounding up.
// Empty text reads in zero minutes; any non-empty text takes at least one.
func ReadingMinutes(s string) int {
	words := CountWords(s)
	if words == 0 {
		return 0
	}
	return (words + readingWordsPerMinute - 1) / readingWordsPerMinute
}
