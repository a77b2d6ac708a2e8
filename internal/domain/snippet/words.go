package snippet

import "strings"

// Word count bounds enforced at submission time, inclusive.
const (
	MinWords = 50
	MaxWords = 100
)

// CountWords returns the whitespace-delimited word count of text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// ValidateWordCount checks that text falls inside the contribution bounds.
func ValidateWordCount(text string) error {
	words := CountWords(text)
	if words < MinWords || words > MaxWords {
		return ErrWordCountOutOfRange
	}
	return nil
}
