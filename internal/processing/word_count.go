package processing

import (
	"regexp"
	"strings"
)

// ASCII punctuation minus hyphen and apostrophe, so "well-known" and
// "isn't" stay single words.
var punctuation = regexp.MustCompile("[!\"#$%&()*+,./:;<=>?@\\[\\\\\\]^_`{|}~]")

func CountWords(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	return len(strings.Fields(punctuation.ReplaceAllString(text, " ")))
}
