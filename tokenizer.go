package explore

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
	"golang.org/x/text/unicode/norm"
)

// normalize applies Unicode normalization (NFKC) and converts to lowercase.
func normalize(s string) string {
	return strings.ToLower(norm.NFKC.String(s))
}

// tokenize splits normalized text into word tokens using UAX#29 word
// segmentation. Whitespace and punctuation segments are dropped so only
// wordlike tokens (containing at least one letter or digit) enter the
// pipeline. Handles locale-specific characters such as German umlauts.
func tokenize(s string) []string {
	toks := words.FromString(s)
	var tokens []string
	for toks.Next() {
		if t := toks.Value(); isWordlike(t) {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// queryTokens converts raw query text into the normalized token sequence
// the index was built with. Deterministic; an all-separator input yields an
// empty sequence.
func queryTokens(query string) []string {
	return tokenize(normalize(query))
}

// isWordlike reports whether the segment contains at least one letter or
// digit.
func isWordlike(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// splitChunks splits an already-normalized partial query into its
// whitespace/punctuation delimited chunks. The second return value reports
// whether the input ends inside a chunk: a trailing separator means the
// user finished the last word, so there is no in-progress front token to
// expand.
func splitChunks(s string) (chunks []string, open bool) {
	start := -1
	for i, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			chunks = append(chunks, s[start:i])
			start = -1
		}
	}
	if start >= 0 {
		chunks = append(chunks, s[start:])
		open = true
	}
	return chunks, open
}
