package game

import (
	"strings"
	"unicode"
)

// Best-effort compound-word markers for hard mode. This is a heuristic,
// not a dictionary: it will both over- and under-reject, and its exact
// contents are not a correctness contract.
var (
	compoundPrefixes = []string{
		"over", "under", "out", "back", "down", "fire", "water",
		"rain", "snow", "sun", "moon", "wind", "star", "sea",
	}
	compoundSuffixes = []string{
		"light", "house", "ball", "board", "berry", "time", "land",
		"side", "wood", "work", "storm", "fall", "fish", "book",
	}
)

const compoundMinLen = 6

// checkHardModeHint enforces hard difficulty's hint format: a single
// word and not a proper noun.
func checkHardModeHint(text string) error {
	if strings.ContainsFunc(text, unicode.IsSpace) {
		return newError(KindValidation, "hard mode hints must be a single word")
	}
	if strings.ContainsAny(text, "-_/") {
		return newError(KindValidation, "hard mode hints cannot contain separators")
	}
	if hasCamelCaseBoundary(text) {
		return newError(KindValidation, "hard mode hints must be a single word")
	}
	if looksCompound(text) {
		return newError(KindValidation, "hard mode hints cannot be compound words")
	}
	if looksProperNoun(text) {
		return newError(KindValidation, "hard mode hints cannot be proper nouns")
	}
	return nil
}

func hasCamelCaseBoundary(text string) bool {
	runes := []rune(text)
	for i := 1; i < len(runes); i++ {
		if unicode.IsLower(runes[i-1]) && unicode.IsUpper(runes[i]) {
			return true
		}
	}
	return false
}

func looksCompound(text string) bool {
	lower := strings.ToLower(text)
	if len(lower) < compoundMinLen {
		return false
	}
	for _, prefix := range compoundPrefixes {
		if strings.HasPrefix(lower, prefix) && len(lower)-len(prefix) >= 3 {
			return true
		}
	}
	for _, suffix := range compoundSuffixes {
		if strings.HasSuffix(lower, suffix) && len(lower)-len(suffix) >= 3 {
			return true
		}
	}
	return false
}

// looksProperNoun flags all-caps tokens. A single leading capital is
// fine: players title-case ordinary clues all the time.
func looksProperNoun(text string) bool {
	runes := []rune(text)
	if len(runes) < 2 {
		return false
	}
	for _, r := range runes {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
