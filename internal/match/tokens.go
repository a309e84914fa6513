package match

import (
	"strings"
	"unicode"
)

// fieldTokens lowercases s and splits it into alphanumeric tokens. Commas,
// slashes, hyphens and parentheses all act as separators, so "Robotics Club,
// IEEE" yields [robotics club ieee].
func fieldTokens(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// ContainsPhrase reports whether phrase occurs in text on whole-token
// boundaries. Single tokens must match a full token ("asian" does not match
// inside "caucasian", "swe" does not match inside "awesome"); multi-word
// phrases ("tau beta pi") must appear as consecutive tokens.
func ContainsPhrase(text, phrase string) bool {
	want := fieldTokens(phrase)
	if len(want) == 0 {
		return false
	}
	have := fieldTokens(text)

	for i := 0; i+len(want) <= len(have); i++ {
		matched := true
		for j := range want {
			if have[i+j] != want[j] {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

// ContainsAny reports whether any of the phrases occurs in text on whole-token
// boundaries.
func ContainsAny(text string, phrases []string) bool {
	for _, phrase := range phrases {
		if ContainsPhrase(text, phrase) {
			return true
		}
	}
	return false
}
