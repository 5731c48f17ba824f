// skillz/skills.go
package skillz

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

////////////////////////////////////////////////////////////////////////
// Tokenizer
////////////////////////////////////////////////////////////////////////

// isSkillDelimiter reports whether r separates two skills in free text.
// Runs of delimiters collapse into a single split point.
func isSkillDelimiter(r rune) bool {
	return r == ',' || r == '\n' || r == '\r'
}

// Tokenize splits a raw skills field on commas and line breaks and returns
// the trimmed, non-empty pieces in the order they appear.
// Example: "Python,, Django\r\nReact" -> ["Python", "Django", "React"]
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(text, isSkillDelimiter)

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		// A piece made only of whitespace (e.g. "a, ,b") is not a skill.
		if token := strings.TrimSpace(field); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

////////////////////////////////////////////////////////////////////////
// Normalizer
////////////////////////////////////////////////////////////////////////

// isTrailingNoise matches the characters stripped from the end of a skill key.
func isTrailingNoise(r rune) bool {
	return r == '.' || r == ',' || unicode.IsSpace(r)
}

// Normalize converts a single token into the key used for comparison:
// - "Sketch." -> "sketch"
// - "Python"  -> "python"
// - " C++ "   -> "c++"
// Only trailing dots and commas are removed, so "node.js" keeps its dot.
func Normalize(token string) string {
	// cases.Caser carries state, so each call gets its own to stay safe for
	// concurrent use.
	lower := cases.Lower(language.Und).String(token)

	key := strings.TrimSpace(lower)
	return strings.TrimRightFunc(key, isTrailingNoise)
}

////////////////////////////////////////////////////////////////////////
// SkillSet
////////////////////////////////////////////////////////////////////////

// SkillSet is the de-duplicated set of normalized skill keys parsed from a
// single skills field.
type SkillSet map[string]struct{}

// ParseSkillSet tokenizes and normalizes text into a SkillSet.
// Tokens that normalize to an empty key (like a lone ".") are discarded.
func ParseSkillSet(text string) SkillSet {
	set := make(SkillSet)
	for _, token := range Tokenize(text) {
		if key := Normalize(token); key != "" {
			set[key] = struct{}{}
		}
	}
	return set
}

// Len returns the number of distinct skills.
func (s SkillSet) Len() int {
	return len(s)
}

// Contains reports whether the normalized key is in the set.
func (s SkillSet) Contains(key string) bool {
	_, ok := s[key]
	return ok
}

// Keys returns the skills in sorted order.
func (s SkillSet) Keys() []string {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
