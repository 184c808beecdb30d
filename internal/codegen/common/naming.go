package common

import (
	"strings"
	"unicode"
)

// splitWords breaks s on separators and on lower-to-upper case boundaries.
// "user profile" -> [user profile], "userProfile" -> [user Profile].
func splitWords(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || r == '/' || unicode.IsSpace(r)
	})

	var words []string
	for _, part := range parts {
		runes := []rune(part)
		start := 0
		for i := 1; i < len(runes); i++ {
			if unicode.IsUpper(runes[i]) && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])) {
				words = append(words, string(runes[start:i]))
				start = i
			}
		}
		words = append(words, string(runes[start:]))
	}
	return words
}

// ToPascalCase upper-cases the first letter of every word and joins them.
// The remaining letters keep their case, so acronyms survive ("user_ID" -> "UserID").
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	for _, word := range splitWords(s) {
		runes := []rune(word)
		if len(runes) == 0 {
			continue
		}
		result.WriteRune(unicode.ToUpper(runes[0]))
		result.WriteString(string(runes[1:]))
	}

	return SanitizeLeadingDigit(result.String())
}

// ToCamelCase lower-cases the leading upper-case run of the PascalCase form,
// keeping the last capital of an acronym that starts the next word ("URLForm" -> "urlForm").
func ToCamelCase(s string) string {
	runes := []rune(ToPascalCase(s))
	for i := 0; i < len(runes) && unicode.IsUpper(runes[i]); i++ {
		if i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
			break
		}
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

// SanitizeLeadingDigit prefixes names that start with a digit with "Num"
// to keep identifiers valid in target languages.
func SanitizeLeadingDigit(name string) string {
	if name == "" {
		return ""
	}
	if name[0] >= '0' && name[0] <= '9' {
		return "Num" + name
	}
	return name
}
