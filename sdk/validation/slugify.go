package validation

import (
	"regexp"
	"strings"
)

var (
	slugSeparators  = regexp.MustCompile(`[\s\-_]+`)
	slugInvalid     = regexp.MustCompile(`[^a-z0-9\-]`)
	slugMultiHyphen = regexp.MustCompile(`-+`)
)

var accentMap = map[rune]rune{
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u',
	'ý': 'y', 'ÿ': 'y',
	'ñ': 'n', 'ç': 'c',
	'ß': 's',
}

// Slugify converts a string to a lowercase, hyphen separated slug.
//
//	Slugify("My API")   // "my-api"
//	Slugify("crème_app") // "creme-app"
func Slugify(s string) string {
	s = removeAccents(strings.ToLower(s))
	s = slugSeparators.ReplaceAllString(s, "-")
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugMultiHyphen.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func removeAccents(s string) string {
	var result strings.Builder
	for _, r := range s {
		if replacement, ok := accentMap[r]; ok {
			result.WriteRune(replacement)
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
