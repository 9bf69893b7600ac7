// Package slug derives deterministic machine tokens from human titles.
// Used for Permission.action and WebsiteModule.slug — same title in, same
// token out, always.
package slug

import "strings"

// accents maps the Latin-1 / Latin Extended-A range used in pt-BR titles to
// their ASCII bases.
var accents = map[rune]rune{
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a',
	'À': 'A', 'Á': 'A', 'Â': 'A', 'Ã': 'A', 'Ä': 'A', 'Å': 'A',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e',
	'È': 'E', 'É': 'E', 'Ê': 'E', 'Ë': 'E',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i',
	'Ì': 'I', 'Í': 'I', 'Î': 'I', 'Ï': 'I',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o',
	'Ò': 'O', 'Ó': 'O', 'Ô': 'O', 'Õ': 'O', 'Ö': 'O',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u',
	'Ù': 'U', 'Ú': 'U', 'Û': 'U', 'Ü': 'U',
	'ç': 'c', 'Ç': 'C',
	'ñ': 'n', 'Ñ': 'N',
}

// RemoveAccents replaces accented letters with their ASCII bases. Runes
// outside the map pass through untouched.
func RemoveAccents(s string) string {
	return strings.Map(func(r rune) rune {
		if base, ok := accents[r]; ok {
			return base
		}
		return r
	}, s)
}

// Make produces a lowercase hyphen-separated slug: accents stripped,
// every run of non-alphanumeric characters collapsed into a single "-",
// no leading or trailing separator.
func Make(s string) string {
	return normalize(s, '-')
}

// Underscore produces a lowercase snake token, used for permission actions.
func Underscore(s string) string {
	return normalize(s, '_')
}

// Digits strips everything but 0-9. Used to sanitize tax documents
// (CPF/CNPJ) before storage.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func normalize(s string, sep rune) string {
	s = strings.ToLower(RemoveAccents(s))
	var b strings.Builder
	pendingSep := false
	for _, r := range s {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingSep = b.Len() > 0
			continue
		}
		if pendingSep {
			b.WriteRune(sep)
			pendingSep = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
