// Package text folds Turkish free text into comparable forms.
package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// dotless i has no decomposition, so NFD alone never reaches it.
var dotless = strings.NewReplacer("ı", "i", "İ", "I")

// Lower lower-cases with Turkish casing rules (İ -> i, I -> ı).
// Casers are not safe for concurrent use, so one is built per call.
func Lower(s string) string {
	if s == "" {
		return ""
	}
	return cases.Lower(language.Turkish).String(s)
}

// Normalize lower-cases s and folds Turkish letters (and any other
// combining marks) to base Latin: "Kadıköy" -> "kadikoy".
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	return stripMarks(strings.ReplaceAll(Lower(s), "ı", "i"))
}

// Fold strips diacritics but keeps case: "Üsküdar_Köfte" -> "Uskudar_Kofte".
func Fold(s string) string {
	if s == "" {
		return ""
	}
	return stripMarks(dotless.Replace(s))
}

// Contains reports whether needle occurs in haystack after normalizing both.
func Contains(haystack, needle string) bool {
	n := Normalize(needle)
	if n == "" {
		return false
	}
	return strings.Contains(Normalize(haystack), n)
}

func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
