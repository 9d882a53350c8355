package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugInvalid   = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphens   = regexp.MustCompile(`-{2,}`)
	slugSeparator = regexp.MustCompile(`[\s_]+`)

	// Letters that do not decompose into a base letter plus a mark.
	slugReplacer = strings.NewReplacer("ı", "i", "ß", "ss", "æ", "ae", "ø", "o", "đ", "d", "ł", "l")
)

// Slugify turns a title into a lowercase ASCII slug, e.g. "Şehir Evi" -> "sehir-evi".
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)
	result = slugReplacer.Replace(result)
	result = slugSeparator.ReplaceAllString(result, "-")
	result = slugInvalid.ReplaceAllString(result, "")
	result = slugHyphens.ReplaceAllString(result, "-")

	return strings.Trim(result, "-")
}
