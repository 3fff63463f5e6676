package field

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type runeClass int

const (
	classOther runeClass = iota
	classLower
	classUpper
	classDigit
)

// KebabCase lowercases s and joins its words with hyphens. Latin letters are
// deburred (Prénom -> prenom, Größe -> grosse) and apostrophes dropped
// (don't -> dont). Words break on any other non-alphanumeric rune, on
// lower-to-upper transitions, at the end of an uppercase run followed by a
// lowercase rune (XMLHttp -> xml-http) and between letters and digits
// (address1 -> address-1).
func KebabCase(s string) string {
	return strings.Join(splitWords(deburr(s)), "-")
}

// ligatures covers letters without a canonical decomposition.
var ligatures = strings.NewReplacer(
	"ß", "ss", "Æ", "Ae", "æ", "ae", "Ø", "O", "ø", "o",
	"Þ", "Th", "þ", "th", "Ð", "D", "ð", "d", "Œ", "Oe", "œ", "oe",
	"Ł", "L", "ł", "l", "Đ", "D", "đ", "d", "Ħ", "H", "ħ", "h",
	"ı", "i", "Ĳ", "IJ", "ĳ", "ij", "Ŀ", "L", "ŀ", "l", "ſ", "s",
	"Ŋ", "N", "ŋ", "n", "Ŧ", "T", "ŧ", "t",
	"'", "", "\u2019", "",
)

func deburr(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return ligatures.Replace(out)
}

func splitWords(s string) []string {
	runes := []rune(s)
	words := make([]string, 0, 4)
	current := make([]rune, 0, len(runes))

	flush := func() {
		if len(current) == 0 {
			return
		}
		words = append(words, strings.ToLower(string(current)))
		current = current[:0]
	}

	for i, r := range runes {
		class := classify(r)
		if class == classOther {
			flush()
			continue
		}

		if len(current) > 0 {
			prev := classify(current[len(current)-1])
			switch {
			case (prev == classDigit) != (class == classDigit):
				flush()
			case prev == classLower && class == classUpper:
				flush()
			case prev == classUpper && class == classUpper && i+1 < len(runes) && classify(runes[i+1]) == classLower:
				flush()
			}
		}
		current = append(current, r)
	}
	flush()

	return words
}

func classify(r rune) runeClass {
	switch {
	case unicode.IsDigit(r):
		return classDigit
	case unicode.IsUpper(r) || unicode.IsTitle(r):
		return classUpper
	case unicode.IsLetter(r) || unicode.IsMark(r):
		return classLower
	default:
		return classOther
	}
}
