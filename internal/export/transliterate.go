package export

import "strings"

// The core PDF fonts only cover latin-1, so the Turkish glyphs in meal and
// ingredient names are substituted with their closest ASCII forms.
var asciiReplacer = strings.NewReplacer(
	"ş", "s",
	"ç", "c",
	"ı", "i",
	"ğ", "g",
	"ö", "o",
	"ü", "u",
	"Ş", "S",
	"Ç", "C",
	"İ", "I",
	"Ğ", "G",
	"Ö", "O",
	"Ü", "U",
)

// Transliterate maps extended glyphs to ASCII. Empty input falls back to a
// placeholder name.
func Transliterate(text string) string {
	if text == "" {
		return "Isimsiz yemek"
	}
	return asciiReplacer.Replace(text)
}
