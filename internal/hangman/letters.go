package hangman

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Letters are the choices offered to the player, in display order.
var Letters = []string{
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
}

var upper = cases.Upper(language.Und)

// NormalizeLetter trims and upper-cases a single letter guess.
// Anything other than one ASCII letter returns ErrInvalidLetter.
func NormalizeLetter(input string) (string, error) {
	s := strings.TrimSpace(input)
	if len(s) != 1 || !isLetter(s[0]) && !(s[0] >= 'a' && s[0] <= 'z') {
		return "", ErrInvalidLetter
	}
	return upper.String(s), nil
}

// NormalizeAnswer upper-cases an answer for comparison and display.
func NormalizeAnswer(answer string) string {
	return upper.String(strings.TrimSpace(answer))
}

func isLetter(b byte) bool {
	return b >= 'A' && b <= 'Z'
}
