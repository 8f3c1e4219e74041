package drills

import (
	"math"
	"net/url"
	"strings"
)

// AlphabetSize is the number of letters the cipher rotates over, 'A' through 'Z'.
const AlphabetSize = 26

// cipherBase anchors the alphabet offset calculation.
const cipherBase = 'A'

// Encode applies a Caesar shift to text.
//
// The text is upper-cased first. Runes whose offset from 'A' falls in
// [0, AlphabetSize) are rotated by shift with wraparound in both directions;
// every other rune is copied unchanged. The result has the same number of
// runes as the upper-cased input.
func Encode(text string, shift int) string {
	shift = euclidMod(shift, AlphabetSize)
	upper := strings.ToUpper(text)

	var b strings.Builder
	b.Grow(len(upper))
	for _, r := range upper {
		off := int(r - cipherBase)
		if off < 0 || off >= AlphabetSize {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(cipherBase + rune(euclidMod(off+shift, AlphabetSize)))
	}
	return b.String()
}

// euclidMod returns a mod m in [0, m) for any sign of a.
func euclidMod(a, m int) int {
	return (a%m + m) % m
}

// ParseCipherRequest validates the text and shift query parameters.
//
// Shift must be a finite whole number; integral spellings such as "3.0" or
// "-2e1" are accepted. Shifts of any magnitude are reduced modulo
// AlphabetSize, which does not change the ciphertext.
func ParseCipherRequest(q url.Values) (CipherRequest, error) {
	text, err := requireParam(q, "text")
	if err != nil {
		return CipherRequest{}, err
	}

	raw, err := requireParam(q, "shift")
	if err != nil {
		return CipherRequest{}, err
	}

	shift, err := parseNumber("shift", raw)
	if err != nil {
		return CipherRequest{}, err
	}

	if shift != math.Trunc(shift) {
		return CipherRequest{}, &ValidationError{Field: "shift", Message: "shift must be a whole number"}
	}

	return CipherRequest{
		Text:  text,
		Shift: int(math.Mod(shift, AlphabetSize)),
	}, nil
}
