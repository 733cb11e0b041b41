package algo

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Codepoints within this range may normalize to a latin base character
// (e.g. 'á' -> 'a'). The table is filled in at startup from the canonical
// NFD decompositions; only the first codepoint of a decomposition is kept.
const (
	normalizedMin = 0x00C0
	normalizedMax = 0x2184
)

var normalized [normalizedMax + 1]rune

func init() {
	var buf [utf8.UTFMax]byte
	for r := rune(normalizedMin); r <= normalizedMax; r++ {
		n := utf8.EncodeRune(buf[:], r)
		d := norm.NFD.Properties(buf[:n]).Decomposition()
		if len(d) == 0 {
			continue
		}
		base, _ := utf8.DecodeRune(d)
		if base != utf8.RuneError && base != r {
			normalized[r] = base
		}
	}
}

func normalizeRune(r rune) rune {
	if r < normalizedMin || r > normalizedMax {
		return r
	}
	if n := normalized[r]; n > 0 {
		return n
	}
	return r
}

// NormalizeRunes normalizes latin script letters. The needle is normalized
// once up front so that the per-haystack path never touches it again.
func NormalizeRunes(runes []rune) []rune {
	ret := runes
	copied := false
	for idx, r := range runes {
		if n := normalizeRune(r); n != r {
			if !copied {
				ret = make([]rune, len(runes))
				copy(ret, runes)
				copied = true
			}
			ret[idx] = n
		}
	}
	return ret
}
