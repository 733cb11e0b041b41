package util

import (
	"unicode"
	"unicode/utf8"
	"unsafe"

	"github.com/rivo/uniseg"
)

const (
	overflow64 uint64 = 0x8080808080808080
	overflow32 uint32 = 0x80808080
)

// Chars is a read-only view over one candidate string. An ASCII-only string
// is kept as packed bytes. Anything else is segmented into grapheme clusters
// and stored as one codepoint per cluster (the cluster's first codepoint),
// with a parallel table mapping each codepoint index back to the byte offset
// of its cluster so that callers can recover the original byte range of a
// matched position.
type Chars struct {
	slice           []byte // or []rune
	byteIdx         []int32
	inBytes         bool
	trimLengthKnown bool
	trimLength      uint16
}

func checkAscii(bytes []byte) bool {
	i := 0
	for ; i <= len(bytes)-8; i += 8 {
		if (overflow64 & *(*uint64)(unsafe.Pointer(&bytes[i]))) > 0 {
			return false
		}
	}
	for ; i <= len(bytes)-4; i += 4 {
		if (overflow32 & *(*uint32)(unsafe.Pointer(&bytes[i]))) > 0 {
			return false
		}
	}
	for ; i < len(bytes); i++ {
		if bytes[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// ToChars converts a byte array into a Chars view. Malformed UTF-8 sequences
// are decoded as replacement characters.
func ToChars(bytes []byte) Chars {
	if checkAscii(bytes) {
		return Chars{slice: bytes, inBytes: true}
	}

	runes := make([]rune, 0, len(bytes))
	byteIdx := make([]int32, 0, len(bytes))
	graphemes := uniseg.NewGraphemes(unsafe.String(unsafe.SliceData(bytes), len(bytes)))
	for graphemes.Next() {
		from, _ := graphemes.Positions()
		runes = append(runes, graphemes.Runes()[0])
		byteIdx = append(byteIdx, int32(from))
	}
	return Chars{
		slice:   *(*[]byte)(unsafe.Pointer(&runes)),
		byteIdx: byteIdx,
		inBytes: false}
}

// CharsFromString converts a string into a Chars view
func CharsFromString(str string) Chars {
	return ToChars([]byte(str))
}

func (chars *Chars) IsBytes() bool {
	return chars.inBytes
}

func (chars *Chars) Bytes() []byte {
	return chars.slice
}

func (chars *Chars) optionalRunes() []rune {
	if chars.inBytes {
		return nil
	}
	return *(*[]rune)(unsafe.Pointer(&chars.slice))
}

// Get returns the codepoint stored for the given grapheme index
func (chars *Chars) Get(i int) rune {
	if runes := chars.optionalRunes(); runes != nil {
		return runes[i]
	}
	return rune(chars.slice[i])
}

// Length returns the number of graphemes
func (chars *Chars) Length() int {
	if runes := chars.optionalRunes(); runes != nil {
		return len(runes)
	}
	return len(chars.slice)
}

// ByteOffset returns the byte offset of the grapheme cluster at the given
// index within the original string
func (chars *Chars) ByteOffset(i int) int {
	if chars.inBytes {
		return i
	}
	return int(chars.byteIdx[i])
}

// TrimLength returns the length after trimming leading and trailing whitespaces
func (chars *Chars) TrimLength() uint16 {
	if chars.trimLengthKnown {
		return chars.trimLength
	}
	chars.trimLengthKnown = true
	var i int
	len := chars.Length()
	for i = len - 1; i >= 0; i-- {
		if !unicode.IsSpace(chars.Get(i)) {
			break
		}
	}
	// Completely empty
	if i < 0 {
		return 0
	}

	var j int
	for j = 0; j < len; j++ {
		if !unicode.IsSpace(chars.Get(j)) {
			break
		}
	}
	chars.trimLength = AsUint16(i - j + 1)
	return chars.trimLength
}

func (chars *Chars) LeadingWhitespaces() int {
	whitespaces := 0
	for i := 0; i < chars.Length(); i++ {
		if !unicode.IsSpace(chars.Get(i)) {
			break
		}
		whitespaces++
	}
	return whitespaces
}

func (chars *Chars) TrailingWhitespaces() int {
	whitespaces := 0
	for i := chars.Length() - 1; i >= 0; i-- {
		if !unicode.IsSpace(chars.Get(i)) {
			break
		}
		whitespaces++
	}
	return whitespaces
}

func (chars *Chars) ToString() string {
	if runes := chars.optionalRunes(); runes != nil {
		return string(runes)
	}
	return unsafe.String(unsafe.SliceData(chars.slice), len(chars.slice))
}

func (chars *Chars) ToRunes() []rune {
	if runes := chars.optionalRunes(); runes != nil {
		return runes
	}
	bytes := chars.slice
	runes := make([]rune, len(bytes))
	for idx, b := range bytes {
		runes[idx] = rune(b)
	}
	return runes
}

// CopyRunes copies the codepoints starting at the given grapheme index into
// dest
func (chars *Chars) CopyRunes(dest []rune, from int) {
	if runes := chars.optionalRunes(); runes != nil {
		copy(dest, runes[from:])
		return
	}
	for idx, b := range chars.slice[from:][:len(dest)] {
		dest[idx] = rune(b)
	}
}
