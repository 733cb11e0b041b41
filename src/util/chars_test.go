package util

import "testing"

func TestToCharsAscii(t *testing.T) {
	chars := ToChars([]byte("foobar"))
	if !chars.IsBytes() || chars.Length() != 6 {
		t.Error()
	}
	if chars.Get(3) != 'b' || chars.ByteOffset(3) != 3 {
		t.Error()
	}
}

func TestCharsLength(t *testing.T) {
	chars := ToChars([]byte("\tabc한글  "))
	if chars.IsBytes() || chars.Length() != 8 || chars.TrimLength() != 5 {
		t.Error()
	}
}

func TestCharsToString(t *testing.T) {
	text := "\tabc한글  "
	chars := ToChars([]byte(text))
	if chars.ToString() != text {
		t.Error()
	}
}

func TestGraphemeClusters(t *testing.T) {
	// The combining mark belongs to the first cluster; only the base
	// codepoint is stored
	chars := ToChars([]byte("a\u0308bc"))
	if chars.Length() != 3 {
		t.Errorf("Invalid length: %d", chars.Length())
	}
	if chars.Get(0) != 'a' || chars.Get(1) != 'b' || chars.Get(2) != 'c' {
		t.Errorf("Invalid codepoints: %q %q %q", chars.Get(0), chars.Get(1), chars.Get(2))
	}
	if chars.ByteOffset(0) != 0 || chars.ByteOffset(1) != 3 || chars.ByteOffset(2) != 4 {
		t.Errorf("Invalid byte offsets: %d %d %d",
			chars.ByteOffset(0), chars.ByteOffset(1), chars.ByteOffset(2))
	}
}

func TestGraphemeClustersEmoji(t *testing.T) {
	// A multi-codepoint emoji sequence is a single grapheme
	chars := ToChars([]byte("x\U0001F468\u200D\U0001F469y"))
	if chars.Length() != 3 {
		t.Errorf("Invalid length: %d", chars.Length())
	}
	if chars.Get(0) != 'x' || chars.Get(2) != 'y' {
		t.Error()
	}
}

func TestCopyRunes(t *testing.T) {
	chars := ToChars([]byte("abcdef"))
	dest := make([]rune, 3)
	chars.CopyRunes(dest, 2)
	if string(dest) != "cde" {
		t.Errorf("Invalid copy: %q", string(dest))
	}
}

func TestTrimWhitespaces(t *testing.T) {
	chars := ToChars([]byte("  abc \t"))
	if chars.LeadingWhitespaces() != 2 {
		t.Error()
	}
	if chars.TrailingWhitespaces() != 2 {
		t.Error()
	}
}
