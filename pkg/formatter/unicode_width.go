package formatter

import (
	"strings"
	"unicode"
)

// RuneWidth returns the display width of a rune.
// ASCII characters have width 1, CJK characters have width 2.
func RuneWidth(r rune) int {
	if r == '\t' {
		return 1
	}

	if r < 128 {
		return 1
	}

	if unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hangul, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) {
		return 2
	}

	return 1
}

// StringWidth returns the display width of a string
func StringWidth(s string) int {
	width := 0
	for _, r := range s {
		width += RuneWidth(r)
	}
	return width
}

// TruncateToWidth shortens a string to the given display width,
// appending ".." when anything was cut
func TruncateToWidth(s string, maxWidth int) string {
	if StringWidth(s) <= maxWidth {
		return s
	}

	truncated := ""
	currentWidth := 0
	for _, r := range s {
		charWidth := RuneWidth(r)
		if currentWidth+charWidth > maxWidth-2 {
			break
		}
		truncated += string(r)
		currentWidth += charWidth
	}
	return truncated + ".."
}

// PadToWidth right-pads a string with spaces to the given display width
func PadToWidth(s string, width int) string {
	padding := width - StringWidth(s)
	if padding <= 0 {
		return s
	}
	return s + strings.Repeat(" ", padding)
}
