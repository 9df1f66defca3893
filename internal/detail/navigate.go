// Package detail implements the event-detail panel's text model:
// vim-style word and line motions over a fixed slice of rendered lines,
// visual-selection extraction, and the cursor-following scroll window.
// Positions are rune-indexed, never byte-indexed.
package detail

import "unicode"

// Position is a (line, column) cursor into a line slice.
type Position struct {
	Line int
	Col  int
}

// Characters fall into three disjoint classes: word characters
// (alphanumeric or underscore), whitespace, and everything else.
// A motion stops where the class changes.
func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// NextWord advances to the start of the next word, wrapping onto
// following lines. At the end of the document it clamps to the final
// character.
func NextWord(lines []string, pos Position) Position {
	if len(lines) == 0 {
		return Position{}
	}
	line := min(pos.Line, len(lines)-1)
	col := pos.Col

	for {
		runes := []rune(lines[line])

		if len(runes) == 0 || col >= len(runes) {
			if line+1 >= len(lines) {
				return Position{Line: line, Col: 0}
			}
			line++
			if first, ok := firstNonWhitespace([]rune(lines[line])); ok {
				return Position{Line: line, Col: first}
			}
			col = 0
			continue
		}

		if next, ok := nextWordStart(runes, col); ok {
			return Position{Line: line, Col: next}
		}

		if line+1 >= len(lines) {
			return Position{Line: line, Col: lastCharIndex(runes)}
		}
		line++
		if first, ok := firstNonWhitespace([]rune(lines[line])); ok {
			return Position{Line: line, Col: first}
		}
		col = 0
	}
}

// WordEnd advances to the last character of the current or next word.
func WordEnd(lines []string, pos Position) Position {
	if len(lines) == 0 {
		return Position{}
	}
	line := min(pos.Line, len(lines)-1)
	col := pos.Col

	for {
		runes := []rune(lines[line])

		if len(runes) == 0 || col >= len(runes) {
			if line+1 >= len(lines) {
				return Position{Line: line, Col: 0}
			}
			line++
			col = 0
			continue
		}

		if end, ok := wordEnd(runes, col); ok {
			return Position{Line: line, Col: end}
		}

		if line+1 >= len(lines) {
			return Position{Line: line, Col: lastCharIndex(runes)}
		}
		line++
		col = 0
	}
}

// PrevWord moves back to the start of the previous word, wrapping onto
// earlier lines and clamping at the top of the document.
func PrevWord(lines []string, pos Position) Position {
	if len(lines) == 0 {
		return Position{}
	}
	line := min(pos.Line, len(lines)-1)
	col := pos.Col

	for {
		runes := []rune(lines[line])
		safeCol := 0
		if len(runes) > 0 {
			safeCol = min(col, len(runes))
		}

		if prev, ok := prevWordStart(runes, safeCol); ok {
			return Position{Line: line, Col: prev}
		}

		if line == 0 {
			return Position{}
		}
		line--
		col = len([]rune(lines[line]))
	}
}

// LastCharIndex returns the rune index of the final character, 0 for
// an empty line.
func LastCharIndex(text string) int {
	return lastCharIndex([]rune(text))
}

// FirstNonWhitespace returns the column of the first non-blank
// character, 0 when the line is entirely blank.
func FirstNonWhitespace(text string) int {
	if col, ok := firstNonWhitespace([]rune(text)); ok {
		return col
	}
	return 0
}

func lastCharIndex(runes []rune) int {
	if len(runes) == 0 {
		return 0
	}
	return len(runes) - 1
}

func firstNonWhitespace(runes []rune) (int, bool) {
	for i, r := range runes {
		if !unicode.IsSpace(r) {
			return i, true
		}
	}
	return 0, false
}

func nextWordStart(runes []rune, col int) (int, bool) {
	if len(runes) == 0 {
		return 0, false
	}
	pos := min(col, len(runes)-1)

	switch {
	case unicode.IsSpace(runes[pos]):
		for pos < len(runes) && unicode.IsSpace(runes[pos]) {
			pos++
		}
	case isWordChar(runes[pos]):
		for pos < len(runes) && isWordChar(runes[pos]) {
			pos++
		}
	default:
		for pos < len(runes) && !unicode.IsSpace(runes[pos]) && !isWordChar(runes[pos]) {
			pos++
		}
	}
	for pos < len(runes) && unicode.IsSpace(runes[pos]) {
		pos++
	}
	if pos < len(runes) {
		return pos, true
	}
	return 0, false
}

func wordEnd(runes []rune, col int) (int, bool) {
	if len(runes) == 0 {
		return 0, false
	}
	pos := col + 1
	for pos < len(runes) && unicode.IsSpace(runes[pos]) {
		pos++
	}
	if pos >= len(runes) {
		return 0, false
	}
	wantWord := isWordChar(runes[pos])
	for pos < len(runes) && !unicode.IsSpace(runes[pos]) && isWordChar(runes[pos]) == wantWord {
		pos++
	}
	end := pos - 1
	if end > len(runes)-1 {
		end = len(runes) - 1
	}
	return end, true
}

func prevWordStart(runes []rune, col int) (int, bool) {
	if len(runes) == 0 || col == 0 {
		return 0, false
	}
	pos := min(col, len(runes)) - 1

	for pos > 0 && unicode.IsSpace(runes[pos]) {
		pos--
	}
	if unicode.IsSpace(runes[pos]) {
		return 0, false
	}
	wantWord := isWordChar(runes[pos])
	for pos > 0 {
		prev := runes[pos-1]
		if unicode.IsSpace(prev) || isWordChar(prev) != wantWord {
			break
		}
		pos--
	}
	return pos, true
}
