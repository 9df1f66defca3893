package detail

// Selection is an inclusive visual range: an anchor set when visual
// mode was entered and the live cursor. Either end may come first.
type Selection struct {
	Anchor Position
	Cursor Position
}

// Normalize orders the endpoints so Start never follows End, regardless
// of which direction the selection was dragged.
func (s Selection) Normalize() (start, end Position) {
	if s.Anchor.Line < s.Cursor.Line ||
		(s.Anchor.Line == s.Cursor.Line && s.Anchor.Col <= s.Cursor.Col) {
		return s.Anchor, s.Cursor
	}
	return s.Cursor, s.Anchor
}

// Contains reports whether a position falls inside the selection.
func (s Selection) Contains(pos Position) bool {
	start, end := s.Normalize()
	if pos.Line < start.Line || pos.Line > end.Line {
		return false
	}
	if pos.Line == start.Line && pos.Col < start.Col {
		return false
	}
	if pos.Line == end.Line && pos.Col > end.Col {
		return false
	}
	return true
}

// Extract returns the selected text, both columns inclusive, with a
// line break inserted at every line boundary the selection crosses.
func (s Selection) Extract(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	start, end := s.Normalize()
	lastLine := end.Line
	if lastLine > len(lines)-1 {
		lastLine = len(lines) - 1
	}

	var out []rune
	for lineIdx := start.Line; lineIdx <= lastLine; lineIdx++ {
		if lineIdx < 0 || lineIdx >= len(lines) {
			continue
		}
		runes := []rune(lines[lineIdx])
		switch {
		case lineIdx == start.Line && lineIdx == end.Line:
			from := min(start.Col, len(runes))
			to := min(end.Col+1, len(runes))
			out = append(out, runes[from:to]...)
		case lineIdx == start.Line:
			from := min(start.Col, len(runes))
			out = append(out, runes[from:]...)
			out = append(out, '\n')
		case lineIdx == end.Line:
			to := min(end.Col+1, len(runes))
			out = append(out, runes[:to]...)
		default:
			out = append(out, runes...)
			out = append(out, '\n')
		}
	}
	return string(out)
}
