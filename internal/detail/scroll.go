package detail

// ScrollOffset computes the first visible line of the detail window.
// The window follows the cursor: forward just far enough to keep it on
// the last visible row, backward immediately when the cursor moves
// above the window, and never past making the final line the bottom row.
func ScrollOffset(cursorLine, current, visible, total int) int {
	if visible <= 0 || total <= 0 {
		return 0
	}
	if cursorLine > total-1 {
		cursorLine = total - 1
	}

	offset := current
	if cursorLine >= current+visible {
		offset = cursorLine - visible + 1
	} else if cursorLine < current {
		offset = cursorLine
	}

	if maxOffset := total - visible; offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
