package escapes

import (
	"strings"

	dw "github.com/mattn/go-runewidth"
)

// Width reports the display width of the widest line in s, counting
// East Asian wide runes as two cells and escape sequences as zero.
func Width(s string) int {
	width := 0
	for _, line := range strings.Split(Strip(s), "\n") {
		width = max(width, dw.StringWidth(line))
	}
	return width
}

// Height reports the number of terminal rows s occupies when printed
// on a terminal columns wide: hard line breaks plus the wrapping of
// lines wider than the terminal. The result pairs with EraseLines to
// erase previously printed output.
//
// columns <= 0 counts hard line breaks only.
func Height(s string, columns int) int {
	rows := 0
	for _, line := range strings.Split(Strip(s), "\n") {
		rows++
		if columns <= 0 {
			continue
		}
		if w := dw.StringWidth(line); w > columns {
			rows += (w - 1) / columns
		}
	}
	return rows
}
