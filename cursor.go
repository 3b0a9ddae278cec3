package escapes

import (
	"strings"

	"github.com/hnimtadd/escapes/sequences/csi"
)

var (
	// CursorLeft moves the cursor to the left side of the screen.
	CursorLeft = csi.Command{Params: []int{1000}, Final: 'D'}.String()

	// CursorSavePosition saves the cursor position.
	CursorSavePosition = csi.Command{Final: 's'}.String()

	// CursorRestorePosition restores the saved cursor position.
	CursorRestorePosition = csi.Command{Final: 'u'}.String()

	// CursorGetPosition asks the terminal to report the cursor
	// position on its input stream. Reading the reply is up to the
	// caller.
	CursorGetPosition = csi.Command{Params: []int{6}, Final: 'n'}.String()

	// CursorNextLine moves the cursor to the next line.
	CursorNextLine = csi.Command{Final: 'E'}.String()

	// CursorPrevLine moves the cursor to the previous line.
	CursorPrevLine = csi.Command{Final: 'F'}.String()

	// CursorHide hides the cursor.
	CursorHide = csi.Command{Private: '?', Params: []int{25}, Final: 'l'}.String()

	// CursorShow shows the cursor.
	CursorShow = csi.Command{Private: '?', Params: []int{25}, Final: 'h'}.String()
)

// CursorTo sets the absolute position of the cursor. x=0 y=0 is the
// top left of the screen. Coordinates are 0-based in this API and
// 1-based on the wire; negative values clamp to 0.
func CursorTo(x, y int) string {
	return csi.Command{Params: []int{max(y, 0) + 1, max(x, 0) + 1}, Final: 'H'}.String()
}

// CursorToColumn sets the absolute column of the cursor on the
// current row. x is 0-based; negative values clamp to 0.
func CursorToColumn(x int) string {
	return csi.Command{Params: []int{max(x, 0) + 1}, Final: 'G'}.String()
}

// CursorMove sets the position of the cursor relative to its current
// position. Positive dx moves right, negative left; positive dy moves
// down, negative up. A zero component contributes nothing, so
// CursorMove(0, 0) is the empty string.
func CursorMove(dx, dy int) string {
	var sb strings.Builder
	switch {
	case dx > 0:
		sb.WriteString(CursorForward(dx))
	case dx < 0:
		sb.WriteString(CursorBackward(-dx))
	}
	switch {
	case dy > 0:
		sb.WriteString(CursorDown(dy))
	case dy < 0:
		sb.WriteString(CursorUp(-dy))
	}
	return sb.String()
}

// CursorUp moves the cursor up n rows. n <= 0 is a no-op.
func CursorUp(n int) string {
	if n <= 0 {
		return ""
	}
	return csi.Command{Params: []int{n}, Final: 'A'}.String()
}

// CursorDown moves the cursor down n rows. n <= 0 is a no-op.
func CursorDown(n int) string {
	if n <= 0 {
		return ""
	}
	return csi.Command{Params: []int{n}, Final: 'B'}.String()
}

// CursorForward moves the cursor right n columns. n <= 0 is a no-op.
func CursorForward(n int) string {
	if n <= 0 {
		return ""
	}
	return csi.Command{Params: []int{n}, Final: 'C'}.String()
}

// CursorBackward moves the cursor left n columns. n <= 0 is a no-op.
func CursorBackward(n int) string {
	if n <= 0 {
		return ""
	}
	return csi.Command{Params: []int{n}, Final: 'D'}.String()
}
