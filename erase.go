package escapes

import (
	"strings"

	"github.com/hnimtadd/escapes/sequences/csi"
)

var (
	// EraseEndLine erases from the cursor to the end of the current
	// line.
	EraseEndLine = csi.Command{Final: 'K'}.String()

	// EraseStartLine erases from the cursor to the start of the
	// current line.
	EraseStartLine = csi.Command{Params: []int{1}, Final: 'K'}.String()

	// EraseLine erases the entire current line.
	EraseLine = csi.Command{Params: []int{2}, Final: 'K'}.String()

	// EraseDown erases the screen from the current line down to the
	// bottom of the screen.
	EraseDown = csi.Command{Final: 'J'}.String()

	// EraseUp erases the screen from the current line up to the top
	// of the screen.
	EraseUp = csi.Command{Params: []int{1}, Final: 'J'}.String()

	// EraseScreen erases the whole screen and moves the cursor to
	// the top left.
	EraseScreen = csi.Command{Params: []int{2}, Final: 'J'}.String()
)

// EraseLines erases the current line and the n-1 lines above it,
// leaving the cursor at the left side of the topmost erased line.
// n <= 0 is a no-op.
func EraseLines(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(CursorUp(1))
		}
		sb.WriteString(CursorLeft)
		sb.WriteString(EraseEndLine)
	}
	return sb.String()
}
