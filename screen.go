package escapes

import (
	"github.com/hnimtadd/escapes/ansi"
	"github.com/hnimtadd/escapes/sequences/csi"
	"github.com/hnimtadd/escapes/sequences/esc"
)

var (
	// ScrollUp scrolls the display up one line.
	ScrollUp = csi.Command{Final: 'S'}.String()

	// ScrollDown scrolls the display down one line.
	ScrollDown = csi.Command{Final: 'T'}.String()

	// ResetScrollRegion clears the scroll margins set by
	// SetScrollRegion, restoring the full screen as the scroll
	// region.
	ResetScrollRegion = csi.Command{Final: 'r'}.String()

	// ClearScreen resets the terminal to its initial state (RIS).
	ClearScreen = esc.Command{Final: 'c'}.String()

	// ClearTerminal erases the screen and the scrollback buffer,
	// then moves the cursor to the top left.
	ClearTerminal = EraseScreen +
		csi.Command{Params: []int{3}, Final: 'J'}.String() +
		csi.Command{Final: 'H'}.String()

	// EnterAlternativeScreen switches to the alternative screen
	// buffer: https://terminalguide.namepad.de/mode/p47/
	EnterAlternativeScreen = csi.Command{Private: '?', Params: []int{1049}, Final: 'h'}.String()

	// ExitAlternativeScreen switches back to the main screen buffer.
	ExitAlternativeScreen = csi.Command{Private: '?', Params: []int{1049}, Final: 'l'}.String()

	// Beep outputs a beeping sound.
	Beep = ansi.BEL
)

// SetScrollRegion sets the scroll margins to the given rows
// (DECSTBM). Rows are 1-based, top to bottom; values below 1 clamp
// to 1.
func SetScrollRegion(top, bottom int) string {
	return csi.Command{Params: []int{max(top, 1), max(bottom, 1)}, Final: 'r'}.String()
}
