package ansi

import "fmt"

// table is a map of ANSI control characters to their names.
// any unsupported ansi characters will have hex value key.
var table = map[uint8]string{
	0x00:   "NUL", // Null
	C0.BEL: "BEL", // Bell
	C0.BS:  "BS",  // Backspace
	C0.HT:  "HT",  // Horizontal Tab
	C0.LF:  "LF",  // Line Feed
	0x0B:   "VT",  // Vertical Tab
	0x0C:   "FF",  // Form Feed
	C0.CR:  "CR",  // Carriage Return
	C0.ESC: "ESC", // Escape
	0x7F:   "DEL", // Delete
}

// String renders a control character human-readable, for callers
// inspecting raw sequence bytes in logs or test failures.
func String(val uint8) string {
	if name, ok := table[val]; ok {
		return fmt.Sprintf("%s (0x%02X) (%q)", name, val, rune(val))
	}
	return fmt.Sprintf("0x%02X (%q)", val, rune(val))
}
