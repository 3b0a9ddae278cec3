package escapes

import "regexp"

// pattern matches the escape sequences this package produces: CSI
// sequences (cursor, erase, scroll) and OSC sequences terminated by
// BEL or ESC \ (links, titles, images).
var pattern = regexp.MustCompile("\x1b\\[[0-9;?]*[a-zA-Z]|\x1b\\][^\x07\x1b]*(?:\x07|\x1b\\\\)|\x1bc")

// Strip removes ANSI escape sequences from a string, leaving only
// the printable text. Use it before measuring or matching output
// that may contain sequences.
func Strip(s string) string {
	return pattern.ReplaceAllString(s, "")
}
