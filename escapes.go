/*
Package escapes provides named constructors for ANSI terminal escape
sequences: cursor movement, line and screen erasure, scrolling,
hyperlinks, images, and friends.

Every operation is a pure function or variable producing a string
ready to be written to the terminal, typically os.Stdout:

	fmt.Print(escapes.CursorHide)
	fmt.Println("working...")
	fmt.Print(escapes.EraseLines(1))
	fmt.Print(escapes.CursorShow)

The package holds no state and performs no I/O. It also performs no
capability detection: the caller is responsible for knowing whether
the target terminal understands a given sequence.
*/
package escapes
