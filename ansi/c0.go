package ansi

type c0 struct {
	BEL uint8 // BEL is the bell character (Caret: ^G, Char: \a).
	BS  uint8 // BS is the backspace character (Caret: ^H, Char: \b).
	CR  uint8 // CR is the carriage return character (Caret: ^M, Char: \r).
	ESC uint8 // ESC is the Escape character (Caret: ^[).
	HT  uint8 // HT is the horizontal tab character (Caret: ^I, Char: \t).
	LF  uint8 // LF is the line feed character (Caret: ^J, Char: \n).
}

// C0 (7-bit) control characters from ANSI.
//
// This is not complete, only the control characters a sequence
// producer emits are listed here.
//
// see chapter 3 for detail information about control characters
// of VT100, which is compatiable with the ANSI standard:
// https://vt100.net/docs/vt100-ug/chapter3.html#S3.2
var C0 = c0{
	BEL: 0x07,
	BS:  0x08,
	CR:  0x0D,
	ESC: 0x1b,
	HT:  0x09,
	LF:  0x0A,
}

// Introducers and terminators shared by every control sequence this
// module renders. Keeping them in one place is what guarantees the
// output is always a well-formed ECMA-48 sequence.
const (
	ESC = "\x1b"

	// CSI is the Control Sequence Introducer, prefixing most
	// cursor and erase commands.
	CSI = ESC + "["

	// OSC is the Operating System Command introducer, prefixing
	// commands like hyperlinks and window titles.
	OSC = ESC + "]"

	// ST is the String Terminator ending an OSC sequence. BEL is
	// accepted by terminals as an alternative.
	ST = ESC + "\\"

	BEL = "\x07"
)
