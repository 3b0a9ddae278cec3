package osc

import (
	"strconv"
	"strings"

	"github.com/hnimtadd/escapes/ansi"
)

// Terminator ends an OSC sequence. Both forms are valid per
// ECMA-48; BEL is the more widely recognized of the two.
type Terminator int

const (
	TerminatorBEL Terminator = iota
	TerminatorST
)

func (t Terminator) String() string {
	if t == TerminatorST {
		return ansi.ST
	}
	return ansi.BEL
}

// Command is a single OSC sequence: OSC, a numeric selector,
// ';'-separated string parameters, and a terminator.
//
// Parameters are inserted verbatim. The caller is responsible for
// keeping control characters out of them.
type Command struct {
	Number     int
	Params     []string
	Terminator Terminator
}

func (c Command) String() string {
	var sb strings.Builder
	sb.WriteString(ansi.OSC)
	sb.WriteString(strconv.Itoa(c.Number))
	for _, p := range c.Params {
		sb.WriteByte(';')
		sb.WriteString(p)
	}
	sb.WriteString(c.Terminator.String())
	return sb.String()
}
