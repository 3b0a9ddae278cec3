package csi

import (
	"strconv"
	"strings"

	"github.com/hnimtadd/escapes/ansi"
)

// Command is a single CSI sequence: CSI, an optional private marker,
// ';'-separated numeric parameters, and a final letter.
type Command struct {
	// Private is the private-use marker byte ('?' for DEC modes),
	// or zero for a standard sequence.
	Private byte
	Params  []int
	Final   byte
}

func (c Command) String() string {
	var sb strings.Builder
	sb.WriteString(ansi.CSI)
	if c.Private != 0 {
		sb.WriteByte(c.Private)
	}
	for i, p := range c.Params {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.Itoa(p))
	}
	sb.WriteByte(c.Final)
	return sb.String()
}
