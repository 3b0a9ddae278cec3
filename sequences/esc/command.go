package esc

import (
	"strings"

	"github.com/hnimtadd/escapes/ansi"
)

// Command is a plain escape sequence: ESC, optional intermediate
// bytes, and a final byte.
type Command struct {
	Intermediates []uint8
	Final         uint8
}

func (c Command) String() string {
	var sb strings.Builder
	sb.WriteString(ansi.ESC)
	sb.Write(c.Intermediates)
	sb.WriteByte(c.Final)
	return sb.String()
}
