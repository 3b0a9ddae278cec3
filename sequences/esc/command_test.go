package esc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandString(t *testing.T) {
	assert.Equal(t, "\x1bc", Command{Final: 'c'}.String())
	assert.Equal(t, "\x1b7", Command{Final: '7'}.String())
	assert.Equal(t, "\x1b#8", Command{Intermediates: []uint8{'#'}, Final: '8'}.String())
}
