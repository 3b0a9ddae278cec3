package escapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorConstants(t *testing.T) {
	assert.Equal(t, "\x1b[1000D", CursorLeft)
	assert.Equal(t, "\x1b[s", CursorSavePosition)
	assert.Equal(t, "\x1b[u", CursorRestorePosition)
	assert.Equal(t, "\x1b[6n", CursorGetPosition)
	assert.Equal(t, "\x1b[E", CursorNextLine)
	assert.Equal(t, "\x1b[F", CursorPrevLine)
	assert.Equal(t, "\x1b[?25l", CursorHide)
	assert.Equal(t, "\x1b[?25h", CursorShow)
}

func TestCursorTo(t *testing.T) {
	assert.Equal(t, "\x1b[1;1H", CursorTo(0, 0))
	assert.Equal(t, "\x1b[6;3H", CursorTo(2, 5))

	// negative coordinates clamp to the origin
	assert.Equal(t, "\x1b[1;1H", CursorTo(-3, -1))
}

func TestCursorToColumn(t *testing.T) {
	assert.Equal(t, "\x1b[1G", CursorToColumn(0))
	assert.Equal(t, "\x1b[8G", CursorToColumn(7))
	assert.Equal(t, "\x1b[1G", CursorToColumn(-4))
}

func TestCursorMove(t *testing.T) {
	assert.Equal(t, "", CursorMove(0, 0))
	assert.Equal(t, "\x1b[5C", CursorMove(5, 0))
	assert.Equal(t, "\x1b[5D", CursorMove(-5, 0))
	assert.Equal(t, "\x1b[3B", CursorMove(0, 3))
	assert.Equal(t, "\x1b[3A", CursorMove(0, -3))

	// x before y, matching the absolute-move parameter order
	assert.Equal(t, "\x1b[2C\x1b[4A", CursorMove(2, -4))
	assert.Equal(t, "\x1b[1D\x1b[1B", CursorMove(-1, 1))
}

func TestCursorRelativeSteps(t *testing.T) {
	assert.Equal(t, "\x1b[1A", CursorUp(1))
	assert.Equal(t, "\x1b[23A", CursorUp(23))
	assert.Equal(t, "\x1b[1B", CursorDown(1))
	assert.Equal(t, "\x1b[23B", CursorDown(23))
	assert.Equal(t, "\x1b[1C", CursorForward(1))
	assert.Equal(t, "\x1b[23C", CursorForward(23))
	assert.Equal(t, "\x1b[1D", CursorBackward(1))
	assert.Equal(t, "\x1b[23D", CursorBackward(23))
}

func TestCursorRelativeClamp(t *testing.T) {
	// repetition counts of zero or below produce no sequence at all
	assert.Equal(t, "", CursorUp(0))
	assert.Equal(t, "", CursorDown(0))
	assert.Equal(t, "", CursorForward(-1))
	assert.Equal(t, "", CursorBackward(-23))
}

func TestCursorPurity(t *testing.T) {
	assert.Equal(t, CursorTo(3, 7), CursorTo(3, 7))
	assert.Equal(t, CursorMove(-2, 9), CursorMove(-2, 9))
}
