package escapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	assert.Equal(t, "plain", Strip("plain"))
	assert.Equal(t, "hidden", Strip(CursorHide+"hidden"+CursorShow))
	assert.Equal(t, "", Strip(EraseLines(3)))
	assert.Equal(t, "text", Strip(Link("http://example.com", "text")))
	assert.Equal(t, "ab", Strip("a"+ClearScreen+"b"))
	assert.Equal(t, "ab", Strip("a"+SetWindowTitle("t")+"b"))
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 0, Width(""))
	assert.Equal(t, 5, Width("hello"))
	assert.Equal(t, 5, Width("hi\nhello\nhey"))

	// wide runes take two cells
	assert.Equal(t, 4, Width("世界"))

	// escape sequences take none
	assert.Equal(t, 5, Width(CursorHide+"hello"+CursorShow))
}

func TestHeight(t *testing.T) {
	assert.Equal(t, 1, Height("hello", 80))
	assert.Equal(t, 2, Height("Hello, World!\nHello, Terminal!", 80))

	// lines wider than the terminal wrap
	assert.Equal(t, 1, Height("aaaaaaaaaa", 10))
	assert.Equal(t, 2, Height("aaaaaaaaaas", 10))
	assert.Equal(t, 3, Height("aaaaa\naaaaaaaaaaaa", 10))

	// wide runes wrap sooner
	assert.Equal(t, 2, Height("世界世界世界", 10))

	// columns <= 0 counts hard line breaks only
	assert.Equal(t, 3, Height("a\nb\nc", 0))

	// sequences do not add width
	assert.Equal(t, 1, Height(CursorHide+"aaaaaaaaaa"+CursorShow, 10))
}
