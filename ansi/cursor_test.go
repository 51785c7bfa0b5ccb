package ansi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitch-kyle/term/ansi"
)

func TestCursorMovement(t *testing.T) {
	for _, tc := range []struct {
		name   string
		fn     func(...int) string
		letter string
	}{
		{"CursorUp", ansi.CursorUp, "A"},
		{"CursorDown", ansi.CursorDown, "B"},
		{"CursorForward", ansi.CursorForward, "C"},
		{"CursorBack", ansi.CursorBack, "D"},
		{"CursorNextLine", ansi.CursorNextLine, "E"},
		{"CursorPreviousLine", ansi.CursorPreviousLine, "F"},
		{"CursorColumn", ansi.CursorColumn, "G"},
		{"ScrollUp", ansi.ScrollUp, "S"},
		{"ScrollDown", ansi.ScrollDown, "T"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, "\x1b[1"+tc.letter, tc.fn(), "no argument defaults to 1")
			assert.Equal(t, tc.fn(1), tc.fn(), "no argument must equal an explicit 1")
			assert.Equal(t, "\x1b[7"+tc.letter, tc.fn(7))
			assert.Equal(t, "\x1b[-3"+tc.letter, tc.fn(-3), "counts pass through literally")
		})
	}
}

func TestCursorPosition(t *testing.T) {
	assert.Equal(t, "\x1b[5;10H", ansi.CursorPosition(5, 10))
	assert.Equal(t, "\x1b[1;1H", ansi.CursorPosition(1, 1))
	assert.Equal(t, "\x1b[24;80H", ansi.CursorPosition(24, 80))
}

func TestEraseInDisplay(t *testing.T) {
	// The no-argument default is 1 (clear to beginning of screen), not the
	// conventional 0. Kept as a deliberate quirk of this package's contract.
	assert.Equal(t, "\x1b[1J", ansi.EraseInDisplay())
	assert.Equal(t, ansi.EraseInDisplay(1), ansi.EraseInDisplay())

	assert.Equal(t, "\x1b[0J", ansi.EraseInDisplay(0))
	assert.Equal(t, "\x1b[2J", ansi.EraseInDisplay(2))
	assert.Equal(t, "\x1b[3J", ansi.EraseInDisplay(3))
}

func TestEraseInLine(t *testing.T) {
	assert.Equal(t, "\x1b[0K", ansi.EraseInLine(), "no argument defaults to 0")
	assert.Equal(t, ansi.EraseInLine(0), ansi.EraseInLine())
	assert.Equal(t, "\x1b[1K", ansi.EraseInLine(1))
	assert.Equal(t, "\x1b[2K", ansi.EraseInLine(2))
}

func TestClearSequences(t *testing.T) {
	assert.Equal(t, ansi.EraseInDisplay(2), ansi.ClearScreen)
	assert.Equal(t, ansi.EraseInLine(2), ansi.ClearLine)
	assert.Equal(t, ansi.EraseInLine(1), ansi.ClearLineLeft)
	assert.Equal(t, ansi.EraseInLine(0), ansi.ClearLineRight)
}

func TestFixedSequences(t *testing.T) {
	assert.Equal(t, "\x1b[s", ansi.CursorSave)
	assert.Equal(t, "\x1b[u", ansi.CursorRestore)
	assert.Equal(t, "\x1b[6n", ansi.DeviceStatusReport)
	assert.Equal(t, "\x1b[?25l", ansi.CursorHide)
	assert.Equal(t, "\x1b[?25h", ansi.CursorShow)
	assert.Equal(t, "\x1b[?1049h", ansi.ScreenSave)
	assert.Equal(t, "\x1b[?1049l", ansi.ScreenRestore)
}
