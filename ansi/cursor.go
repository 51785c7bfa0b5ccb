package ansi

import "strconv"

// count resolves an optional trailing count argument against a command's
// default. Extra arguments beyond the first are ignored.
func count(def int, n []int) int {
	if len(n) == 0 {
		return def
	}
	return n[0]
}

// ctl formats a counted control sequence: CSI <count> <letter>. Counts are
// passed through literally, negative values included.
func ctl(letter byte, def int, n []int) string {
	return CSI(strconv.Itoa(count(def, n)) + string(letter))
}

// CursorUp moves the cursor up n lines (default 1).
func CursorUp(n ...int) string { return ctl('A', 1, n) }

// CursorDown moves the cursor down n lines (default 1).
func CursorDown(n ...int) string { return ctl('B', 1, n) }

// CursorForward moves the cursor forward n columns (default 1).
func CursorForward(n ...int) string { return ctl('C', 1, n) }

// CursorBack moves the cursor back n columns (default 1).
func CursorBack(n ...int) string { return ctl('D', 1, n) }

// CursorNextLine moves the cursor to the start of the line n lines down
// (default 1).
func CursorNextLine(n ...int) string { return ctl('E', 1, n) }

// CursorPreviousLine moves the cursor to the start of the line n lines up
// (default 1).
func CursorPreviousLine(n ...int) string { return ctl('F', 1, n) }

// CursorColumn moves the cursor to column n of the current line (default 1).
func CursorColumn(n ...int) string { return ctl('G', 1, n) }

// CursorPosition moves the cursor to the given 1-based row and column.
func CursorPosition(row, col int) string {
	return CSI(strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H")
}

// EraseInDisplay erases part of the screen: 0 erases from the cursor to the
// end of the screen, 1 from the beginning of the screen to the cursor, 2 the
// entire screen, 3 the entire screen plus scrollback.
//
// With no argument the erase parameter is 1, clearing to the beginning of
// the screen. This diverges from the conventional ANSI default of 0 and is a
// deliberate, kept contract of this package.
func EraseInDisplay(n ...int) string { return ctl('J', 1, n) }

// EraseInLine erases part of the current line: 0 (the default) erases from
// the cursor to the end of the line, 1 from the beginning of the line to the
// cursor, 2 the entire line.
func EraseInLine(n ...int) string { return ctl('K', 0, n) }

// ScrollUp scrolls the display up n lines (default 1), bringing new lines in
// at the bottom.
func ScrollUp(n ...int) string { return ctl('S', 1, n) }

// ScrollDown scrolls the display down n lines (default 1), bringing previous
// lines back into view at the top.
func ScrollDown(n ...int) string { return ctl('T', 1, n) }

// Pre-built erase sequences.
var (
	// ClearScreen erases the entire screen.
	ClearScreen = EraseInDisplay(2)

	// ClearLine erases the entire current line.
	ClearLine = EraseInLine(2)

	// ClearLineLeft erases from the beginning of the line to the cursor.
	ClearLineLeft = EraseInLine(1)

	// ClearLineRight erases from the cursor to the end of the line.
	ClearLineRight = EraseInLine(0)
)

// Fixed zero-argument control sequences.
var (
	// CursorSave saves the cursor position.
	CursorSave = CSI("s")

	// CursorRestore restores the cursor to the last saved position.
	CursorRestore = CSI("u")

	// DeviceStatusReport asks the terminal to report the cursor position.
	DeviceStatusReport = CSI("6n")

	// CursorHide and CursorShow toggle cursor visibility (DECTCEM).
	CursorHide = CSI("?25l")
	CursorShow = CSI("?25h")

	// ScreenSave and ScreenRestore switch to and from the alternate screen
	// buffer.
	ScreenSave    = CSI("?1049h")
	ScreenRestore = CSI("?1049l")
)
