package ansi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Param is a single SGR parameter: either one numeric code, or a pre-joined
// compound of several codes such as NotBold's "21;22". Compounds pass
// through the encoder verbatim; they are never renormalized.
type Param string

// Code returns the Param for a single numeric SGR code.
func Code(n int) Param { return Param(strconv.Itoa(n)) }

// SetGraphicRendition encodes an SGR control sequence (CSI <params> m) from
// the given parameters, joined in caller order with no sorting or
// deduplication. With no parameters it encodes an explicit reset, CSI 0 m,
// never an empty parameter list.
func SetGraphicRendition(params ...Param) string {
	if len(params) == 0 {
		return CSI("0m")
	}
	var sb strings.Builder
	sb.WriteString(string(params[0]))
	for _, p := range params[1:] {
		sb.WriteByte(';')
		sb.WriteString(string(p))
	}
	sb.WriteByte('m')
	return CSI(sb.String())
}

// Named SGR style parameters.
const (
	Reset      Param = "0"
	Bold       Param = "1"
	Faint      Param = "2"
	Italic     Param = "3"
	Underlined Param = "4"
	Blink      Param = "5"
	FastBlink  Param = "6"
	Inverse    Param = "7"
	Conceal    Param = "8"
	CrossedOut Param = "9"

	// PrimaryFont reselects the primary font; see Font for the alternates.
	PrimaryFont Param = "10"

	Fraktur Param = "20"

	// NotBold carries two codes: 21 alone is double-underline on some
	// terminals, so 22 rides along to cancel both bold and faint.
	NotBold       Param = "21;22"
	NotFaint      Param = "22"
	NotItalic     Param = "23"
	NotUnderlined Param = "24"
	NotBlink      Param = "25"
	NotInverse    Param = "27"
	Reveal        Param = "28"
	NotCrossedOut Param = "29"

	DefaultForeground Param = "39"
	DefaultBackground Param = "49"

	Framed               Param = "51"
	Encircled            Param = "52"
	Overlined            Param = "53"
	NotFramedOrEncircled Param = "54"
	NotOverlined         Param = "55"
)

// Style aliases.
const (
	Strikethrough    = CrossedOut
	NotConceal       = Reveal
	NotStrikethrough = NotCrossedOut
)

// ErrFontIndex reports a font index outside [0, 9].
var ErrFontIndex = errors.New("font index out of range [0, 9]")

// Font encodes selection of font slot n as an SGR sequence: 0 selects the
// primary font, 1 through 9 the alternate fonts (codes 10-19). Indexes
// outside [0, 9] fail with ErrFontIndex before any sequence is produced.
func Font(n int) (string, error) {
	if n < 0 || n > 9 {
		return "", fmt.Errorf("%w: %d", ErrFontIndex, n)
	}
	return SetGraphicRendition(Code(10 + n)), nil
}
