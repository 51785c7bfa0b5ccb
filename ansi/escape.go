package ansi

import "strconv"

// Escape sequence framing characters.
const (
	// Esc is the escape character that opens every sequence.
	Esc = "\x1b"

	// ST is the string terminator closing the string command classes
	// (OSC, DCS, SOS, PM, and APC payloads).
	ST = Esc + "\\"
)

// Escaped prefixes payload with the escape character. The payload is not
// validated; the caller is responsible for supplying a valid sub-sequence.
func Escaped(payload string) string { return Esc + payload }

// Class identifies one of the top-level ANSI command classes. Each class has
// a fixed one-byte introducer following the escape character; the string
// classes additionally close their payload with ST.
type Class byte

// The top-level ANSI command classes.
const (
	ControlSequence           Class = iota // CSI, ESC [
	OperatingSystemCommand                 // OSC, ESC ]
	DeviceControlString                    // DCS, ESC P
	StartOfString                          // SOS, ESC X
	PrivacyMessage                         // PM,  ESC ^
	ApplicationProgramCommand              // APC, ESC _
	SingleShiftTwo                         // SS2, ESC N
	SingleShiftThree                       // SS3, ESC O
)

var classIntros = [...]byte{'[', ']', 'P', 'X', '^', '_', 'N', 'O'}

var classNames = [...]string{"CSI", "OSC", "DCS", "SOS", "PM", "APC", "SS2", "SS3"}

// Terminated reports whether the class frames a string payload that must be
// closed by the string terminator.
func (cl Class) Terminated() bool {
	switch cl {
	case OperatingSystemCommand,
		DeviceControlString,
		StartOfString,
		PrivacyMessage,
		ApplicationProgramCommand:
		return true
	}
	return false
}

// Wrap frames payload with the class introducer and, for the string classes,
// the string terminator. Payload content is not validated.
func (cl Class) Wrap(payload string) string {
	s := Esc + string(classIntros[cl]) + payload
	if cl.Terminated() {
		s += ST
	}
	return s
}

func (cl Class) String() string {
	if int(cl) < len(classNames) {
		return classNames[cl]
	}
	return "Class(" + strconv.Itoa(int(cl)) + ")"
}

// CSI wraps payload in a control sequence introducer (ESC [); payload must
// carry its own final byte (the command letter).
func CSI(payload string) string { return ControlSequence.Wrap(payload) }

// OSC wraps payload in an operating system command (ESC ] ... ST).
func OSC(payload string) string { return OperatingSystemCommand.Wrap(payload) }

// DCS wraps payload in a device control string (ESC P ... ST).
func DCS(payload string) string { return DeviceControlString.Wrap(payload) }

// SOS wraps payload in a start-of-string sequence (ESC X ... ST).
func SOS(payload string) string { return StartOfString.Wrap(payload) }

// PM wraps payload in a privacy message (ESC ^ ... ST).
func PM(payload string) string { return PrivacyMessage.Wrap(payload) }

// APC wraps payload in an application program command (ESC _ ... ST).
func APC(payload string) string { return ApplicationProgramCommand.Wrap(payload) }

// SS2 prefixes payload with a single shift into the G2 character set.
func SS2(payload string) string { return SingleShiftTwo.Wrap(payload) }

// SS3 prefixes payload with a single shift into the G3 character set.
func SS3(payload string) string { return SingleShiftThree.Wrap(payload) }
