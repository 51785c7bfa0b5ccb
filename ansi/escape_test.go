package ansi_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitch-kyle/term/ansi"
)

func TestEscaped(t *testing.T) {
	assert.Equal(t, "\x1b[5A", ansi.Escaped("[5A"))
	assert.Equal(t, "\x1b", ansi.Escaped(""))
}

func TestClass_Wrap(t *testing.T) {
	for _, tc := range []struct {
		class   ansi.Class
		payload string
		expect  string
	}{
		{ansi.ControlSequence, "5A", "\x1b[5A"},
		{ansi.ControlSequence, "", "\x1b["},
		{ansi.OperatingSystemCommand, "0;title", "\x1b]0;title\x1b\\"},
		{ansi.DeviceControlString, "1$r0m", "\x1bP1$r0m\x1b\\"},
		{ansi.StartOfString, "payload", "\x1bXpayload\x1b\\"},
		{ansi.PrivacyMessage, "secret", "\x1b^secret\x1b\\"},
		{ansi.ApplicationProgramCommand, "cmd", "\x1b_cmd\x1b\\"},
		{ansi.SingleShiftTwo, "A", "\x1bNA"},
		{ansi.SingleShiftThree, "P", "\x1bOP"},
	} {
		t.Run(tc.class.String(), func(t *testing.T) {
			got := tc.class.Wrap(tc.payload)
			assert.Equal(t, tc.expect, got)
			assert.True(t, strings.HasPrefix(got, ansi.Esc), "must start with the escape character")
			if tc.class.Terminated() {
				assert.True(t, strings.HasSuffix(got, ansi.ST), "string classes must end with ST")
			}
		})
	}
}

func TestClass_Terminated(t *testing.T) {
	terminated := map[ansi.Class]bool{
		ansi.OperatingSystemCommand:    true,
		ansi.DeviceControlString:       true,
		ansi.StartOfString:             true,
		ansi.PrivacyMessage:            true,
		ansi.ApplicationProgramCommand: true,
	}
	for cl := ansi.ControlSequence; cl <= ansi.SingleShiftThree; cl++ {
		assert.Equal(t, terminated[cl], cl.Terminated(), cl.String())
	}
}

func TestClassWrappers(t *testing.T) {
	for _, tc := range []struct {
		name  string
		fn    func(string) string
		class ansi.Class
	}{
		{"CSI", ansi.CSI, ansi.ControlSequence},
		{"OSC", ansi.OSC, ansi.OperatingSystemCommand},
		{"DCS", ansi.DCS, ansi.DeviceControlString},
		{"SOS", ansi.SOS, ansi.StartOfString},
		{"PM", ansi.PM, ansi.PrivacyMessage},
		{"APC", ansi.APC, ansi.ApplicationProgramCommand},
		{"SS2", ansi.SS2, ansi.SingleShiftTwo},
		{"SS3", ansi.SS3, ansi.SingleShiftThree},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.class.Wrap("x"), tc.fn("x"))
			assert.Equal(t, tc.name, tc.class.String())
		})
	}
}
