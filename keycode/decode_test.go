package keycode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLetters(t *testing.T) {
	want := "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	for code := uint16(0x04); code <= 0x1D; code++ {
		for _, mods := range []uint8{0, ModLeftShift, ModRightShift, ModLeftCtrl} {
			got, ok := Decode(PageKeyboard, code, mods)
			require.True(t, ok, "code 0x%02x", code)
			assert.Equal(t, string(want[code-0x04]), got, "code 0x%02x mods 0x%02x", code, mods)
		}
	}
}

func TestDecodeShiftPairs(t *testing.T) {
	cases := []struct {
		code    uint16
		base    string
		shifted string
	}{
		{0x1E, "1", "!"},
		{0x1F, "2", "@"},
		{0x20, "3", "#"},
		{0x21, "4", "$"},
		{0x22, "5", "%"},
		{0x23, "6", "^"},
		{0x24, "7", "&"},
		{0x25, "8", "*"},
		{0x26, "9", "("},
		{0x27, "0", ")"},
		{0x2D, "-", "_"},
		{0x2E, "=", "+"},
		{0x2F, "[", "{"},
		{0x30, "]", "}"},
		{0x31, "\\", "|"},
		{0x33, ";", ":"},
		{0x34, "'", "\""},
		{0x35, "`", "~"},
		{0x36, ",", "<"},
		{0x37, ".", ">"},
		{0x38, "/", "?"},
	}
	for _, tc := range cases {
		got, ok := Decode(PageKeyboard, tc.code, 0)
		require.True(t, ok, "code 0x%02x", tc.code)
		assert.Equal(t, tc.base, got)

		got, ok = Decode(PageKeyboard, tc.code, ModLeftShift)
		require.True(t, ok)
		assert.Equal(t, tc.shifted, got)

		got, ok = Decode(PageKeyboard, tc.code, ModRightShift)
		require.True(t, ok)
		assert.Equal(t, tc.shifted, got)
	}
}

func TestDecodeNamedKeys(t *testing.T) {
	cases := []struct {
		code uint16
		want string
	}{
		{0x28, "ENTER"},
		{0x29, "ESC"},
		{0x2A, "BSPC"},
		{0x2B, "TAB"},
		{0x2C, "SPACE"},
		{0x3A, "F1"},
		{0x45, "F12"},
		{0x4A, "HOME"},
		{0x4B, "PGUP"},
		{0x4C, "DEL"},
		{0x4D, "END"},
		{0x4E, "PGDN"},
		{0x4F, "RIGHT"},
		{0x50, "LEFT"},
		{0x51, "DOWN"},
		{0x52, "UP"},
		{0xE0, "LCTRL"},
		{0xE1, "LSHFT"},
		{0xE2, "LALT"},
		{0xE3, "LGUI"},
		{0xE4, "RCTRL"},
		{0xE5, "RSHFT"},
		{0xE6, "RALT"},
		{0xE7, "RGUI"},
	}
	for _, tc := range cases {
		// Shift state must not change fixed labels.
		for _, mods := range []uint8{0, ModLeftShift | ModRightShift} {
			got, ok := Decode(PageKeyboard, tc.code, mods)
			require.True(t, ok, "code 0x%02x", tc.code)
			assert.Equal(t, tc.want, got)
		}
	}
}

func TestDecodeConsumerPage(t *testing.T) {
	cases := []struct {
		code uint16
		want string
	}{
		{0xE2, "MUTE"},
		{0xE9, "VOL+"},
		{0xEA, "VOL-"},
		{0xB5, "NEXT"},
		{0xB6, "PREV"},
		{0xCD, "PLAY"},
		// The consumer page never fails to decode.
		{0x01, "MEDIA"},
		{0xFFFF, "MEDIA"},
	}
	for _, tc := range cases {
		got, ok := Decode(PageConsumer, tc.code, 0)
		require.True(t, ok, "code 0x%02x", tc.code)
		assert.Equal(t, tc.want, got)
	}
}

func TestDecodeUnknown(t *testing.T) {
	cases := []struct {
		name string
		page uint8
		code uint16
	}{
		{"unknown page", 0xFF, 0x04},
		{"page zero", 0x00, 0x04},
		{"code below letters", PageKeyboard, 0x03},
		{"non-US hash gap", PageKeyboard, 0x32},
		{"caps lock", PageKeyboard, 0x39},
		{"keypad", PageKeyboard, 0x54},
		{"above modifiers", PageKeyboard, 0xE8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Decode(tc.page, tc.code, 0)
			assert.False(t, ok)
			assert.Empty(t, got)
		})
	}
}

func TestShifted(t *testing.T) {
	assert.False(t, Shifted(0))
	assert.False(t, Shifted(ModLeftCtrl|ModRightAlt))
	assert.True(t, Shifted(ModLeftShift))
	assert.True(t, Shifted(ModRightShift))
	assert.True(t, Shifted(ModLeftShift|ModLeftCtrl))
}

func TestForPosition(t *testing.T) {
	got, ok := ForPosition(0)
	require.True(t, ok)
	assert.Equal(t, "TAB", got)

	got, ok = ForPosition(15)
	require.True(t, ok)
	assert.Equal(t, "A", got)

	got, ok = ForPosition(45)
	require.True(t, ok)
	assert.Equal(t, "GUI", got)

	_, ok = ForPosition(46)
	assert.False(t, ok)

	_, ok = ForPosition(1 << 20)
	assert.False(t, ok)
}
