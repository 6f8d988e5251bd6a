// Package blink1 implements the ThingM blink(1) HID report protocol
// described at https://github.com/todbot/blink1/blob/main/docs/blink1-hid-commands.md

package blink1

const (
	ThingMVID  uint16 = 0x27B8
	Blink1PID  uint16 = 0x01ED
	ReportID   byte   = 0x01
	ReportSize        = 9 // report ID + 8 data bytes, matches the hidraw report size

	DurationMax = 0xFFFF // duration is stored on two 8-bit fields
	PositionMax = 11     // pattern entries 0..11
)
