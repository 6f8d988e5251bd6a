package blink1

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name   string
		letter byte
		args   []string
		want   []byte
	}{
		{
			name:   "set color now",
			letter: 'n',
			args:   []string{"red"},
			want:   []byte{1, 'n', 0xFF, 0x00, 0x00, 0, 0, 0, 0},
		},
		{
			name:   "fade to color",
			letter: 'c',
			args:   []string{"00ff00", "50"},
			want:   []byte{1, 'c', 0x00, 0xFF, 0x00, 0x00, 0x32, 0, 0},
		},
		{
			name:   "pattern entry",
			letter: 'P',
			args:   []string{"green", ".5s", "2"},
			want:   []byte{1, 'P', 0x00, 0xFF, 0x00, 0x00, 0x32, 2, 0},
		},
		{
			name:   "serverdown tickle",
			letter: 'D',
			args:   []string{"1", "2000ms"},
			want:   []byte{1, 'D', 1, 0x00, 0xC8, 0, 0, 0, 0},
		},
		{
			name:   "pause",
			letter: 'p',
			args:   []string{"0", "0"},
			want:   []byte{1, 'p', 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name:   "play from position",
			letter: 'p',
			args:   []string{"1", "4"},
			want:   []byte{1, 'p', 1, 4, 0, 0, 0, 0, 0},
		},
		{
			name:   "play flag truthiness",
			letter: 'D',
			args:   []string{"7", "0"},
			want:   []byte{1, 'D', 1, 0, 0, 0, 0, 0, 0},
		},
		{
			name:   "play flag coerces non-numeric to pause",
			letter: 'p',
			args:   []string{"yes", "3"},
			want:   []byte{1, 'p', 0, 3, 0, 0, 0, 0, 0},
		},
		{
			name:   "play position clamps high",
			letter: 'p',
			args:   []string{"1", "99"},
			want:   []byte{1, 'p', 1, 11, 0, 0, 0, 0, 0},
		},
		{
			name:   "play position clamps low",
			letter: 'p',
			args:   []string{"1", "-3"},
			want:   []byte{1, 'p', 1, 0, 0, 0, 0, 0, 0},
		},
		{
			name:   "clamped fade duration",
			letter: 'c',
			args:   []string{"white", "999999"},
			want:   []byte{1, 'c', 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.letter, tt.args)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if len(got) != ReportSize {
				t.Fatalf("report length = %d, want %d", len(got), ReportSize)
			}
			if got[0] != ReportID || got[1] != tt.letter {
				t.Fatalf("report header = %d %q, want %d %q", got[0], got[1], ReportID, tt.letter)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("report mismatch:\ngot:  %s\nwant: %s", ReportString(got), ReportString(tt.want))
			}
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		letter byte
		args   []string
		want   error
	}{
		{"unknown command", 'x', []string{"red"}, ErrUnknownCommand},
		{"too many arguments", 'n', []string{"red", "50"}, ErrUsage},
		{"too few arguments", 'P', []string{"green", ".5s"}, ErrUsage},
		{"bad color", 'n', []string{"zz"}, ErrInvalidColor},
		{"color out of range", 'c', []string{"1000000", "50"}, ErrInvalidColor},
		{"bad duration", 'c', []string{"red", "abc"}, ErrInvalidDuration},
		{"negative fade duration", 'c', []string{"red", "-1"}, ErrInvalidDuration},
		{"negative serverdown duration", 'D', []string{"1", "-5s"}, ErrInvalidDuration},
		{"pattern position too high", 'P', []string{"green", ".5s", "12"}, ErrInvalidPosition},
		{"pattern position negative", 'P', []string{"green", ".5s", "-1"}, ErrInvalidPosition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Encode(tt.letter, tt.args)
			if err == nil {
				t.Fatalf("Encode succeeded with %s, want %v", ReportString(report), tt.want)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("error %v, want %v", err, tt.want)
			}
		})
	}
}

// Arity is checked before any field parsing, so a garbage color with the
// wrong argument count reports the usage error.
func TestEncodeArityBeforeFields(t *testing.T) {
	_, err := Encode('n', []string{"zz", "extra"})
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("error %v, want ErrUsage", err)
	}
}

// Pattern position is validated before the fade and color fields, matching
// the device's command documentation order.
func TestEncodePositionCheckedFirst(t *testing.T) {
	_, err := Encode('P', []string{"zz", "abc", "50"})
	if !errors.Is(err, ErrInvalidPosition) {
		t.Fatalf("error %v, want ErrInvalidPosition", err)
	}
}

func TestEncodeIdempotent(t *testing.T) {
	first, err := Encode('P', []string{"purple", "1s", "11"})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	second, err := Encode('P', []string{"purple", "1s", "11"})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("reports differ:\nfirst:  %s\nsecond: %s", ReportString(first), ReportString(second))
	}
}

func TestLookup(t *testing.T) {
	for _, letter := range []byte{'c', 'D', 'n', 'p', 'P'} {
		cmd, ok := Lookup(letter)
		if !ok {
			t.Errorf("Lookup(%q) failed", letter)
			continue
		}
		if cmd.Letter != letter {
			t.Errorf("Lookup(%q) returned letter %q", letter, cmd.Letter)
		}
		if cmd.Argc != len(cmd.Fields) {
			t.Errorf("command %q declares %d args but %d fields", letter, cmd.Argc, len(cmd.Fields))
		}
	}

	if _, ok := Lookup('x'); ok {
		t.Error("Lookup('x') succeeded for an unknown command")
	}
}

func TestReportString(t *testing.T) {
	got := ReportString([]byte{1, 'P', 0x00, 0xFF, 0x00, 0x00, 0x32, 2, 0})
	want := "01-50-00-ff-00-00-32-02-00"
	if got != want {
		t.Errorf("ReportString = %q, want %q", got, want)
	}
}
