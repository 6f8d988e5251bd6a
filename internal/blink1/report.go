package blink1

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUsage           = errors.New("wrong number of arguments")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrInvalidColor    = errors.New("invalid color")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrInvalidPosition = errors.New("invalid position")
)

// FieldKind selects the encoding stage applied for one command field.
type FieldKind int

const (
	// FieldColor stores an RGB triplet on three bytes.
	FieldColor FieldKind = iota
	// FieldDuration stores a non-negative duration big-endian on two bytes.
	FieldDuration
	// FieldPosition stores a pattern position, rejecting values outside
	// [0, PositionMax].
	FieldPosition
	// FieldPositionClamped stores a pattern position clamped into
	// [0, PositionMax] instead of rejected.
	FieldPositionClamped
	// FieldPlay stores a play/pause flag on one byte. The token is read
	// permissively: any nonzero integer means play, anything else pause.
	FieldPlay
)

// Field binds one argument of a command to a report offset.
type Field struct {
	Kind   FieldKind
	Arg    int // argument index, after the command letter
	Offset int // first report byte the field occupies
}

// Command describes one report type of the device.
type Command struct {
	Letter byte
	Argc   int
	Usage  string
	Desc   string
	Fields []Field
}

const (
	UsageFade = "Usage: blink c COLOR FADE\n" +
		"Example: blink c red 50"
	UsageSet = "Usage: blink n COLOR\n" +
		"Example: blink n 454545"
	UsagePlay = "Usage: blink p 0|1 POSITION\n" +
		"Example: blink p 0 0 # Pause\n" +
		"         blink p 1 4 # Play from 5th position"
	UsagePattern = "Usage: blink P COLOR FADE POSITION\n" +
		"Example: blink P green .5s 2 # 3rd pattern green with 500ms fade time"
	UsageServerdown = "Usage: blink D 0|1 DURATION\n" +
		"Example: blink D 0 0 # stop server tickle mode\n" +
		"         blink D 1 2000ms # start server tickle mode with 2s time"
)

// Commands is the supported command set. Field order mirrors the byte
// layout shared between commands: P carries the position, fade and color
// stages, c the fade and color stages, n the color stage alone.
var Commands = []Command{
	{'c', 2, UsageFade, "Fade to RGB color", []Field{
		{FieldDuration, 1, 5},
		{FieldColor, 0, 2},
	}},
	{'D', 2, UsageServerdown, "Serverdown tickle/off", []Field{
		{FieldPlay, 0, 2},
		{FieldDuration, 1, 3},
	}},
	{'n', 1, UsageSet, "Set RGB color now", []Field{
		{FieldColor, 0, 2},
	}},
	{'p', 2, UsagePlay, "Play/Pause", []Field{
		{FieldPlay, 0, 2},
		{FieldPositionClamped, 1, 3},
	}},
	{'P', 3, UsagePattern, "Set pattern entry", []Field{
		{FieldPosition, 2, 7},
		{FieldDuration, 1, 5},
		{FieldColor, 0, 2},
	}},
}

// Lookup returns the descriptor for a command letter.
func Lookup(letter byte) (Command, bool) {
	for _, c := range Commands {
		if c.Letter == letter {
			return c, true
		}
	}
	return Command{}, false
}

// Encode builds the 9-byte report for one command invocation. The argument
// count must match the command's arity exactly; the first field that fails
// to parse aborts the encoding.
func Encode(letter byte, args []string) ([]byte, error) {
	cmd, ok := Lookup(letter)
	if !ok {
		return nil, fmt.Errorf("%w '%c'", ErrUnknownCommand, letter)
	}

	if len(args) != cmd.Argc {
		return nil, fmt.Errorf("%w: %s\n%s", ErrUsage, cmd.Desc, cmd.Usage)
	}

	report := make([]byte, ReportSize)
	report[0] = ReportID
	report[1] = cmd.Letter

	for _, f := range cmd.Fields {
		if err := encodeField(report, f, args[f.Arg]); err != nil {
			return nil, err
		}
	}

	return report, nil
}

func encodeField(report []byte, f Field, token string) error {
	switch f.Kind {
	case FieldColor:
		rgb, err := ParseColor(token)
		if err != nil {
			return err
		}
		report[f.Offset] = byte(rgb >> 16)
		report[f.Offset+1] = byte(rgb >> 8)
		report[f.Offset+2] = byte(rgb)

	case FieldDuration:
		d, err := ParseDuration(token)
		if err != nil {
			return err
		}
		if d < 0 {
			return fmt.Errorf("%w %q", ErrInvalidDuration, token)
		}
		binary.BigEndian.PutUint16(report[f.Offset:f.Offset+2], uint16(d))

	case FieldPosition:
		pos, _ := strconv.Atoi(token)
		if pos < 0 || pos > PositionMax {
			return fmt.Errorf("%w %d", ErrInvalidPosition, pos)
		}
		report[f.Offset] = byte(pos)

	case FieldPositionClamped:
		pos, _ := strconv.Atoi(token)
		if pos < 0 {
			pos = 0
		} else if pos > PositionMax {
			pos = PositionMax
		}
		report[f.Offset] = byte(pos)

	case FieldPlay:
		play, _ := strconv.Atoi(token)
		if play != 0 {
			play = 1
		}
		report[f.Offset] = byte(play)
	}

	return nil
}

// ReportString renders a report as dash-separated hex for logging.
func ReportString(b []byte) string {
	hexDigits := hex.EncodeToString(b)
	var builder strings.Builder
	for i, r := range hexDigits {
		if i > 0 && i%2 == 0 {
			builder.WriteString("-")
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
