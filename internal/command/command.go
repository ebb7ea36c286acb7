package command

import (
	"errors"
	"fmt"
	"strings"
)

// Step is the distance in pixels covered by a single command.
const Step = 50

var ErrUnknownCommand = errors.New("unknown command")

// Command is one discrete directional move request.
type Command int

const (
	Up Command = iota
	Down
	Left
	Right
)

var names = map[Command]string{
	Up:    "Up",
	Down:  "Down",
	Left:  "Left",
	Right: "Right",
}

// aliases maps every accepted spelling (lower case) to its command. The
// Portuguese labels are the ones printed on the original command buttons.
var aliases = map[string]Command{
	"up":       Up,
	"u":        Up,
	"cima":     Up,
	"down":     Down,
	"d":        Down,
	"baixo":    Down,
	"left":     Left,
	"l":        Left,
	"esquerda": Left,
	"right":    Right,
	"r":        Right,
	"direita":  Right,
}

func (c Command) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// Valid reports whether c is one of the four directions.
func (c Command) Valid() bool {
	_, ok := names[c]
	return ok
}

// Displacement returns the fixed (dx, dy) applied to the robot for c.
func (c Command) Displacement() (dx, dy int) {
	switch c {
	case Up:
		return 0, -Step
	case Down:
		return 0, Step
	case Left:
		return -Step, 0
	case Right:
		return Step, 0
	}
	return 0, 0
}

// Parse converts a command name into a Command. Matching is case-insensitive.
func Parse(s string) (Command, error) {
	c, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, s)
	}
	return c, nil
}

// ParseList parses a comma or whitespace separated list such as "Up, Right Right".
func ParseList(s string) ([]Command, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	cmds := make([]Command, 0, len(fields))
	for _, f := range fields {
		c, err := Parse(f)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, c)
	}
	return cmds, nil
}
