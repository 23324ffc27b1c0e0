package terminal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	actionMove = "move"
	actionJump = "jump"
	actionList = "list"
	actionNew  = "new"
	actionHelp = "help"
	actionQuit = "quit"
)

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingStep    = errors.New("jump needs a step number")
)

// Command is one parsed line of player input.
type Command struct {
	Action string
	Arg    int
}

// parseCommand maps a raw input line to a Command. A bare number is a
// cell click; everything else is a named action with optional argument.
func parseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(line)))
	if len(fields) == 0 {
		return Command{}, ErrEmptyCommand
	}

	if cell, err := strconv.Atoi(fields[0]); err == nil {
		return Command{Action: actionMove, Arg: cell}, nil
	}

	switch fields[0] {
	case "jump", "j", "goto":
		if len(fields) < 2 {
			return Command{}, ErrMissingStep
		}

		step, err := strconv.Atoi(fields[1])
		if err != nil {
			return Command{}, fmt.Errorf("%w: %q is not a number", ErrMissingStep, fields[1])
		}

		return Command{Action: actionJump, Arg: step}, nil
	case "list", "l", "history":
		return Command{Action: actionList}, nil
	case "new", "restart":
		return Command{Action: actionNew}, nil
	case "help", "h", "?":
		return Command{Action: actionHelp}, nil
	case "quit", "q", "exit":
		return Command{Action: actionQuit}, nil
	default:
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}
}
