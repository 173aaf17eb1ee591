package protocol

import (
	"errors"
)

// Command is one of the fixed three character tags that prefix every
// message on the wire. The rest of the message is the command payload.
type Command string

const (
	CmdMessage           Command = "MSG"
	CmdClear             Command = "CLR"
	CmdDrawing           Command = "DRW"
	CmdStartGameRequest  Command = "SRQ"
	CmdStartGameAck      Command = "SAC"
	CmdStartGameNack     Command = "SNA"
	CmdDrawerAck         Command = "DAC"
	CmdRoundStartRequest Command = "RRQ"
	CmdRoundStartAck     Command = "RAC"
	CmdRoundStartNack    Command = "RNA"
	CmdGuesserRequest    Command = "GRQ"
	CmdDrawerRequest     Command = "DRQ"
	CmdRoundStarted      Command = "RST"
	CmdError             Command = "ERR"
)

// TagLength is the fixed width of the command prefix.
const TagLength = 3

var ErrUnknownCommand = errors.New("unknown command")

var commands = map[Command]struct{}{
	CmdMessage:           {},
	CmdClear:             {},
	CmdDrawing:           {},
	CmdStartGameRequest:  {},
	CmdStartGameAck:      {},
	CmdStartGameNack:     {},
	CmdDrawerAck:         {},
	CmdRoundStartRequest: {},
	CmdRoundStartAck:     {},
	CmdRoundStartNack:    {},
	CmdGuesserRequest:    {},
	CmdDrawerRequest:     {},
	CmdRoundStarted:      {},
	CmdError:             {},
}

// Parse splits a raw wire message into its command tag and payload.
// Messages shorter than the tag width or with an unrecognized tag
// fail with ErrUnknownCommand.
func Parse(raw string) (Command, string, error) {
	if len(raw) < TagLength {
		return "", "", ErrUnknownCommand
	}
	cmd := Command(raw[:TagLength])
	if _, ok := commands[cmd]; !ok {
		return "", "", ErrUnknownCommand
	}
	return cmd, raw[TagLength:], nil
}

// Compose builds the wire form of a command and its payload.
func Compose(cmd Command, payload string) string {
	return string(cmd) + payload
}

func (c Command) String() string {
	return string(c)
}
