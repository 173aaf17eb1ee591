package protocol

import (
	"errors"
	"testing"
)

func TestParse_KnownCommands(t *testing.T) {
	cases := []struct {
		raw     string
		cmd     Command
		payload string
	}{
		{"MSGhello there", CmdMessage, "hello there"},
		{"CLR", CmdClear, ""},
		{"DRW{\"x\":1}", CmdDrawing, "{\"x\":1}"},
		{"SRQ", CmdStartGameRequest, ""},
		{"SAC", CmdStartGameAck, ""},
		{"SNA", CmdStartGameNack, ""},
		{"DACfoo", CmdDrawerAck, "foo"},
		{"RAC", CmdRoundStartAck, ""},
		{"RNA", CmdRoundStartNack, ""},
		{"RSTlorem", CmdRoundStarted, "lorem"},
		{"DRQfoo;bar;lorem", CmdDrawerRequest, "foo;bar;lorem"},
		{"GRQ", CmdGuesserRequest, ""},
		{"RRQ", CmdRoundStartRequest, ""},
		{"ERR", CmdError, ""},
	}

	for _, tc := range cases {
		cmd, payload, err := Parse(tc.raw)
		if err != nil {
			t.Errorf("Parse(%q) returned unexpected error: %v", tc.raw, err)
			continue
		}
		if cmd != tc.cmd {
			t.Errorf("Parse(%q) command = %v, want %v", tc.raw, cmd, tc.cmd)
		}
		if payload != tc.payload {
			t.Errorf("Parse(%q) payload = %q, want %q", tc.raw, payload, tc.payload)
		}
	}
}

func TestParse_UnknownCommand(t *testing.T) {
	for _, raw := range []string{"XYZpayload", "msg lowercase", "", "SR", "???"} {
		_, _, err := Parse(raw)
		if !errors.Is(err, ErrUnknownCommand) {
			t.Errorf("Parse(%q) error = %v, want ErrUnknownCommand", raw, err)
		}
	}
}

func TestCompose(t *testing.T) {
	if got := Compose(CmdDrawerAck, "lorem"); got != "DAClorem" {
		t.Errorf("Compose = %q, want %q", got, "DAClorem")
	}
	if got := Compose(CmdError, ""); got != "ERR" {
		t.Errorf("Compose = %q, want %q", got, "ERR")
	}
}

func TestCompose_RoundTrips(t *testing.T) {
	raw := Compose(CmdDrawerRequest, "a;b;c")
	cmd, payload, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cmd != CmdDrawerRequest || payload != "a;b;c" {
		t.Errorf("round trip gave %v %q", cmd, payload)
	}
}
