package amqp

import (
	"fmt"
	"testing"
)

func TestDecodeErrorCode(t *testing.T) {
	cases := []struct {
		err  error
		code uint16
	}{
		{ErrUnknownClass, CommandInvalid},
		{ErrUnknownMethod, CommandInvalid},
		{fmt.Errorf("%w: class 33, method 10", ErrUnknownMethod), CommandInvalid},
		{ErrLengthExceeded, FrameError},
		{fmt.Errorf("%w: 100 > 8", ErrLengthExceeded), FrameError},
		{ErrMalformedTag, SyntaxError},
		{ErrTruncatedInput, SyntaxError},
	}

	for _, c := range cases {
		if code := DecodeErrorCode(c.err); code != c.code {
			t.Fatalf("%v: expected reply code %d, actual %d", c.err, c.code, code)
		}
	}
}

func TestNewConnectionError(t *testing.T) {
	err := NewConnectionError(CommandInvalid, "unknown class", ClassBasic, 40)

	if err.ReplyCode != CommandInvalid {
		t.Fatalf("Expected ReplyCode %d, actual %d", CommandInvalid, err.ReplyCode)
	}
	if err.ReplyText != "COMMAND-INVALID - unknown class" {
		t.Fatalf("Unexpected ReplyText '%s'", err.ReplyText)
	}
	if err.ErrorType != ErrorOnConnection {
		t.Fatalf("Expected ErrorOnConnection, actual %d", err.ErrorType)
	}
}

func TestNewChannelError(t *testing.T) {
	err := NewChannelError(PreconditionFailed, "queue not empty", ClassQueue, 40)

	if err.ReplyCode != PreconditionFailed {
		t.Fatalf("Expected ReplyCode %d, actual %d", PreconditionFailed, err.ReplyCode)
	}
	if err.ReplyText != "PRECONDITION-FAILED - queue not empty" {
		t.Fatalf("Unexpected ReplyText '%s'", err.ReplyText)
	}
	if err.ErrorType != ErrorOnChannel {
		t.Fatalf("Expected ErrorOnChannel, actual %d", err.ErrorType)
	}
}
