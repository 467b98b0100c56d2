package amqp

import (
	"errors"
	"io"
)

// Decode failure kinds. The transport layer matches these with errors.Is to
// choose between closing the connection and replying with a protocol error.
var (
	// ErrMalformedTag - field-value tag byte is not one of the assigned tags
	ErrMalformedTag = errors.New("amqp: malformed field-value tag")
	// ErrTruncatedInput - declared length exceeds remaining bytes, or a
	// fixed-width field ran out of input
	ErrTruncatedInput = errors.New("amqp: truncated input")
	// ErrUnknownClass - class id is not present in the dispatch table
	ErrUnknownClass = errors.New("amqp: unknown class id")
	// ErrUnknownMethod - method id is not present in the class dispatch table
	ErrUnknownMethod = errors.New("amqp: unknown method id")
	// ErrLengthExceeded - declared length is larger than the configured
	// maximum accepted length
	ErrLengthExceeded = errors.New("amqp: declared length exceeds accepted maximum")
)

// truncated normalizes io errors from short reads into ErrTruncatedInput
func truncated(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrTruncatedInput
	}
	return err
}

// DecodeErrorCode maps a decode failure to the AMQP reply code a broker
// would answer with
func DecodeErrorCode(err error) uint16 {
	switch {
	case errors.Is(err, ErrUnknownClass), errors.Is(err, ErrUnknownMethod):
		return CommandInvalid
	case errors.Is(err, ErrLengthExceeded):
		return FrameError
	default:
		return SyntaxError
	}
}
