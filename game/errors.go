package game

import (
	"errors"
	"fmt"
)

// Code is the machine-readable reason an action was rejected.
type Code string

const (
	CodeIllegalMove     Code = "ILLEGAL_MOVE"
	CodeNotYourTurn     Code = "NOT_YOUR_TURN"
	CodeOutOfTurns      Code = "OUT_OF_TURNS"
	CodeSamePieceRepeat Code = "SAME_PIECE_REPEAT"
	CodeOutOfRange      Code = "OUT_OF_RANGE"
)

// Error is a rejected action. Reason is meant to be shown to the player
// verbatim.
type Error struct {
	Code   Code
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Reason)
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// Sentinels for errors.Is.
var (
	ErrIllegalMove     = &Error{Code: CodeIllegalMove}
	ErrNotYourTurn     = &Error{Code: CodeNotYourTurn}
	ErrOutOfTurns      = &Error{Code: CodeOutOfTurns}
	ErrSamePieceRepeat = &Error{Code: CodeSamePieceRepeat}
	ErrOutOfRange      = &Error{Code: CodeOutOfRange}
)

func reject(code Code, reason string) *Error {
	return &Error{Code: code, Reason: reason}
}

func illegal(reason string) *Error {
	return reject(CodeIllegalMove, reason)
}

// CodeOf returns the code carried by err, or "" if err is not an *Error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// ParseCode validates a code read from outside the engine.
func ParseCode(s string) (Code, error) {
	switch c := Code(s); c {
	case CodeIllegalMove, CodeNotYourTurn, CodeOutOfTurns, CodeSamePieceRepeat, CodeOutOfRange:
		return c, nil
	}
	return "", fmt.Errorf("unknown error code %q", s)
}
