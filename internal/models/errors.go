package models

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	ErrKindUnknown ErrorKind = iota
	ErrKindFileIO
	ErrKindRemote
)

func (k ErrorKind) String() string {
	switch k {
	case ErrKindFileIO:
		return "file_io"
	case ErrKindRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// Error tags a failure with the stage that produced it so the caller can
// report file, remote and unexpected failures differently.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewFileIOError(op string, err error) error {
	return &Error{Kind: ErrKindFileIO, Op: op, Err: err}
}

func NewRemoteError(op string, err error) error {
	return &Error{Kind: ErrKindRemote, Op: op, Err: err}
}

func NewUnknownError(op string, err error) error {
	return &Error{Kind: ErrKindUnknown, Op: op, Err: err}
}

// KindOf reports the kind of the first *Error in err's chain.
// Untagged errors are ErrKindUnknown.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrKindUnknown
}
