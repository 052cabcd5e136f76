package storage

import (
	"errors"
	"fmt"
)

// ErrClosed indicates the primitive has been closed.
var ErrClosed = errors.New("storage: primitive closed")

// Op names the adapter operation that failed.
type Op string

const (
	OpGet  Op = "get"
	OpSave Op = "save"
)

// OpError wraps a failed adapter operation with the namespaced key it
// targeted. It is only returned under PolicyPropagate.
type OpError struct {
	Op  Op
	Key string
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("storage: %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// SerializationError wraps JSON marshaling/unmarshaling errors with context.
type SerializationError struct {
	Key string
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("storage: serialization error for key %q: %v", e.Key, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}
