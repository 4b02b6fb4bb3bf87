package domain

import "errors"

// Storage operation names carried by StorageError.
const (
	OpConnect = "connect"
	OpInsert  = "insert"
	OpFind    = "find"
	OpClose   = "close"
)

// ErrStorage matches every StorageError under errors.Is.
var ErrStorage = errors.New("stringsaver: storage error")

// ErrNotConnected is returned by gateways used outside a connected session.
var ErrNotConnected = errors.New("stringsaver: not connected")

// StorageError is the single error kind reported by storage gateways.
// Err holds the underlying driver failure.
type StorageError struct {
	Op  string
	Err error
}

// NewStorageError wraps err as a failure of op. A nil err yields nil.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return "storage " + e.Op + " failed"
	}
	return "storage " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrStorage.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}
