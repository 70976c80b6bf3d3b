package index

import "errors"

var (
	// ErrKeyNotFound indicates a point lookup for a key that was never recorded.
	ErrKeyNotFound = errors.New("index: key not found")

	// ErrUnsupported indicates a backend that cannot serve the requested mode.
	ErrUnsupported = errors.New("index: backend does not support unordered mode")

	// ErrUnknownBackend indicates a backend name outside the known set.
	ErrUnknownBackend = errors.New("index: unknown backend")

	// ErrLengthMismatch indicates batch inputs of different lengths.
	ErrLengthMismatch = errors.New("index: keys and values differ in length")
)
