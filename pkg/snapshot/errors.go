package snapshot

import "errors"

var (
	// ErrInvalidPath is returned when the snapshot path is empty or cannot be resolved.
	ErrInvalidPath = errors.New("invalid snapshot path")

	// I/O operation errors, wrapped with detail for debugging
	ErrFailedToCreateDirectory = errors.New("failed to create snapshot directory")
	ErrFailedToReadSnapshot    = errors.New("failed to read snapshot file")
	ErrFailedToWriteSnapshot   = errors.New("failed to write snapshot file")
	ErrFailedToEncodeSnapshot  = errors.New("failed to encode snapshot")
	ErrFailedToDecodeSnapshot  = errors.New("failed to decode snapshot")
)
