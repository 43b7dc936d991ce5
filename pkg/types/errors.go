package types

import "errors"

// Model errors.
var (
	ErrInvalidOrientation = errors.New("orientation must be +1 or -1")
	ErrFixedHandedness    = errors.New("shape kind has fixed handedness")
	ErrUnknownShapeKind   = errors.New("unknown shape kind")
	ErrShapeIndexRange    = errors.New("shape index out of range")
	ErrSequenceNotFound   = errors.New("sequence not found")
	ErrUnknownShapeCode   = errors.New("unknown shape code")
)

// Persistence errors. ErrMalformedSaveData covers documents that exist but
// cannot be decoded; ErrStorageIO covers failures reading or writing the
// destination itself.
var (
	ErrMalformedSaveData = errors.New("malformed save data")
	ErrStorageIO         = errors.New("storage I/O failure")
)
