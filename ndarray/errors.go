package ndarray

import "errors"

// Error taxonomy, matching spec §7 exactly. Every sentinel is checked with
// errors.Is, following the teacher's plain-stdlib-errors convention (no
// custom error-code package, no github.com/pkg/errors — see DESIGN.md).
var (
	// ErrOutOfBounds: a subscript or linear index falls outside
	// [0, extent) under ERROR mode.
	ErrOutOfBounds = errors.New("ndarray: index out of bounds")
	// ErrUnknownDType: a dtype tag outside the registry was passed to a
	// typed routine.
	ErrUnknownDType = errors.New("ndarray: unknown dtype")
	// ErrShapeMismatch: apply-engine inputs disagree in rank or shape.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")
	// ErrIncompatibleBuffer: the buffer is too short for the declared view.
	ErrIncompatibleBuffer = errors.New("ndarray: buffer incompatible with view")
	// ErrBroadcastFailure: two shape axes have distinct non-unit extents.
	ErrBroadcastFailure = errors.New("ndarray: shapes cannot be broadcast")
	// ErrCastNotAllowed: is_allowed_data_type_cast refused the requested
	// casting mode.
	ErrCastNotAllowed = errors.New("ndarray: cast not allowed")
)
