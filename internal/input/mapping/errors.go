package mapping

import "errors"

// Mapping errors.
var (
	// ErrEmptyStroke indicates a bind call with zero event codes.
	ErrEmptyStroke = errors.New("mapping: stroke has no codes")

	// ErrNoAction indicates a bind call with the zero action ID.
	ErrNoAction = errors.New("mapping: binding has no action")

	// ErrUnknownAction indicates a keymap file names an undeclared action.
	ErrUnknownAction = errors.New("mapping: unknown action name")

	// ErrUnknownFormat indicates a keymap file extension is not supported.
	ErrUnknownFormat = errors.New("mapping: unsupported keymap file format")
)
