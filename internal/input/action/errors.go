package action

import "errors"

// Registry errors.
var (
	// ErrEmptyName indicates an action was declared with an empty name.
	ErrEmptyName = errors.New("action: empty action name")
)
