package luabind

import "errors"

// ErrBinderClosed is returned when a script runs against a closed binder.
var ErrBinderClosed = errors.New("luabind: binder closed")
