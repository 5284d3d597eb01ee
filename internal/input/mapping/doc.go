// Package mapping holds the declarative keymap: strokes bound to actions,
// grouped into layers by required modifier set.
//
// A stroke is a sequence of event codes where the last code is the
// terminal trigger and the rest are modifiers. All bindings sharing one
// exact modifier set form a Layer, and a Mapping keeps its layers sorted
// by descending modifier count. That order is what lets the dispatcher
// pick exactly one active layer per frame, so "ctrl+w" shadows "w" while
// ctrl is held instead of firing alongside it.
//
// Mappings are built three ways, all additive:
//
//   - in code via Bind / MustBind / BindStroke
//   - from keymap files (JSON, TOML, or YAML) via Loader
//   - from Lua init scripts (see the luabind package)
//
// The Watcher reloads keymap files on change so bindings can be tuned
// without restarting the application.
package mapping
