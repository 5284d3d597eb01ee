// Package route decides which node receives a fired action.
//
// Two routers cover the two input origins. Hover follows the pointer
// through per-frame hit testing and enforces press-slip cancellation, so
// dragging off a pressed widget before release aborts the click. Focus
// tracks the single focused node for keyboard and gamepad input and falls
// back to tree-walking navigation when the focused node leaves a
// focus-movement action unhandled.
//
// Routers do not know about widgets. They see the Node interface plus the
// optional hover/focus awareness interfaces, and layout collaborators
// supply hit testing and tree order.
package route
