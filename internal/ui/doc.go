// Package ui contains the Bubble Tea program that renders the settings menu.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry (key presses and window sizes).
//   - Key presses are decoded against the keymap for the active mode into
//     abstract events (internal/ui/state.Event) and handed to the controller
//     one at a time. The model never mutates menu or edit state itself.
//   - Window size messages update the layout and dispatch a Resize event so
//     the controller marks the screen dirty.
//
// State ownership:
//   - internal/ui/state.Controller owns navigation, the edit buffer, the
//     status line and the dirty flag.
//   - internal/menu.Store owns the entries and their values.
//
// Rendering:
//   - View rebuilds the frame only when the controller is dirty (or the model
//     changed something of its own, such as the error line) and then calls
//     Controller.Painted. Otherwise the cached frame is returned.
package ui
