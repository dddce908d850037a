// Package viz renders pitch playback in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Player]: live playback of a [playback.Sequence], one step per tick
//   - [Picker]: pitch selection and playback settings before a Player
//   - [Canvas]: Braille-based pixel canvas with per-cell ink
//   - [Camera]: catcher, pitcher and overhead perspective presets
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	R     - Restart (after the configured delay)
//	L     - Toggle looping
//	C/P/O - Catcher, pitcher, overhead camera
//	+/-   - Zoom
//	F     - Toggle outfield
//	T     - Cycle color themes
//	?     - Show help overlay
package viz
