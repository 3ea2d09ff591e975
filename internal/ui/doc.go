// Package ui provides the terminal interface for mosdash.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. It never fetches anything itself: the
// pollers in package app write into a state.Store and the model copies a
// snapshot of that store on every UI tick. Tile clicks go the other way,
// through a Controller that rotates the tile pool and updates the store
// synchronously, so the model re-reads the snapshot right after a click.
//
// # Package Structure
//
//   - app.go: Model, Update loop, commands and the Run entry point
//   - grid.go: Tile grid rendering and mouse hit-testing
//   - header.go: Title bar, information lines and footer
//   - splash.go: Loading caption shown for the first few seconds
//   - help.go: Keyboard shortcut overlay
//   - keys.go: Key bindings for bubbles/key and bubbles/help
//   - theme.go: Chrome colour themes
//   - layout.go: Grid geometry and timing constants
//
// # Screen Layout
//
//	row 0          title bar
//	row 1          blank
//	row gridTop    3x3 tiles, tileWidth x tileHeight each, tileGap apart
//	               time, temperature, temperature error, clicks
//	               help footer
//
// Mouse hit-testing in grid.go computes slots from the same constants, so
// any change to the rows above the grid must move gridTop too.
//
// # Themes
//
// Themes only colour the chrome. Tile colours always come from the palette
// and a tile's text colour follows the palette contrast rule. Press T to
// cycle themes; the starting theme comes from the config file.
package ui
