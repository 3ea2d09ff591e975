// Package state provides thread-safe state management for the mosdash UI.
//
// # Overview
//
// Store is the widget.Display the controller and the pollers write to. The UI
// never receives callbacks directly; it reads a Snapshot on its own refresh
// tick, the same producer/consumer split the pollers and the Bubble Tea loop
// use everywhere else.
//
//	Producers:                      Consumer (UI):
//	┌──────────────────────┐       ┌────────────────────┐
//	│ Controller.Click()   │       │                    │
//	│ time poller          │──────→│ store.Snapshot()   │
//	│ temperature poller   │(mutex)│      ↓             │
//	└──────────────────────┘       │ render tiles/lines │
//	                               └────────────────────┘
//
// # Update Semantics
//
// Every update replaces the previous text of its display. Pollers may overlap
// when a request outlives its interval; whichever finishes last is what the
// UI shows. Readings also count consecutive failed ticks so the UI can dim a
// value that has not refreshed for a while.
//
// # Testing Considerations
//
// The zero Store is ready to use. Tests may set now to pin timestamps.
package state
