// Package app provides the orchestration layer for mosdash.
//
// # Overview
//
// This package wires together configuration, the two API clients, the tile
// pool, the shared state.Store and the UI. It is the composition root where
// all dependencies are initialized and connected.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()            Read endpoints and API keys
//	       ├─────> worldclock/weather       Build HTTP clients
//	       ├─────> rotation.New()           Shuffle palette onto the grid
//	       ├─────> widget.NewController()   Pool + store behind one owner
//	       ├─────> RunPoller("time")        Every 5s, once immediately
//	       ├─────> RunPoller("temperature") Every 2m, once immediately
//	       └─────> ui.Run()                 Start TUI (blocks)
//
// The pollers and the UI share an errgroup. Leaving the UI cancels the pollers;
// a cancelled parent context stops all three.
//
// # Polling Behavior
//
// Intervals are fixed constants. Every tick starts an independent fetch, so a
// request that takes longer than the interval overlaps with the next one. No
// ordering is enforced between them: the store keeps whichever result arrives
// last. Fetch failures are logged and shown on screen; they never stop a
// poller.
//
// # Logging
//
// The standard logger goes to the configured log file through
// tea.LogToFile, never to the terminal the UI draws on.
package app
