package ui

import "time"

// Grid geometry, in terminal cells. Mouse hit-testing depends on these, so
// rendering must not add rows above the grid without updating gridTop.
const (
	gridColumns = 3
	tileWidth   = 18
	tileHeight  = 3
	tileGap     = 1

	// gridTop is the first screen row of the grid: header, then one blank line.
	gridTop = 2
	// gridLeft is the first screen column of the grid.
	gridLeft = 2
)

// Timing constants.
const (
	// splashStep is how long each dot of the loading splash stays up.
	splashStep = 750 * time.Millisecond

	// splashSteps is the number of dots shown before the splash closes.
	splashSteps = 3

	// DefaultUIInterval is the default UI refresh interval.
	DefaultUIInterval = time.Second
)

const splashText = "Ostec-group"
