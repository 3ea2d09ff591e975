package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/mosdash/internal/palette"
	"github.com/five82/mosdash/internal/state"
)

// renderGrid lays tiles out row-major, gridColumns per row. The cursor tile
// gets markers around its label; pass cursor < 0 to hide it.
func renderGrid(tiles []state.Tile, cursor int) string {
	var lines []string
	for start := 0; start < len(tiles); start += gridColumns {
		end := min(start+gridColumns, len(tiles))

		blocks := make([][]string, 0, end-start)
		for i := start; i < end; i++ {
			blocks = append(blocks, strings.Split(renderTile(tiles[i], i == cursor), "\n"))
		}

		for row := 0; row < tileHeight; row++ {
			var b strings.Builder
			b.WriteString(strings.Repeat(" ", gridLeft))
			for j, block := range blocks {
				if j > 0 {
					b.WriteString(strings.Repeat(" ", tileGap))
				}
				if row < len(block) {
					b.WriteString(block[row])
				} else {
					b.WriteString(strings.Repeat(" ", tileWidth))
				}
			}
			lines = append(lines, b.String())
		}

		if end < len(tiles) {
			for g := 0; g < tileGap; g++ {
				lines = append(lines, "")
			}
		}
	}
	return strings.Join(lines, "\n")
}

// gridHeight returns the number of screen rows the grid occupies.
func gridHeight(slots int) int {
	if slots <= 0 {
		return 0
	}
	rows := (slots + gridColumns - 1) / gridColumns
	return rows*tileHeight + (rows-1)*tileGap
}

func renderTile(tile state.Tile, selected bool) string {
	label := tile.Label
	if selected {
		label = "▸ " + label + " ◂"
	}
	return lipgloss.NewStyle().
		Width(tileWidth).
		Height(tileHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Background(lipgloss.Color(palette.Hex(tile.Color))).
		Foreground(lipgloss.Color(palette.Hex(tile.Foreground))).
		Bold(selected).
		Render(label)
}

// hitTest maps a screen cell to a slot. Gaps between tiles and cells outside
// the grid report false.
func hitTest(x, y, slots int) (int, bool) {
	if x < gridLeft || y < gridTop {
		return 0, false
	}
	cx, cy := x-gridLeft, y-gridTop
	stepX, stepY := tileWidth+tileGap, tileHeight+tileGap

	if cx%stepX >= tileWidth || cy%stepY >= tileHeight {
		return 0, false
	}
	col, row := cx/stepX, cy/stepY
	if col >= gridColumns {
		return 0, false
	}
	slot := row*gridColumns + col
	if slot >= slots {
		return 0, false
	}
	return slot, true
}
