// Package widget is the display controller: it owns the tile pool, turns
// fetch results into display text and pushes both to a Display.
package widget

import (
	"image/color"
	"sync"

	"github.com/five82/mosdash/internal/fetch"
	"github.com/five82/mosdash/internal/rotation"
)

// Display receives everything the screen shows.
type Display interface {
	OnColorRotated(slot int, c color.RGBA, label string, foreground color.RGBA)
	OnClicksUpdated(clicks int)
	OnTimeUpdated(text string, ok bool)
	OnTemperatureUpdated(text, errorText string)
}

// Controller serialises clicks on the pool and formats fetch results.
// Fetch results are applied in completion order: the last to finish wins.
type Controller struct {
	mu      sync.Mutex
	pool    *rotation.Pool
	display Display
}

// NewController wires pool to display.
func NewController(pool *rotation.Pool, display Display) *Controller {
	return &Controller{pool: pool, display: display}
}

// Paint pushes every slot's current colour, used once at startup.
func (c *Controller) Paint() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, a := range c.pool.Slots() {
		c.display.OnColorRotated(a.Slot, a.Color, a.Label, a.Foreground)
	}
	c.display.OnClicksUpdated(c.pool.Clicks())
}

// Click rotates slot and pushes its new colour and the click count.
func (c *Controller) Click(slot int) (rotation.Assignment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	a, err := c.pool.Rotate(slot)
	if err != nil {
		return rotation.Assignment{}, err
	}
	c.display.OnColorRotated(a.Slot, a.Color, a.Label, a.Foreground)
	c.display.OnClicksUpdated(c.pool.Clicks())
	return a, nil
}

// Slots returns the number of tiles.
func (c *Controller) Slots() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pool.Len()
}

// PublishTime shows a time fetch result.
func (c *Controller) PublishTime(res fetch.Result) {
	c.display.OnTimeUpdated(TimeText(res), res.OK())
}

// PublishTemperature shows a temperature fetch result.
func (c *Controller) PublishTemperature(res fetch.Result) {
	c.display.OnTemperatureUpdated(TemperatureText(res))
}
