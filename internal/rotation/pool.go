// Package rotation assigns palette colours to a fixed set of tiles and swaps
// a tile's colour for the longest-waiting unused one on every click.
package rotation

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/five82/mosdash/internal/palette"
)

// DefaultSlots is the tile count of the reference 3x3 grid.
const DefaultSlots = 9

var (
	ErrNoSlots     = errors.New("slot count must be positive")
	ErrNoReserve   = errors.New("slot count leaves no reserve colour")
	ErrUnknownSlot = errors.New("unknown slot")
)

// Assignment describes what a slot shows after initialisation or rotation.
type Assignment struct {
	Slot       int
	Color      color.RGBA
	Label      string
	Foreground color.RGBA
}

// Pool owns the slot colours and the reserve queue. The colours in slots plus
// the reserve are always exactly the palette, each once.
//
// A Pool is not safe for concurrent use.
type Pool struct {
	palette *palette.Palette
	slots   []color.RGBA
	reserve queue
	clicks  int
}

// New shuffles the palette with rng, hands the first slotCount colours to the
// slots in shuffle order and queues the rest as the reserve.
func New(p *palette.Palette, slotCount int, rng *rand.Rand) (*Pool, error) {
	if slotCount <= 0 {
		return nil, ErrNoSlots
	}
	if slotCount >= p.Len() {
		return nil, fmt.Errorf("%w: %d slots for %d colours", ErrNoReserve, slotCount, p.Len())
	}

	colors := p.Colors()
	rng.Shuffle(len(colors), func(i, j int) {
		colors[i], colors[j] = colors[j], colors[i]
	})

	pool := &Pool{
		palette: p,
		slots:   colors[:slotCount:slotCount],
		reserve: newQueue(colors[slotCount:]),
	}
	return pool, nil
}

// Rotate returns slot's colour to the back of the reserve and gives the slot
// the colour at the front.
func (p *Pool) Rotate(slot int) (Assignment, error) {
	if slot < 0 || slot >= len(p.slots) {
		return Assignment{}, fmt.Errorf("%w: %d", ErrUnknownSlot, slot)
	}
	p.reserve.push(p.slots[slot])
	p.slots[slot] = p.reserve.pop()
	p.clicks++
	return p.assignment(slot), nil
}

// Slot reports what slot currently shows.
func (p *Pool) Slot(slot int) (Assignment, error) {
	if slot < 0 || slot >= len(p.slots) {
		return Assignment{}, fmt.Errorf("%w: %d", ErrUnknownSlot, slot)
	}
	return p.assignment(slot), nil
}

// Slots reports every slot in order.
func (p *Pool) Slots() []Assignment {
	out := make([]Assignment, len(p.slots))
	for i := range p.slots {
		out[i] = p.assignment(i)
	}
	return out
}

// Reserve returns the queued colours, front first.
func (p *Pool) Reserve() []color.RGBA {
	return p.reserve.items()
}

// Len returns the slot count.
func (p *Pool) Len() int { return len(p.slots) }

// Clicks returns how many rotations have happened.
func (p *Pool) Clicks() int { return p.clicks }

func (p *Pool) assignment(slot int) Assignment {
	c := p.slots[slot]
	label, _ := p.palette.NameOf(c)
	return Assignment{
		Slot:       slot,
		Color:      c,
		Label:      label,
		Foreground: p.palette.Foreground(c),
	}
}
