// Package palette holds the fixed set of named tile colours.
package palette

import (
	"errors"
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Entry is a single named colour.
type Entry struct {
	Name  string
	Color color.RGBA
}

// Palette is an ordered, immutable mapping from colour name to value.
type Palette struct {
	entries []Entry
	byName  map[string]int
	byColor map[color.RGBA]int
	white   int
	black   int
}

const (
	WhiteName = "Белый"
	BlackName = "Чёрный"
)

// PlainWhite is the foreground used for every tile that is not the palette's white.
var PlainWhite = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

var (
	ErrEmpty           = errors.New("palette is empty")
	ErrDuplicateName   = errors.New("duplicate colour name")
	ErrDuplicateColor  = errors.New("duplicate colour value")
	ErrMissingContrast = errors.New("contrast colour not in palette")
)

// New builds a palette from entries. whiteName and blackName designate the
// entries used by the contrast rule.
func New(entries []Entry, whiteName, blackName string) (*Palette, error) {
	if len(entries) == 0 {
		return nil, ErrEmpty
	}
	p := &Palette{
		entries: make([]Entry, len(entries)),
		byName:  make(map[string]int, len(entries)),
		byColor: make(map[color.RGBA]int, len(entries)),
	}
	copy(p.entries, entries)
	for i, e := range p.entries {
		if _, ok := p.byName[e.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, e.Name)
		}
		if prev, ok := p.byColor[e.Color]; ok {
			return nil, fmt.Errorf("%w: %q and %q", ErrDuplicateColor, p.entries[prev].Name, e.Name)
		}
		p.byName[e.Name] = i
		p.byColor[e.Color] = i
	}

	var ok bool
	if p.white, ok = p.byName[whiteName]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingContrast, whiteName)
	}
	if p.black, ok = p.byName[blackName]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingContrast, blackName)
	}
	return p, nil
}

// Reference returns the ten-colour palette the widget ships with.
func Reference() *Palette {
	p, err := New([]Entry{
		{WhiteName, rgb(0xFF, 0xFF, 0xFF)},
		{BlackName, rgb(0x00, 0x00, 0x00)},
		{"Коричневый", rgb(0xA5, 0x72, 0x27)},
		{"Синий", rgb(0x33, 0x00, 0xEF)},
		{"Голубой", rgb(0x00, 0xD4, 0xFD)},
		{"Красный", rgb(0xFF, 0x00, 0x00)},
		{"Жёлтый", rgb(0xDE, 0xE0, 0x01)},
		{"Зелёный", rgb(0x2B, 0xFF, 0x00)},
		{"Серый", rgb(0x6B, 0x6B, 0x6B)},
		{"Розовый", rgb(0xFF, 0x9A, 0x9A)},
	}, WhiteName, BlackName)
	if err != nil {
		panic(err)
	}
	return p
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// Len returns the number of entries.
func (p *Palette) Len() int { return len(p.entries) }

// Colors returns the colour values in palette order.
func (p *Palette) Colors() []color.RGBA {
	out := make([]color.RGBA, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.Color
	}
	return out
}

// Names returns the colour names in palette order.
func (p *Palette) Names() []string {
	out := make([]string, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.Name
	}
	return out
}

// Lookup returns the colour registered under name.
func (p *Palette) Lookup(name string) (color.RGBA, bool) {
	i, ok := p.byName[name]
	if !ok {
		return color.RGBA{}, false
	}
	return p.entries[i].Color, true
}

// NameOf returns the label of the entry whose value equals c.
func (p *Palette) NameOf(c color.RGBA) (string, bool) {
	i, ok := p.byColor[c]
	if !ok {
		return "", false
	}
	return p.entries[i].Name, true
}

// White returns the designated white entry.
func (p *Palette) White() color.RGBA { return p.entries[p.white].Color }

// Black returns the designated black entry.
func (p *Palette) Black() color.RGBA { return p.entries[p.black].Color }

// Foreground picks the label colour for a tile painted c: the palette's black
// on the palette's white, plain white on everything else.
func (p *Palette) Foreground(c color.RGBA) color.RGBA {
	if c == p.White() {
		return p.Black()
	}
	return PlainWhite
}

// Hex renders c as #rrggbb for terminal styling. Alpha is dropped.
func Hex(c color.RGBA) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
