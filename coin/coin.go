// Package coin defines the currency tags carried by every block cell.
package coin

import "fmt"

// Type tags a grid cell. The zero value None marks an empty cell.
type Type uint8

const (
	None Type = iota
	BTC
	ETH
	DOGE
	SOL
	XRP
)

// All lists the coin types in scoreboard order.
var All = []Type{BTC, ETH, DOGE, SOL, XRP}

var names = [...]string{
	None: "",
	BTC:  "BTC",
	ETH:  "ETH",
	DOGE: "DOGE",
	SOL:  "SOL",
	XRP:  "XRP",
}

func (t Type) String() string {
	if int(t) < len(names) {
		return names[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// Empty reports whether t marks an empty cell.
func (t Type) Empty() bool {
	return t == None
}

// Valid reports whether t is one of the five coin types.
func (t Type) Valid() bool {
	return t >= BTC && t <= XRP
}

// Parse returns the coin type with the given name.
func Parse(name string) (Type, error) {
	for _, t := range All {
		if names[t] == name {
			return t, nil
		}
	}
	return None, fmt.Errorf("unknown coin type %q", name)
}

var palette = [...][3]uint8{
	None: {0, 0, 0},
	BTC:  {247, 147, 26},
	ETH:  {98, 126, 234},
	DOGE: {194, 166, 51},
	SOL:  {153, 69, 255},
	XRP:  {0, 170, 228},
}

// RGB returns the brand color used to draw t.
func (t Type) RGB() [3]uint8 {
	if int(t) < len(palette) {
		return palette[t]
	}
	return palette[None]
}

// Symbol returns the single-letter mark drawn inside a cell of type t.
func (t Type) Symbol() rune {
	if !t.Valid() {
		return ' '
	}
	return rune(names[t][0])
}
