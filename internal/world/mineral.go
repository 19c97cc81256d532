package world

import "image/color"

// Mineral identifies what an asteroid is made of and what loot it drops.
type Mineral uint8

const (
	Iron Mineral = iota
	Copper
	Gold
	Crystal
	MineralCount // sentinel, not a real mineral
)

// LootShape is the outline used to draw a mineral's loot.
type LootShape uint8

const (
	ShapeSquare LootShape = iota
	ShapeTriangle
	ShapeDiamond
	ShapeHexagon
)

// mineralEntry holds static info about a mineral.
type mineralEntry struct {
	Name  string
	Key   string // tuning file key
	Shape LootShape
	Color color.RGBA
}

var mineralTable = [MineralCount]mineralEntry{
	Iron:    {"Iron", "iron", ShapeSquare, color.RGBA{170, 170, 170, 255}},
	Copper:  {"Copper", "copper", ShapeTriangle, color.RGBA{230, 130, 60, 255}},
	Gold:    {"Gold", "gold", ShapeDiamond, color.RGBA{255, 215, 60, 255}},
	Crystal: {"Crystal", "crystal", ShapeHexagon, color.RGBA{120, 230, 255, 255}},
}

// String returns the display name.
func (m Mineral) String() string {
	if m < MineralCount {
		return mineralTable[m].Name
	}
	return "Unknown"
}

// Key returns the lowercase key used in the tuning file's price table.
func (m Mineral) Key() string {
	if m < MineralCount {
		return mineralTable[m].Key
	}
	return ""
}

// Shape returns the loot outline for the mineral.
func (m Mineral) Shape() LootShape {
	if m < MineralCount {
		return mineralTable[m].Shape
	}
	return ShapeSquare
}

// Color returns the mineral's display color.
func (m Mineral) Color() color.RGBA {
	if m < MineralCount {
		return mineralTable[m].Color
	}
	return color.RGBA{255, 255, 255, 255}
}

// Cargo counts units per mineral.
type Cargo [MineralCount]int

// Total returns the number of units held.
func (c *Cargo) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Present returns the minerals with a positive count, in mineral order.
func (c *Cargo) Present() []Mineral {
	var list []Mineral
	for m := Mineral(0); m < MineralCount; m++ {
		if c[m] > 0 {
			list = append(list, m)
		}
	}
	return list
}

// Empty reports whether no units are held.
func (c *Cargo) Empty() bool { return c.Total() == 0 }
