package entity

import "fmt"

// Coord addresses a cell as (row, col) with 0 <= col <= row.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// neighbourOffsets lists the six geometric neighbours of a cell in a fixed order.
var neighbourOffsets = [6][2]int{
	{0, -1},
	{0, 1},
	{-1, -1},
	{-1, 0},
	{1, 0},
	{1, 1},
}

func (that Coord) Valid() bool {
	return that.Row >= 0 && that.Row < Rows && that.Col >= 0 && that.Col <= that.Row
}

func (that Coord) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

func (that Coord) index() int {
	return that.Row*(that.Row+1)/2 + that.Col
}

// Adjacent returns all in-bounds neighbours of c. Out of bounds input yields nil.
func Adjacent(c Coord) []Coord {
	if !c.Valid() {
		return nil
	}

	out := make([]Coord, 0, len(neighbourOffsets))
	for _, offset := range neighbourOffsets {
		next := Coord{Row: c.Row + offset[0], Col: c.Col + offset[1]}
		if next.Valid() {
			out = append(out, next)
		}
	}

	return out
}

// ContainsCoord reports whether coords holds c.
func ContainsCoord(coords []Coord, c Coord) bool {
	for _, curr := range coords {
		if curr == c {
			return true
		}
	}

	return false
}
