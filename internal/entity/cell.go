package entity

import (
	"errors"
	"fmt"
	"strconv"
)

// Color identifies the owner of a tile. Red always moves first.
type Color uint8

const (
	None Color = iota
	Red
	Blue
)

var ErrUnknownColor = errors.New("unknown color")

// Letter returns the single-letter tag used on the rendered board.
func (c Color) Letter() byte {
	switch c {
	case Red:
		return 'R'
	case Blue:
		return 'B'
	default:
		return 'X'
	}
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return "none"
	}
}

// Opponent returns the other playing color.
func (c Color) Opponent() Color {
	switch c {
	case Red:
		return Blue
	case Blue:
		return Red
	default:
		return None
	}
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	switch string(text) {
	case "red":
		*c = Red
	case "blue":
		*c = Blue
	case "none", "":
		*c = None
	default:
		return fmt.Errorf("%w: %q", ErrUnknownColor, text)
	}

	return nil
}

type CellState uint8

const (
	CellEmpty CellState = iota
	CellOccupied
	CellNullified
)

// Cell is a single board slot. The zero value is an empty cell.
type Cell struct {
	State CellState `json:"state"`
	Color Color     `json:"color,omitempty"`
	Value int       `json:"value,omitempty"`
}

func Occupied(color Color, value int) Cell {
	return Cell{State: CellOccupied, Color: color, Value: value}
}

func (that Cell) IsEmpty() bool {
	return that.State == CellEmpty
}

func (that Cell) IsOccupied() bool {
	return that.State == CellOccupied
}

func (that Cell) IsNullified() bool {
	return that.State == CellNullified
}

// String returns the two-character tag of the cell, e.g. "R7" or "X0".
// Empty and nullified cells share the "X0" tag.
func (that Cell) String() string {
	if !that.IsOccupied() {
		return "X0"
	}

	return string(that.Color.Letter()) + strconv.Itoa(that.Value)
}
