package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/blackhole/internal/apperror"
)

const (
	// Rows is the height of the triangle; row r holds r+1 cells.
	Rows = 6
	// CellCount is the number of cells on the board.
	CellCount = Rows * (Rows + 1) / 2
)

// Board is the triangular grid. It is a plain value: assigning or returning
// a Board copies every cell, so a copy never aliases engine state.
type Board struct {
	Cells [CellCount]Cell `json:"cells"`
}

func NewBoard() Board {
	return Board{}
}

// Cell returns the content of c.
func (that *Board) Cell(c Coord) (Cell, error) {
	if !c.Valid() {
		return Cell{}, fmt.Errorf("%w: %s", apperror.ErrInvalidCell, c)
	}

	return that.Cells[c.index()], nil
}

// Adjacent returns the in-bounds neighbours of c.
func (that *Board) Adjacent(c Coord) []Coord {
	return Adjacent(c)
}

// EmptyCells lists every empty cell, lowest row first, then lowest column.
func (that *Board) EmptyCells() []Coord {
	var empty []Coord

	for row := 0; row < Rows; row++ {
		for col := 0; col <= row; col++ {
			c := Coord{Row: row, Col: col}
			if that.Cells[c.index()].IsEmpty() {
				empty = append(empty, c)
			}
		}
	}

	return empty
}

// Place puts a tile on an empty cell.
func (that *Board) Place(c Coord, color Color, value int) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCell, c)
	}

	if !that.Cells[c.index()].IsEmpty() {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, c)
	}

	that.Cells[c.index()] = Occupied(color, value)

	return nil
}

// Clear nullifies c. A nullified cell is neither empty nor scored.
func (that *Board) Clear(c Coord) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCell, c)
	}

	that.Cells[c.index()] = Cell{State: CellNullified}

	return nil
}

// Snapshot returns an independent copy of the board.
func (that Board) Snapshot() Board {
	return that
}

// Rows returns the cells grouped by row; the slices are fresh copies.
func (that Board) Rows() [][]Cell {
	rows := make([][]Cell, Rows)
	for row := 0; row < Rows; row++ {
		start := Coord{Row: row}.index()
		rows[row] = append([]Cell(nil), that.Cells[start:start+row+1]...)
	}

	return rows
}

// String renders the board as a centred triangle of cell tags.
func (that Board) String() string {
	var sb strings.Builder

	for row, cells := range that.Rows() {
		sb.WriteString(strings.Repeat("  ", Rows-row-1))
		for _, cell := range cells {
			fmt.Fprintf(&sb, "%-4s", cell)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
