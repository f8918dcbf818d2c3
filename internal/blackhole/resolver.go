package blackhole

import (
	"fmt"

	"github.com/rocketscienceinc/blackhole/internal/apperror"
	"github.com/rocketscienceinc/blackhole/internal/entity"
)

// Resolution is the outcome of swallowing the hole's neighbourhood.
type Resolution struct {
	Hole           entity.Coord
	Nullified      []entity.Coord
	NullifiedValue int
	Scores         map[entity.Color]int
}

// Resolve picks the hole (first empty cell, lowest row then lowest column),
// nullifies every cell adjacent to it and sums the surviving tiles per color.
// The board is modified in place.
func Resolve(board *entity.Board) (*Resolution, error) {
	empty := board.EmptyCells()
	if len(empty) == 0 {
		return nil, apperror.ErrNoHole
	}

	resolution := &Resolution{
		Hole: empty[0],
		Scores: map[entity.Color]int{
			entity.Red:  0,
			entity.Blue: 0,
		},
	}

	for _, coord := range board.Adjacent(resolution.Hole) {
		cell, err := board.Cell(coord)
		if err != nil {
			return nil, fmt.Errorf("failed to read neighbour: %w", err)
		}

		if cell.IsOccupied() {
			resolution.NullifiedValue += cell.Value
		}

		if err = board.Clear(coord); err != nil {
			return nil, fmt.Errorf("failed to clear neighbour: %w", err)
		}

		resolution.Nullified = append(resolution.Nullified, coord)
	}

	for _, cell := range board.Cells {
		if cell.IsOccupied() {
			resolution.Scores[cell.Color] += cell.Value
		}
	}

	return resolution, nil
}
