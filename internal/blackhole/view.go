package blackhole

import (
	"time"

	"github.com/rocketscienceinc/blackhole/internal/entity"
)

// view is the per-turn snapshot handed to a player. It holds copies only.
type view struct {
	board    entity.Board
	color    entity.Color
	timeLeft time.Duration
}

func (that view) Board() entity.Board {
	return that.board.Snapshot()
}

func (that view) EmptyCells() []entity.Coord {
	return that.board.EmptyCells()
}

func (that view) Color() entity.Color {
	return that.color
}

func (that view) TimeRemaining() time.Duration {
	return that.timeLeft
}

func (that view) Adjacent(c entity.Coord) []entity.Coord {
	return entity.Adjacent(c)
}
