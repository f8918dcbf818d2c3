// Package player defines the decision capability the engine calls into,
// plus the reference random strategy.
package player

import (
	"time"

	"github.com/rocketscienceinc/blackhole/internal/entity"
)

// View is the read-only game state handed to a player on each turn.
// It is built fresh for every call and shares nothing with the engine.
type View interface {
	Board() entity.Board
	EmptyCells() []entity.Coord
	Color() entity.Color
	TimeRemaining() time.Duration
	Adjacent(c entity.Coord) []entity.Coord
}

// Player chooses where to place the tile valued value.
// Any returned error forfeits the game; so does a panic.
type Player interface {
	Name() string
	Decide(view View, value int) (entity.Coord, error)
}

// Func adapts a plain function into a Player.
type Func struct {
	PlayerName string
	DecideFunc func(view View, value int) (entity.Coord, error)
}

func (that *Func) Name() string {
	return that.PlayerName
}

func (that *Func) Decide(view View, value int) (entity.Coord, error) {
	return that.DecideFunc(view, value)
}
