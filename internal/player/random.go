package player

import (
	"errors"
	"math/rand"

	"github.com/rocketscienceinc/blackhole/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// Random plays a uniformly random empty cell.
type Random struct {
	name string
	rnd  *rand.Rand
}

func NewRandom(name string, seed int64) *Random {
	return &Random{
		name: name,
		rnd:  rand.New(rand.NewSource(seed)), //nolint: gosec // it's ok
	}
}

func (that *Random) Name() string {
	return that.name
}

func (that *Random) Decide(view View, _ int) (entity.Coord, error) {
	availableCells := view.EmptyCells()
	if len(availableCells) == 0 {
		return entity.Coord{}, ErrNoAvailableMoves
	}

	return availableCells[that.rnd.Intn(len(availableCells))], nil
}
