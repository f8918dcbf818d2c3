package blackhole

import "github.com/rocketscienceinc/blackhole/internal/entity"

// Forfeit describes a player that faulted, played illegally or ran out of time.
type Forfeit struct {
	Color  entity.Color
	Round  int
	Reason error
}

// Result holds the final scores. It is fixed once the game ends.
type Result struct {
	Scores     map[entity.Color]int
	Forfeit    *Forfeit
	Resolution *Resolution
}

func (that *Result) Score(color entity.Color) int {
	return that.Scores[color]
}

func (that *Result) Forfeited() bool {
	return that.Forfeit != nil
}

// Winner returns the color with the strictly greater score, or entity.None on a tie.
func (that *Result) Winner() entity.Color {
	red, blue := that.Score(entity.Red), that.Score(entity.Blue)

	switch {
	case red > blue:
		return entity.Red
	case blue > red:
		return entity.Blue
	default:
		return entity.None
	}
}
