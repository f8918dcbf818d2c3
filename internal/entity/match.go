package entity

import (
	"errors"
	"fmt"
	"time"
)

const (
	StatusFinished  = "finished"
	StatusForfeited = "forfeited"
)

var ErrUnknownMatchStatus = errors.New("unknown match status")

// Forfeit records which side lost by fault and why.
type Forfeit struct {
	Color  Color  `json:"color"`
	Round  int    `json:"round"`
	Reason string `json:"reason"`
}

// Match is the stored summary of one finished game.
type Match struct {
	ID         string        `json:"id"`
	Seed       int64         `json:"seed"`
	Status     string        `json:"status"`
	Red        Player        `json:"red"`
	Blue       Player        `json:"blue"`
	Board      Board         `json:"board"`
	Hole       *Coord        `json:"hole,omitempty"`
	Scores     map[Color]int `json:"scores"`
	Winner     Color         `json:"winner"`
	Forfeit    *Forfeit      `json:"forfeit,omitempty"`
	FinishedAt time.Time     `json:"finished_at"`
}

func (that *Match) IsForfeited() bool {
	return that.Status == StatusForfeited
}

func (that *Match) IsFinished() bool {
	return that.Status == StatusFinished
}

// PlayerByColor returns the side playing color.
func (that *Match) PlayerByColor(color Color) (Player, error) {
	switch color {
	case Red:
		return that.Red, nil
	case Blue:
		return that.Blue, nil
	default:
		return Player{}, fmt.Errorf("%w: %d", ErrUnknownColor, color)
	}
}

// ConfirmStatus checks that the match carries a known terminal status.
func (that *Match) ConfirmStatus() error {
	switch {
	case that.IsFinished(), that.IsForfeited():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMatchStatus, that.Status)
	}
}
