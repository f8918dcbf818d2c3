package entity

import "time"

// Player is the persisted view of one side of a match.
type Player struct {
	Name     string        `json:"name"`
	Color    Color         `json:"color"`
	TimeLeft time.Duration `json:"time_left"`
}
