package blackhole

import (
	"log/slog"
	"time"
)

// Option configures a Game in New.
type Option func(game *Game)

// WithSeed fixes the seed of the first-mover coin flip.
func WithSeed(seed int64) Option {
	return func(game *Game) {
		game.seed = seed
	}
}

// WithClock replaces the wall clock used to time decisions.
func WithClock(clock func() time.Time) Option {
	return func(game *Game) {
		game.clock = clock
	}
}

// WithLogger sets the logger for turn and outcome events. Output is discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(game *Game) {
		game.logger = logger
	}
}
