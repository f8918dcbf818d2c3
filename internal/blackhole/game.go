// Package blackhole runs a single game of Black Hole: ten rounds in which Red
// and Blue each place the tile numbered after the round, followed by the
// collapse of the one cell left empty.
package blackhole

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/rocketscienceinc/blackhole/internal/apperror"
	"github.com/rocketscienceinc/blackhole/internal/entity"
	"github.com/rocketscienceinc/blackhole/internal/player"
)

const (
	// Rounds is the number of tiles each player places.
	Rounds = 10

	// MaxScore is awarded to the opponent of a forfeiting player.
	MaxScore = math.MaxInt
)

// Game is one session between two players. It is not safe for concurrent use.
type Game struct {
	logger *slog.Logger
	clock  func() time.Time
	seed   int64

	board    entity.Board
	players  [2]player.Player
	timeLeft [2]time.Duration

	result *Result
}

// New creates a game between p0 and p1. A coin flip seeded by the game seed
// decides which of them plays Red and moves first.
func New(p0, p1 player.Player, timeLimit time.Duration, opts ...Option) *Game {
	game := &Game{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		clock:  time.Now,
		seed:   time.Now().UnixNano(),
		board:  entity.NewBoard(),
	}

	for _, opt := range opts {
		opt(game)
	}

	coin := rand.New(rand.NewSource(game.seed)) //nolint: gosec // it's ok
	if coin.Intn(2) == 0 {
		game.players = [2]player.Player{p0, p1}
	} else {
		game.players = [2]player.Player{p1, p0}
	}

	game.timeLeft = [2]time.Duration{timeLimit, timeLimit}

	return game
}

// Play runs every round and returns the final scores. Player faults end the
// game with a forfeit and are reported in the result, not as an error.
func (that *Game) Play() (*Result, error) {
	if that.result != nil {
		return that.result, apperror.ErrGameFinished
	}

	log := that.logger.With("method", "Play", "seed", that.seed)

	for round := 1; round <= Rounds; round++ {
		for seat := range that.players {
			forfeit, err := that.takeTurn(round, seat)
			if err != nil {
				return nil, fmt.Errorf("round %d: %w", round, err)
			}

			if forfeit == nil {
				continue
			}

			that.result = forfeitResult(forfeit)
			log.Info("player forfeited",
				"player", that.players[seat].Name(),
				"color", forfeit.Color,
				"round", round,
				"reason", forfeit.Reason)

			return that.result, nil
		}
	}

	resolution, err := Resolve(&that.board)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve endgame: %w", err)
	}

	that.result = &Result{
		Scores:     resolution.Scores,
		Resolution: resolution,
	}

	log.Info("game finished",
		"hole", resolution.Hole.String(),
		"red", that.result.Score(entity.Red),
		"blue", that.result.Score(entity.Blue),
		"winner", that.result.Winner())

	return that.result, nil
}

// takeTurn asks the player in seat for a move and commits it.
// A non-nil Forfeit means the player lost the game on this turn; an error
// is an engine failure and is never charged to the player.
func (that *Game) takeTurn(round, seat int) (*Forfeit, error) {
	color := ColorOf(seat)
	current := that.players[seat]

	turnView := view{
		board:    that.board.Snapshot(),
		color:    color,
		timeLeft: that.timeLeft[seat],
	}

	start := that.clock()

	move, err := decide(current, turnView, round)
	if err != nil {
		return &Forfeit{Color: color, Round: round, Reason: fmt.Errorf("%w: %w", apperror.ErrPlayerFault, err)}, nil
	}

	elapsed := that.clock().Sub(start)
	that.timeLeft[seat] -= elapsed

	if !entity.ContainsCoord(that.board.EmptyCells(), move) {
		return &Forfeit{Color: color, Round: round, Reason: fmt.Errorf("%w: %s is not an empty cell", apperror.ErrIllegalMove, move)}, nil
	}

	if that.timeLeft[seat] < 0 {
		return &Forfeit{Color: color, Round: round, Reason: fmt.Errorf("%w: %s over budget", apperror.ErrTimeExhausted, -that.timeLeft[seat])}, nil
	}

	if err = that.commit(move, color, round); err != nil {
		return nil, err
	}

	that.logger.Debug("tile placed",
		"player", current.Name(),
		"color", color,
		"value", round,
		"cell", move.String(),
		"elapsed", elapsed,
		"time_left", that.timeLeft[seat])

	return nil, nil
}

// commit places a move that already passed validation.
func (that *Game) commit(move entity.Coord, color entity.Color, value int) error {
	if err := that.board.Place(move, color, value); err != nil {
		return fmt.Errorf("failed to place validated move: %w", err)
	}

	return nil
}

// decide calls the player, turning a panic into an error.
func decide(p player.Player, v player.View, value int) (move entity.Coord, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return p.Decide(v, value)
}

func forfeitResult(forfeit *Forfeit) *Result {
	return &Result{
		Scores: map[entity.Color]int{
			forfeit.Color:            0,
			forfeit.Color.Opponent(): MaxScore,
		},
		Forfeit: forfeit,
	}
}

// ColorOf returns the color played from seat; seat 0 is Red.
func ColorOf(seat int) entity.Color {
	if seat == 0 {
		return entity.Red
	}

	return entity.Blue
}

func seatOf(color entity.Color) int {
	if color == entity.Red {
		return 0
	}

	return 1
}

// Board returns a copy of the current board.
func (that *Game) Board() entity.Board {
	return that.board.Snapshot()
}

// Players returns the players in move order: Red first, then Blue.
func (that *Game) Players() [2]player.Player {
	return that.players
}

// Player returns the player seated as color.
func (that *Game) Player(color entity.Color) player.Player {
	return that.players[seatOf(color)]
}

// TimeRemaining returns the budget left for color. It is negative after a timeout.
func (that *Game) TimeRemaining(color entity.Color) time.Duration {
	return that.timeLeft[seatOf(color)]
}

// Seed returns the seed of the first-mover coin flip.
func (that *Game) Seed() int64 {
	return that.seed
}

// Result returns the final result once Play has finished.
func (that *Game) Result() (*Result, bool) {
	return that.result, that.result != nil
}

func (that *Game) String() string {
	var sb strings.Builder

	sb.WriteString(that.board.String())
	fmt.Fprintf(&sb, "RED: %s, %.3f seconds left.\n", that.players[0].Name(), that.timeLeft[0].Seconds())
	fmt.Fprintf(&sb, "BLU: %s, %.3f seconds left.\n", that.players[1].Name(), that.timeLeft[1].Seconds())

	return sb.String()
}
