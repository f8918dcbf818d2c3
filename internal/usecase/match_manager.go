package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/blackhole/internal/blackhole"
	"github.com/rocketscienceinc/blackhole/internal/entity"
	"github.com/rocketscienceinc/blackhole/internal/player"
)

var ErrStorageDisabled = errors.New("match storage is disabled")

type matchRepo interface {
	Save(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	Recent(ctx context.Context, limit int) ([]string, error)
}

type MatchManager struct {
	logger    *slog.Logger
	matchRepo matchRepo

	timeLimit time.Duration
	seed      int64
	clock     func() time.Time
}

// NewMatchManager - matchRepo may be nil, in which case matches are not stored.
// A zero seed draws a fresh seed from the clock for every match.
func NewMatchManager(logger *slog.Logger, matchRepo matchRepo, timeLimit time.Duration, seed int64) *MatchManager {
	return &MatchManager{
		logger:    logger,
		matchRepo: matchRepo,

		timeLimit: timeLimit,
		seed:      seed,
		clock:     time.Now,
	}
}

// Play - runs one game between p0 and p1 and stores its summary.
// The game itself is never interrupted; ctx only bounds storage calls.
func (that *MatchManager) Play(ctx context.Context, p0, p1 player.Player) (*entity.Match, *blackhole.Game, error) {
	matchID := uuid.NewString()
	log := that.logger.With("method", "Play", "match", matchID)

	seed := that.seed
	if seed == 0 {
		seed = that.clock().UnixNano()
	}

	game := blackhole.New(p0, p1, that.timeLimit,
		blackhole.WithSeed(seed),
		blackhole.WithLogger(log),
	)

	result, err := game.Play()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to play game: %w", err)
	}

	match := that.toMatch(matchID, game, result)

	if that.matchRepo == nil {
		return match, game, nil
	}

	if err = that.matchRepo.Save(ctx, match); err != nil {
		return match, game, fmt.Errorf("failed to save match: %w", err)
	}

	log.Info("match saved", "status", match.Status, "winner", match.Winner)

	return match, game, nil
}

func (that *MatchManager) GetMatch(ctx context.Context, id string) (*entity.Match, error) {
	if that.matchRepo == nil {
		return nil, ErrStorageDisabled
	}

	match, err := that.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return match, nil
}

func (that *MatchManager) RecentMatches(ctx context.Context, limit int) ([]*entity.Match, error) {
	if that.matchRepo == nil {
		return nil, ErrStorageDisabled
	}

	ids, err := that.matchRepo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	matches := make([]*entity.Match, 0, len(ids))
	for _, id := range ids {
		match, err := that.GetMatch(ctx, id)
		if err != nil {
			return nil, err
		}

		matches = append(matches, match)
	}

	return matches, nil
}

func (that *MatchManager) toMatch(id string, game *blackhole.Game, result *blackhole.Result) *entity.Match {
	match := &entity.Match{
		ID:     id,
		Seed:   game.Seed(),
		Status: entity.StatusFinished,
		Board:  game.Board(),
		Scores: map[entity.Color]int{
			entity.Red:  result.Score(entity.Red),
			entity.Blue: result.Score(entity.Blue),
		},
		Winner:     result.Winner(),
		FinishedAt: that.clock().UTC(),
	}

	match.Red = entity.Player{
		Name:     game.Player(entity.Red).Name(),
		Color:    entity.Red,
		TimeLeft: game.TimeRemaining(entity.Red),
	}
	match.Blue = entity.Player{
		Name:     game.Player(entity.Blue).Name(),
		Color:    entity.Blue,
		TimeLeft: game.TimeRemaining(entity.Blue),
	}

	if result.Forfeited() {
		match.Status = entity.StatusForfeited
		match.Forfeit = &entity.Forfeit{
			Color:  result.Forfeit.Color,
			Round:  result.Forfeit.Round,
			Reason: result.Forfeit.Reason.Error(),
		}
	}

	if result.Resolution != nil {
		hole := result.Resolution.Hole
		match.Hole = &hole
	}

	return match
}
