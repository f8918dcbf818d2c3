package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/blackhole/internal/blackhole"
	"github.com/rocketscienceinc/blackhole/internal/entity"
	"github.com/rocketscienceinc/blackhole/internal/player"
)

var (
	errRedisDown  = errors.New("redis down")
	errBotCrashed = errors.New("bot crashed")
)

type mockMatchRepo struct {
	mock.Mock
}

func (that *mockMatchRepo) Save(ctx context.Context, match *entity.Match) error {
	args := that.Called(ctx, match)
	return args.Error(0)
}

func (that *mockMatchRepo) GetByID(ctx context.Context, id string) (*entity.Match, error) {
	args := that.Called(ctx, id)
	match, _ := args.Get(0).(*entity.Match)
	return match, args.Error(1)
}

func (that *mockMatchRepo) Recent(ctx context.Context, limit int) ([]string, error) {
	args := that.Called(ctx, limit)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMatchManager_Play(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays and stores a finished match", func(t *testing.T) {
		// Given: a repository that accepts the match
		repo := &mockMatchRepo{}
		repo.On("Save", mock.Anything, mock.AnythingOfType("*entity.Match")).Return(nil).Once()

		manager := NewMatchManager(newTestLogger(), repo, time.Minute, 17)

		// When: two random players play
		match, game, err := manager.Play(ctx, player.NewRandom("Rando Calrissian", 1), player.NewRandom("Marlon Rando", 2))

		// Then: the stored summary mirrors the game
		require.NoError(t, err)
		repo.AssertExpectations(t)

		assert.NotEmpty(t, match.ID)
		assert.Equal(t, int64(17), match.Seed)
		assert.Equal(t, entity.StatusFinished, match.Status)
		assert.Nil(t, match.Forfeit)
		require.NotNil(t, match.Hole)
		assert.Equal(t, game.Board(), match.Board)
		assert.Equal(t, game.Player(entity.Red).Name(), match.Red.Name)
		assert.Equal(t, game.Player(entity.Blue).Name(), match.Blue.Name)
		assert.Equal(t, entity.Red, match.Red.Color)
		assert.Equal(t, entity.Blue, match.Blue.Color)

		result, finished := game.Result()
		require.True(t, finished)
		assert.Equal(t, result.Score(entity.Red), match.Scores[entity.Red])
		assert.Equal(t, result.Score(entity.Blue), match.Scores[entity.Blue])
		assert.Equal(t, result.Winner(), match.Winner)
		assert.Equal(t, result.Resolution.Hole, *match.Hole)
	})

	t.Run("Records a forfeit", func(t *testing.T) {
		repo := &mockMatchRepo{}
		repo.On("Save", mock.Anything, mock.AnythingOfType("*entity.Match")).Return(nil).Once()

		manager := NewMatchManager(newTestLogger(), repo, time.Minute, 3)

		crashy := &player.Func{
			PlayerName: "crashy",
			DecideFunc: func(player.View, int) (entity.Coord, error) {
				return entity.Coord{}, errBotCrashed
			},
		}

		// When: one side crashes on its first move
		match, game, err := manager.Play(ctx, crashy, player.NewRandom("Rando", 1))

		// Then: the match is marked forfeited with the reason kept as text
		require.NoError(t, err)
		assert.Equal(t, entity.StatusForfeited, match.Status)
		require.NotNil(t, match.Forfeit)
		assert.Equal(t, 1, match.Forfeit.Round)
		assert.Contains(t, match.Forfeit.Reason, errBotCrashed.Error())
		assert.Nil(t, match.Hole)

		crashyColor := match.Forfeit.Color
		assert.Same(t, crashy, game.Player(crashyColor))
		assert.Equal(t, 0, match.Scores[crashyColor])
		assert.Equal(t, blackhole.MaxScore, match.Scores[crashyColor.Opponent()])
		assert.Equal(t, crashyColor.Opponent(), match.Winner)
	})

	t.Run("Zero seed draws a seed per match", func(t *testing.T) {
		manager := NewMatchManager(newTestLogger(), nil, time.Minute, 0)
		manager.clock = func() time.Time { return time.Unix(0, 99) }

		match, _, err := manager.Play(ctx, player.NewRandom("a", 1), player.NewRandom("b", 2))

		require.NoError(t, err)
		assert.Equal(t, int64(99), match.Seed)
	})

	t.Run("Without storage the match is only returned", func(t *testing.T) {
		manager := NewMatchManager(newTestLogger(), nil, time.Minute, 5)

		match, game, err := manager.Play(ctx, player.NewRandom("a", 1), player.NewRandom("b", 2))

		require.NoError(t, err)
		assert.NotNil(t, match)
		assert.NotNil(t, game)
	})

	t.Run("Returns error if Save fails", func(t *testing.T) {
		repo := &mockMatchRepo{}
		repo.On("Save", mock.Anything, mock.AnythingOfType("*entity.Match")).Return(errRedisDown).Once()

		manager := NewMatchManager(newTestLogger(), repo, time.Minute, 5)

		match, _, err := manager.Play(ctx, player.NewRandom("a", 1), player.NewRandom("b", 2))

		require.ErrorIs(t, err, errRedisDown)
		assert.NotNil(t, match)
	})
}

func TestMatchManager_GetMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns stored match", func(t *testing.T) {
		repo := &mockMatchRepo{}
		stored := &entity.Match{ID: "m1", Status: entity.StatusFinished}
		repo.On("GetByID", mock.Anything, "m1").Return(stored, nil).Once()

		manager := NewMatchManager(newTestLogger(), repo, time.Minute, 1)

		match, err := manager.GetMatch(ctx, "m1")

		require.NoError(t, err)
		assert.Equal(t, stored, match)
	})

	t.Run("Wraps repository error", func(t *testing.T) {
		repo := &mockMatchRepo{}
		repo.On("GetByID", mock.Anything, "m1").Return(nil, errRedisDown).Once()

		manager := NewMatchManager(newTestLogger(), repo, time.Minute, 1)

		match, err := manager.GetMatch(ctx, "m1")

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, match)
	})

	t.Run("Storage disabled", func(t *testing.T) {
		manager := NewMatchManager(newTestLogger(), nil, time.Minute, 1)

		_, err := manager.GetMatch(ctx, "m1")

		require.ErrorIs(t, err, ErrStorageDisabled)
	})
}

func TestMatchManager_RecentMatches(t *testing.T) {
	ctx := context.Background()

	t.Run("Loads every recent match in order", func(t *testing.T) {
		repo := &mockMatchRepo{}
		repo.On("Recent", mock.Anything, 2).Return([]string{"m2", "m1"}, nil).Once()
		repo.On("GetByID", mock.Anything, "m2").Return(&entity.Match{ID: "m2"}, nil).Once()
		repo.On("GetByID", mock.Anything, "m1").Return(&entity.Match{ID: "m1"}, nil).Once()

		manager := NewMatchManager(newTestLogger(), repo, time.Minute, 1)

		matches, err := manager.RecentMatches(ctx, 2)

		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, "m2", matches[0].ID)
		assert.Equal(t, "m1", matches[1].ID)
		repo.AssertExpectations(t)
	})

	t.Run("Returns error if listing fails", func(t *testing.T) {
		repo := &mockMatchRepo{}
		repo.On("Recent", mock.Anything, 5).Return(nil, errRedisDown).Once()

		manager := NewMatchManager(newTestLogger(), repo, time.Minute, 1)

		matches, err := manager.RecentMatches(ctx, 5)

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, matches)
	})

	t.Run("Storage disabled", func(t *testing.T) {
		manager := NewMatchManager(newTestLogger(), nil, time.Minute, 1)

		_, err := manager.RecentMatches(ctx, 5)

		require.ErrorIs(t, err, ErrStorageDisabled)
	})
}
