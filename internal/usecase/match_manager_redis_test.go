package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/blackhole/internal/player"
	"github.com/rocketscienceinc/blackhole/internal/repository"
	"github.com/rocketscienceinc/blackhole/testing/suite"
)

func TestMatchManager_Redis(t *testing.T) {
	t.Run("Played matches can be read back", func(t *testing.T) {
		// Given: a manager backed by a real redis
		ctx, st := suite.New(t)

		manager := NewMatchManager(st.Logger, repository.NewMatchRepository(st.Redis), time.Minute, 5)

		// When: two matches are played
		first, _, err := manager.Play(ctx, player.NewRandom("one", 5), player.NewRandom("two", 6))
		require.NoError(t, err)

		second, _, err := manager.Play(ctx, player.NewRandom("one", 7), player.NewRandom("two", 8))
		require.NoError(t, err)

		// Then: each is stored under its id
		stored, err := manager.GetMatch(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, first.Board, stored.Board)
		assert.Equal(t, first.Scores, stored.Scores)
		assert.Equal(t, int64(5), stored.Seed)

		// Then: the recent list is newest first
		recent, err := manager.RecentMatches(ctx, 10)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, second.ID, recent[0].ID)
		assert.Equal(t, first.ID, recent[1].ID)
	})
}
