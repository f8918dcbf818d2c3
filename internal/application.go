package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/blackhole/internal/config"
	"github.com/rocketscienceinc/blackhole/internal/player"
	"github.com/rocketscienceinc/blackhole/internal/repository"
	"github.com/rocketscienceinc/blackhole/internal/repository/storage"
	"github.com/rocketscienceinc/blackhole/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// now is the clock a zero config seed is drawn from.
var now = time.Now

// RunApp - plays one game between two random players and reports it on out.
func RunApp(logger *slog.Logger, conf *config.Config, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var matchRepo repository.MatchRepository

	if conf.Redis.Enabled {
		if conf.Redis.Host == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		matchRepo = repository.NewMatchRepository(redisStorage)
	}

	seed := matchSeed(conf)

	manager := usecase.NewMatchManager(logger, matchRepo, conf.TimeLimit, seed)

	one := player.NewRandom(conf.PlayerOne, seed)
	two := player.NewRandom(conf.PlayerTwo, seed+1)

	match, game, err := manager.Play(ctx, one, two)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	fmt.Fprint(out, game.String())
	fmt.Fprintf(out, "%s: %d\n", match.Red.Name, match.Scores[match.Red.Color])
	fmt.Fprintf(out, "%s: %d\n", match.Blue.Name, match.Scores[match.Blue.Color])

	log.Info("Match finished",
		"match", match.ID,
		"seed", match.Seed,
		"status", match.Status,
		"winner", match.Winner)

	return nil
}

// matchSeed returns the seed the whole match is played from. The coin flip
// uses it directly and the players use it and the next value, so Match.Seed
// is enough to replay the game.
func matchSeed(conf *config.Config) int64 {
	if conf.Seed != 0 {
		return conf.Seed
	}

	seed := now().UnixNano()
	if seed == 0 {
		seed = 1
	}

	return seed
}
