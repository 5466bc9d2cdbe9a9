package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/rpsls/internal/config"
	"github.com/robalobadob/rpsls/internal/console"
	"github.com/robalobadob/rpsls/internal/game"
	"github.com/robalobadob/rpsls/internal/session"
	"github.com/robalobadob/rpsls/internal/store"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: colorable.NewColorableStderr()})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	ctx := context.Background()
	ledger, err := openLedger(ctx, cfg.Ledger)
	if err != nil {
		log.Fatal().Err(err).Str("ledger", cfg.Ledger).Msg("failed to open session ledger")
	}
	defer ledger.Close()

	in := console.NewReader(os.Stdin)
	out := console.NewWriter(os.Stdout, cfg.ClearMode)

	human := game.NewPlayer(cfg.PlayerName, game.NewHumanInput(in, out))
	computer := game.NewPlayer("computer", game.NewOpponent(cfg.Seed, log.Logger))
	match := game.New(human, computer, log.Logger)

	log.Debug().Uint64("seed", cfg.Seed).Str("ledger", cfg.Ledger).Msg("starting session")
	if err := session.New(in, out, match, ledger, log.Logger).Run(ctx); err != nil {
		log.Error().Err(err).Msg("session ended with error")
		ledger.Close()
		os.Exit(1)
	}
}

func openLedger(ctx context.Context, kind string) (store.Store, error) {
	if kind == "sqlite" {
		return store.NewSQLiteStore(ctx, log.Logger)
	}
	return store.NewMemoryStore(), nil
}
