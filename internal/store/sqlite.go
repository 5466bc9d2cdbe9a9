// internal/store/sqlite.go
//
// SQLite-backed session ledger.
// Responsibilities:
//   - Opening a private in-memory SQLite database (one connection, so every
//     query sees the same database).
//   - Applying the embedded migrations from sql/*.sql (idempotent, recorded in _migrations).
//   - Saving and reading match records; the summary is computed in SQL.
//
// The database lives and dies with the process.

package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/robalobadob/rpsls/internal/game"
)

//go:embed sql/*.sql
var migrations embed.FS

const memoryDSN = ":memory:"

type sqliteStore struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewSQLiteStore opens an in-memory database and applies migrations.
func NewSQLiteStore(ctx context.Context, log zerolog.Logger) (Store, error) {
	db, err := sql.Open("sqlite3", memoryDSN)
	if err != nil {
		return nil, err
	}
	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if err := migrate(ctx, db, log); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db, log: log}, nil
}

// migrate applies the embedded sql/*.sql files in lexical order.
// Each file runs inside its own transaction and is recorded in _migrations.
func migrate(ctx context.Context, db *sql.DB, log zerolog.Logger) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	var files []string
	if err := fs.WalkDir(migrations, "sql", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walk sql dir: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Debug().Str("migration", f).Msg("applied")
	}
	return nil
}

func (s *sqliteStore) SaveMatch(ctx context.Context, r MatchRecord) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO matches
            (id, player, started_at, finished_at, rounds, human_score, computer_score,
             winner, human_history, computer_history)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Player,
		r.StartedAt.UTC().Format(time.RFC3339Nano), r.FinishedAt.UTC().Format(time.RFC3339Nano),
		r.Rounds, r.HumanScore, r.ComputerScore,
		r.Winner.String(), encodeMoves(r.HumanHistory), encodeMoves(r.ComputerHistory),
	)
	var se sqlite3.Error
	if errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintUnique {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("insert match %s: %w", r.ID, err)
	}
	return nil
}

func (s *sqliteStore) Matches(ctx context.Context) ([]MatchRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, player, started_at, finished_at, rounds, human_score, computer_score,
               winner, human_history, computer_history
        FROM matches
        ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MatchRecord
	for rows.Next() {
		var (
			r              MatchRecord
			started, ended string
			winner, hh, ch string
		)
		if err := rows.Scan(&r.ID, &r.Player, &started, &ended, &r.Rounds, &r.HumanScore,
			&r.ComputerScore, &winner, &hh, &ch); err != nil {
			return nil, err
		}
		if r.StartedAt, err = parseTime(started); err != nil {
			return nil, fmt.Errorf("match %s: %w", r.ID, err)
		}
		if r.FinishedAt, err = parseTime(ended); err != nil {
			return nil, fmt.Errorf("match %s: %w", r.ID, err)
		}
		r.Winner = parseOutcome(winner)
		if r.HumanHistory, err = decodeMoves(hh); err != nil {
			return nil, fmt.Errorf("match %s: %w", r.ID, err)
		}
		if r.ComputerHistory, err = decodeMoves(ch); err != nil {
			return nil, fmt.Errorf("match %s: %w", r.ID, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *sqliteStore) Summary(ctx context.Context) (Summary, error) {
	var sum Summary
	err := s.db.QueryRowContext(ctx, `
        SELECT COUNT(1),
               COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
               COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
               COALESCE(SUM(rounds), 0)
        FROM matches`,
		game.HumanWins.String(), game.ComputerWins.String(),
	).Scan(&sum.Matches, &sum.HumanWins, &sum.ComputerWins, &sum.Rounds)
	return sum, err
}

func (s *sqliteStore) Close() error { return s.db.Close() }

// encodeMoves stores a history as comma-separated move names.
func encodeMoves(ms []game.Move) string {
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = m.String()
	}
	return strings.Join(names, ",")
}

func decodeMoves(s string) ([]game.Move, error) {
	if s == "" {
		return []game.Move{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]game.Move, len(parts))
	for i, p := range parts {
		m, err := game.ParseMove(p)
		if err != nil {
			return nil, fmt.Errorf("decode %q: %w", p, err)
		}
		out[i] = m
	}
	return out, nil
}

func parseOutcome(s string) game.Outcome {
	switch s {
	case game.HumanWins.String():
		return game.HumanWins
	case game.ComputerWins.String():
		return game.ComputerWins
	default:
		return game.Tie
	}
}

// parseTime reads a timestamp stored by SaveMatch.
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}
