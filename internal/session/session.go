// internal/session/session.go
//
// Top-level interactive loop.
//   - Welcome banner and rules.
//   - One match per iteration, with a per-round transcript.
//   - Each finished match is saved to the ledger.
//   - Play-again prompt (yes/y/no/n), re-asked until valid.
//   - Session summary and goodbye.
//
// End of input at any prompt ends the session like a "no" would.

package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/rpsls/assets"
	"github.com/robalobadob/rpsls/internal/game"
	"github.com/robalobadob/rpsls/internal/store"
)

const separator = "----------------------------------"

// Output is the display side of the terminal.
type Output interface {
	WriteLine(s string)
	ClearScreen()
}

// Session wires a match to the terminal and the ledger.
type Session struct {
	in     game.LineReader
	out    Output
	match  *game.Match
	ledger store.Store
	log    zerolog.Logger
	now    func() time.Time
}

// New builds a session around an existing match.
func New(in game.LineReader, out Output, match *game.Match, ledger store.Store, log zerolog.Logger) *Session {
	return &Session{in: in, out: out, match: match, ledger: ledger, log: log, now: time.Now}
}

// Run plays matches until the user declines a rematch or input ends.
func (s *Session) Run(ctx context.Context) error {
	titles := strings.Join(game.MoveNames(), ", ")
	s.out.ClearScreen()
	s.out.WriteLine(fmt.Sprintf("Welcome to %s!", titles))
	if err := s.showRules(); err != nil {
		return err
	}
	s.out.WriteLine(separator)

	for {
		s.match.Reset()
		err := s.match.Run(s.showRound)
		if errors.Is(err, io.EOF) {
			s.log.Info().Str("match", s.match.ID).Msg("input closed mid-match")
			break
		}
		if err != nil {
			return err
		}
		s.announceWinner()
		s.record(ctx)

		again, err := s.playAgain()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if !again {
			break
		}
		s.out.ClearScreen()
	}

	s.showSummary(ctx)
	s.out.WriteLine(fmt.Sprintf("Thanks for playing %s. Goodbye!", titles))
	return nil
}

func (s *Session) showRules() error {
	lines, err := assets.RulesText()
	if err != nil {
		return fmt.Errorf("load rules: %w", err)
	}
	for _, l := range lines {
		s.out.WriteLine(l)
	}
	return nil
}

func (s *Session) showRound(r game.Round) {
	s.out.WriteLine("You chose: " + r.HumanMove.String())
	s.out.WriteLine("The computer chose: " + r.ComputerMove.String())
	switch r.Outcome {
	case game.HumanWins:
		s.out.WriteLine("You win!")
	case game.ComputerWins:
		s.out.WriteLine("Computer wins!")
	default:
		s.out.WriteLine("It's a tie")
	}
	s.out.WriteLine(fmt.Sprintf("The score is human: %d. Computer: %d", s.match.Human.Score, s.match.Computer.Score))
	s.out.WriteLine(separator)
}

func (s *Session) announceWinner() {
	if s.match.Winner() == game.HumanWins {
		s.out.WriteLine(fmt.Sprintf("You won the match %d to %d!", s.match.Human.Score, s.match.Computer.Score))
		return
	}
	s.out.WriteLine(fmt.Sprintf("The computer won the match %d to %d.", s.match.Computer.Score, s.match.Human.Score))
}

// record saves the finished match. Failures are logged, not fatal.
func (s *Session) record(ctx context.Context) {
	rec := store.RecordFromMatch(s.match, s.now())
	if err := s.ledger.SaveMatch(ctx, rec); err != nil {
		s.log.Warn().Err(err).Str("match", rec.ID).Msg("save match")
	}
}

func (s *Session) playAgain() (bool, error) {
	for {
		s.out.WriteLine("Would you like to play again? (y/n)")
		line, err := s.in.ReadLine()
		if err != nil {
			return false, err
		}
		again, err := game.ParseAnswer(line)
		if errors.Is(err, game.ErrInvalidAnswer) {
			s.out.WriteLine("Invalid answer!")
			continue
		}
		return again, nil
	}
}

func (s *Session) showSummary(ctx context.Context) {
	sum, err := s.ledger.Summary(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("session summary")
		return
	}
	if sum.Matches == 0 {
		return
	}
	s.out.WriteLine(fmt.Sprintf("Matches played: %d. You won %d, the computer won %d (%d rounds).",
		sum.Matches, sum.HumanWins, sum.ComputerWins, sum.Rounds))
}
