// internal/game/engine.go
//
// Match controller for one human-vs-computer match.
// Responsibilities:
//   - Ask both move sources for a throw and resolve the round.
//   - Keep scores and per-match histories.
//   - Tell the computer's source when it lost so it can re-bias.
//   - End the match as soon as either side reaches WinScore.
//   - Reset everything for a rematch.
//
// Notes:
//   - A Match is a plain value owned by the caller; there is no global game.
//   - The only errors come from the move sources (e.g. end of input).

package game

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultWinScore is the number of round wins that ends a match.
const DefaultWinScore = 5

// ErrMatchOver is returned by PlayRound once a side has reached WinScore.
var ErrMatchOver = errors.New("match finished")

// Match holds the state of a single match.
type Match struct {
	ID        string    // Unique match identifier (UUID).
	StartedAt time.Time // Set on creation and on Reset.
	WinScore  int       // First score to reach this wins.
	Rounds    int       // Rounds played so far, ties included.
	Human     *Player
	Computer  *Player

	log zerolog.Logger
}

// New constructs a match between human and computer with the default
// win threshold.
func New(human, computer *Player, log zerolog.Logger) *Match {
	return &Match{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
		WinScore:  DefaultWinScore,
		Human:     human,
		Computer:  computer,
		log:       log,
	}
}

// PlayRound plays a single round and returns what happened.
//
// The human moves first (blocking on input), then the computer draws.
// If the computer loses, its source is told the human's winning move.
func (m *Match) PlayRound() (Round, error) {
	if m.Over() {
		return Round{}, ErrMatchOver
	}
	hm, err := m.Human.Source.Choose()
	if err != nil {
		return Round{}, err
	}
	cm, err := m.Computer.Source.Choose()
	if err != nil {
		return Round{}, err
	}

	m.Human.record(hm)
	m.Computer.record(cm)
	m.Rounds++

	outcome := Resolve(hm, cm)
	switch outcome {
	case HumanWins:
		m.Human.Score++
		if lr, ok := m.Computer.Source.(LossRecorder); ok {
			lr.RecordLoss(hm)
		}
	case ComputerWins:
		m.Computer.Score++
	}

	m.log.Debug().
		Str("match", m.ID).
		Int("round", m.Rounds).
		Str("human", hm.String()).
		Str("computer", cm.String()).
		Str("outcome", outcome.String()).
		Msg("round resolved")

	return Round{Number: m.Rounds, HumanMove: hm, ComputerMove: cm, Outcome: outcome}, nil
}

// Run plays rounds until the match is over, calling onRound after each.
func (m *Match) Run(onRound func(Round)) error {
	for !m.Over() {
		r, err := m.PlayRound()
		if err != nil {
			return err
		}
		if onRound != nil {
			onRound(r)
		}
	}
	m.log.Info().
		Str("match", m.ID).
		Int("rounds", m.Rounds).
		Int("human", m.Human.Score).
		Int("computer", m.Computer.Score).
		Msg("match finished")
	return nil
}

// Over reports whether either player has reached the win threshold.
func (m *Match) Over() bool {
	return m.Human.Score >= m.WinScore || m.Computer.Score >= m.WinScore
}

// Winner returns HumanWins or ComputerWins once the match is over,
// Tie while it is still running.
func (m *Match) Winner() Outcome {
	switch {
	case m.Human.Score >= m.WinScore:
		return HumanWins
	case m.Computer.Score >= m.WinScore:
		return ComputerWins
	default:
		return Tie
	}
}

// Reset prepares the match for a rematch: scores and histories are cleared,
// the opponent loses its bias, and a new ID is issued.
func (m *Match) Reset() {
	m.Human.reset()
	m.Computer.reset()
	m.Rounds = 0
	m.ID = uuid.NewString()
	m.StartedAt = time.Now().UTC()
}
