// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Move: one of the five throws.
//   - Outcome: result of a single round.
//   - Player: score/history record shared by the human and the computer.
//   - Round: what happened in one exchange of moves.

package game

// Move is one of the five game throws.
// The zero value NoMove means a player has not thrown yet.
type Move int

const (
	NoMove Move = iota
	Rock
	Paper
	Scissors
	Lizard
	Spock
)

// String returns the lowercase move name used in prompts and transcripts.
func (m Move) String() string {
	switch m {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	case Lizard:
		return "lizard"
	case Spock:
		return "spock"
	default:
		return "none"
	}
}

// Valid reports whether m is one of the five throws.
func (m Move) Valid() bool { return m >= Rock && m <= Spock }

// Outcome is the result of a round, seen from the human's side.
type Outcome int

const (
	Tie Outcome = iota
	HumanWins
	ComputerWins
)

func (o Outcome) String() string {
	switch o {
	case HumanWins:
		return "human"
	case ComputerWins:
		return "computer"
	default:
		return "tie"
	}
}

// MoveSource is the capability that decides a player's next throw.
// HumanInput and Opponent are the two implementations.
type MoveSource interface {
	Choose() (Move, error)
}

// LossRecorder is implemented by sources that adapt after losing a round.
type LossRecorder interface {
	RecordLoss(winning Move)
}

// Resetter is implemented by sources that keep per-match state.
type Resetter interface {
	Reset()
}

// Player holds the state shared by both sides of a match.
type Player struct {
	Name    string     // Display/log name.
	Source  MoveSource // Chooses the next move; fixed at construction.
	Move    Move       // Current move (NoMove before the first round).
	Score   int        // Rounds won this match.
	History []Move     // Moves thrown this match, oldest first.
}

// NewPlayer builds a player record around a move source.
func NewPlayer(name string, src MoveSource) *Player {
	return &Player{Name: name, Source: src, History: []Move{}}
}

func (p *Player) record(m Move) {
	p.Move = m
	p.History = append(p.History, m)
}

func (p *Player) reset() {
	p.Move = NoMove
	p.Score = 0
	p.History = []Move{}
	if r, ok := p.Source.(Resetter); ok {
		r.Reset()
	}
}

// Round describes one resolved exchange.
type Round struct {
	Number       int
	HumanMove    Move
	ComputerMove Move
	Outcome      Outcome
}
