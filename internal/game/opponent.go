// internal/game/opponent.go
//
// Adaptive computer opponent.
//
// The opponent draws uniformly from a candidate list. After losing a round
// it rebuilds that list as every move followed by the moves the human's
// winning throw does not beat, so those "safe" moves carry double weight on
// the next draws. The bias is rebuilt from scratch on each loss and
// dropped when a new match starts. It is a weighting heuristic: every move
// keeps a nonzero chance and a losing move can still be drawn.

package game

import (
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// Opponent is the computer's MoveSource.
type Opponent struct {
	rng        *rand.Rand
	candidates []Move
	log        zerolog.Logger
}

// NewOpponent returns an unbiased opponent drawing from a PCG source
// seeded with seed.
func NewOpponent(seed uint64, log zerolog.Logger) *Opponent {
	return &Opponent{
		rng:        rand.New(rand.NewSource(seed)),
		candidates: AllMoves(),
		log:        log,
	}
}

// Choose draws the next move from the candidate list. It never fails.
func (o *Opponent) Choose() (Move, error) {
	return o.candidates[o.rng.Intn(len(o.candidates))], nil
}

// RecordLoss biases the next draws away from moves the human's winning
// move defeats.
func (o *Opponent) RecordLoss(winning Move) {
	o.candidates = append(AllMoves(), SafeMoves(winning)...)
	o.log.Debug().
		Str("humanMove", winning.String()).
		Int("candidates", len(o.candidates)).
		Msg("opponent re-biased")
}

// Reset drops any bias.
func (o *Opponent) Reset() { o.candidates = AllMoves() }

// Candidates returns a copy of the current candidate list.
func (o *Opponent) Candidates() []Move {
	out := make([]Move, len(o.candidates))
	copy(out, o.candidates)
	return out
}

// Biased reports whether the candidate list differs from the plain five moves.
func (o *Opponent) Biased() bool { return len(o.candidates) != len(allMoves) }

// SafeMoves returns, in table order, the moves that m does not defeat
// (m itself included).
func SafeMoves(m Move) []Move {
	beaten := winningMoves[m]
	var out []Move
	for _, mv := range allMoves {
		if !contains(beaten, mv) {
			out = append(out, mv)
		}
	}
	return out
}
