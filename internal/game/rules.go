package game

import "fmt"

// allMoves lists the throws in table order. Candidate sets and prompts
// are built from this order.
var allMoves = [...]Move{Rock, Paper, Scissors, Lizard, Spock}

// winningMoves maps each move to the moves it defeats.
var winningMoves = map[Move][]Move{
	Rock:     {Scissors, Lizard},
	Paper:    {Rock, Spock},
	Scissors: {Paper, Lizard},
	Lizard:   {Spock, Paper},
	Spock:    {Rock, Scissors},
}

func init() { mustValidate(winningMoves) }

// mustValidate panics unless table defines every move and forms a
// tournament: each pair of distinct moves has exactly one winner.
func mustValidate(table map[Move][]Move) {
	for _, m := range allMoves {
		if _, ok := table[m]; !ok {
			panic(fmt.Sprintf("rules: no entry for %s", m))
		}
	}
	for i, a := range allMoves {
		if contains(table[a], a) {
			panic(fmt.Sprintf("rules: %s defeats itself", a))
		}
		for _, b := range allMoves[i+1:] {
			if contains(table[a], b) == contains(table[b], a) {
				panic(fmt.Sprintf("rules: %s vs %s has no single winner", a, b))
			}
		}
	}
}

// AllMoves returns the five moves in table order.
func AllMoves() []Move {
	out := make([]Move, len(allMoves))
	copy(out, allMoves[:])
	return out
}

// Defeats returns the moves that m defeats, in table order.
// Returns nil for NoMove or any value outside the enumeration.
func Defeats(m Move) []Move {
	beaten, ok := winningMoves[m]
	if !ok {
		return nil
	}
	out := make([]Move, len(beaten))
	copy(out, beaten)
	return out
}

// Beats reports whether a defeats b.
func Beats(a, b Move) bool { return contains(winningMoves[a], b) }

// Resolve decides a round between the human's and the computer's moves.
// Both moves must be valid.
func Resolve(human, computer Move) Outcome {
	switch {
	case Beats(human, computer):
		return HumanWins
	case Beats(computer, human):
		return ComputerWins
	default:
		return Tie
	}
}

func contains(list []Move, m Move) bool {
	for _, x := range list {
		if x == m {
			return true
		}
	}
	return false
}
