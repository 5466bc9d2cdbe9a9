// internal/game/input.go
//
// Normalization of raw terminal text into game values.
//
// Move input:
//   • Full names: rock, paper, scissors, lizard, spock.
//   • Shortcuts: r, p, s, l, sp.
//   • Case-insensitive; surrounding whitespace is ignored.
//
// Play-again input:
//   • yes, y, no, n (case-insensitive).
//
// Anything else is rejected with a sentinel error so callers can re-prompt.

package game

import (
	"errors"
	"strings"
)

var (
	ErrInvalidMove   = errors.New("invalid move")
	ErrInvalidAnswer = errors.New("invalid answer")
)

// shortcuts maps abbreviated input to the canonical name.
var shortcuts = map[string]string{
	"r":  "rock",
	"p":  "paper",
	"s":  "scissors",
	"l":  "lizard",
	"sp": "spock",
}

// moveByName is the membership set for canonical names.
var moveByName = func() map[string]Move {
	m := make(map[string]Move, len(allMoves))
	for _, mv := range allMoves {
		m[mv.String()] = mv
	}
	return m
}()

// normalizeMove lowercases and expands shortcuts; unknown text is returned
// lowercased so the membership check can reject it.
func normalizeMove(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if full, ok := shortcuts[s]; ok {
		return full
	}
	return s
}

// ParseMove converts user text into a Move.
func ParseMove(raw string) (Move, error) {
	if m, ok := moveByName[normalizeMove(raw)]; ok {
		return m, nil
	}
	return NoMove, ErrInvalidMove
}

// ParseAnswer converts a play-again reply into true (yes) or false (no).
func ParseAnswer(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}
	return false, ErrInvalidAnswer
}

// JoinOr renders a list the way prompts read it: "a", "a or b",
// "a, b, or c".
func JoinOr(items []string, delimiter, word string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + word + " " + items[1]
	default:
		return strings.Join(items[:len(items)-1], delimiter) + delimiter + word + " " + items[len(items)-1]
	}
}

// MoveNames returns the canonical names in table order.
func MoveNames() []string {
	out := make([]string, len(allMoves))
	for i, m := range allMoves {
		out[i] = m.String()
	}
	return out
}
