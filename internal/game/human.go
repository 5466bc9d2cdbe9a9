package game

import "errors"

// LineReader supplies one line of user text per call.
type LineReader interface {
	ReadLine() (string, error)
}

// LineWriter displays one line of text.
type LineWriter interface {
	WriteLine(s string)
}

// HumanInput is the MoveSource backed by the terminal. It prompts until the
// reply names a valid move; read errors (end of input) are returned as-is.
type HumanInput struct {
	in  LineReader
	out LineWriter
}

// NewHumanInput prompts on out and reads replies from in.
func NewHumanInput(in LineReader, out LineWriter) *HumanInput {
	return &HumanInput{in: in, out: out}
}

// Choose re-prompts until the reply parses as a move.
func (h *HumanInput) Choose() (Move, error) {
	prompt := "Please choose " + JoinOr(MoveNames(), ", ", "or") + ":"
	for {
		h.out.WriteLine(prompt)
		line, err := h.in.ReadLine()
		if err != nil {
			return NoMove, err
		}
		m, err := ParseMove(line)
		if errors.Is(err, ErrInvalidMove) {
			h.out.WriteLine("Sorry, invalid choice.")
			continue
		}
		return m, nil
	}
}
