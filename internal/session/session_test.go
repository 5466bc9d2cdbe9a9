package session

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/robalobadob/rpsls/internal/console"
	"github.com/robalobadob/rpsls/internal/game"
	"github.com/robalobadob/rpsls/internal/store"
)

type captureOutput struct {
	lines  []string
	clears int
}

func (c *captureOutput) WriteLine(s string) { c.lines = append(c.lines, s) }
func (c *captureOutput) ClearScreen()       { c.clears++ }

func (c *captureOutput) count(line string) int {
	n := 0
	for _, l := range c.lines {
		if l == line {
			n++
		}
	}
	return n
}

// alwaysSource throws the same move every round.
type alwaysSource struct{ m game.Move }

func (a alwaysSource) Choose() (game.Move, error) { return a.m, nil }

type fixture struct {
	out    *captureOutput
	match  *game.Match
	ledger store.Store
	sess   *Session
}

func newFixture(input string, computer game.MoveSource) *fixture {
	in := console.NewReader(strings.NewReader(input))
	out := &captureOutput{}
	human := game.NewPlayer("human", game.NewHumanInput(in, out))
	m := game.New(human, game.NewPlayer("computer", computer), zerolog.Nop())
	ledger := store.NewMemoryStore()
	return &fixture{
		out:    out,
		match:  m,
		ledger: ledger,
		sess:   New(in, out, m, ledger, zerolog.Nop()),
	}
}

func lines(ls ...string) string { return strings.Join(ls, "\n") + "\n" }

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}

func TestRunSingleMatchThenNo(t *testing.T) {
	f := newFixture(lines(append(repeat("r", 5), "no")...), alwaysSource{game.Scissors})
	if err := f.sess.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := f.out.lines
	if out[0] != "Welcome to rock, paper, scissors, lizard, spock!" {
		t.Errorf("unexpected welcome %q", out[0])
	}
	if last := out[len(out)-1]; last != "Thanks for playing rock, paper, scissors, lizard, spock. Goodbye!" {
		t.Errorf("unexpected last line %q", last)
	}
	if n := f.out.count("You win!"); n != 5 {
		t.Errorf("expected 5 round wins, got %d", n)
	}
	if n := f.out.count("The score is human: 5. Computer: 0"); n != 1 {
		t.Errorf("final score line printed %d times", n)
	}
	if n := f.out.count("You won the match 5 to 0!"); n != 1 {
		t.Errorf("match winner announced %d times", n)
	}
	if n := f.out.count("Would you like to play again? (y/n)"); n != 1 {
		t.Errorf("play-again asked %d times, want 1", n)
	}
	if f.out.clears != 1 {
		t.Errorf("screen cleared %d times, want 1", f.out.clears)
	}

	recs, _ := f.ledger.Matches(context.Background())
	if len(recs) != 1 || recs[0].HumanScore != 5 || recs[0].Rounds != 5 {
		t.Errorf("unexpected ledger %+v", recs)
	}
}

func TestRunReplayResetsMatch(t *testing.T) {
	script := append(repeat("rock", 5), "maybe", "Y")
	script = append(script, repeat("paper", 5)...)
	script = append(script, "n")
	f := newFixture(lines(script...), alwaysSource{game.Scissors})

	if err := f.sess.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := f.out.count("Invalid answer!"); n != 1 {
		t.Errorf("expected 1 invalid answer notice, got %d", n)
	}
	if n := f.out.count("Would you like to play again? (y/n)"); n != 3 {
		t.Errorf("play-again asked %d times, want 3", n)
	}
	if n := f.out.count("The computer won the match 5 to 0."); n != 1 {
		t.Errorf("second match result missing: %v", f.out.lines)
	}

	recs, _ := f.ledger.Matches(context.Background())
	if len(recs) != 2 {
		t.Fatalf("expected 2 matches recorded, got %d", len(recs))
	}
	second := recs[1]
	if second.HumanScore != 0 || second.ComputerScore != 5 || second.Rounds != 5 {
		t.Errorf("second match carried state over: %+v", second)
	}
	if !reflect.DeepEqual(second.HumanHistory, repeatMove(game.Paper, 5)) {
		t.Errorf("second match history %v", second.HumanHistory)
	}
	if recs[0].ID == second.ID {
		t.Error("both matches share an ID")
	}
	if !strings.HasPrefix(f.out.lines[len(f.out.lines)-2], "Matches played: 2. You won 1, the computer won 1") {
		t.Errorf("unexpected summary %q", f.out.lines[len(f.out.lines)-2])
	}
}

func repeatMove(m game.Move, n int) []game.Move {
	out := make([]game.Move, n)
	for i := range out {
		out[i] = m
	}
	return out
}

func TestReplayClearsStateAndOpponentBias(t *testing.T) {
	// Two opponents with the same seed fed the same moves play identical
	// matches, so the reference match tells us how many rounds the real match needs.
	ref := newFixture(lines(repeat("r", 200)...), game.NewOpponent(11, zerolog.Nop()))
	if err := ref.match.Run(nil); err != nil {
		t.Fatalf("reference match: %v", err)
	}

	opp := game.NewOpponent(11, zerolog.Nop())
	script := append(repeat("r", ref.match.Rounds), "y")
	f := newFixture(lines(script...), opp)

	if err := f.sess.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := f.match
	if m.Human.Score != 0 || m.Computer.Score != 0 {
		t.Errorf("scores not reset: %d-%d", m.Human.Score, m.Computer.Score)
	}
	if len(m.Human.History) != 0 || len(m.Computer.History) != 0 {
		t.Error("histories not cleared")
	}
	if !reflect.DeepEqual(opp.Candidates(), game.AllMoves()) {
		t.Errorf("opponent biased after replay: %v", opp.Candidates())
	}
	recs, _ := f.ledger.Matches(context.Background())
	if len(recs) != 1 {
		t.Errorf("expected only the finished match recorded, got %d", len(recs))
	}
}

func TestRunEndsCleanlyOnEOF(t *testing.T) {
	f := newFixture(lines("r", "xyz"), alwaysSource{game.Paper})
	if err := f.sess.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := f.out.count("Sorry, invalid choice."); n != 1 {
		t.Errorf("expected 1 invalid choice notice, got %d", n)
	}
	if last := f.out.lines[len(f.out.lines)-1]; !strings.HasPrefix(last, "Thanks for playing") {
		t.Errorf("goodbye missing, last line %q", last)
	}
	recs, _ := f.ledger.Matches(context.Background())
	if len(recs) != 0 {
		t.Errorf("unfinished match recorded: %+v", recs)
	}
}

func TestRunRejectsOversizedLine(t *testing.T) {
	long := strings.Repeat("x", 70*1024)
	f := newFixture(lines(append(append([]string{long}, repeat("r", 5)...), "n")...), alwaysSource{game.Scissors})
	if err := f.sess.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := f.out.count("Sorry, invalid choice."); n != 1 {
		t.Errorf("expected 1 invalid choice notice, got %d", n)
	}
	if n := f.out.count("You win!"); n != 5 {
		t.Errorf("expected 5 round wins, got %d", n)
	}
}
