// internal/console/console.go
//
// Terminal collaborator for the game.
//   - Reader: one line of user text per call, line ending stripped.
//   - Writer: one line of output per call, plus ClearScreen.
//
// ClearScreen writes the ANSI "clear + home" sequence. In ClearAuto mode it
// only does so when the sink is a terminal, so piped transcripts stay clean.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ClearMode controls when ClearScreen emits escape codes.
type ClearMode string

const (
	ClearAuto   ClearMode = "auto"
	ClearAlways ClearMode = "always"
	ClearNever  ClearMode = "never"
)

const clearSequence = "\033[H\033[2J"

// maxLineBytes caps how much of one line is kept; the rest is discarded.
const maxLineBytes = 4096

// Reader reads newline-terminated lines from the input stream.
type Reader struct {
	br *bufio.Reader
}

// NewReader returns a Reader on r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// ReadLine blocks until a full line is available. Lines of any length are
// accepted; only the first maxLineBytes are returned.
// Returns io.EOF once the input is exhausted.
func (r *Reader) ReadLine() (string, error) {
	var (
		buf  []byte
		read bool
	)
	for {
		chunk, isPrefix, err := r.br.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if read {
					break
				}
				return "", io.EOF
			}
			return "", fmt.Errorf("read input: %w", err)
		}
		read = true
		if room := maxLineBytes - len(buf); room > 0 {
			if len(chunk) > room {
				chunk = chunk[:room]
			}
			buf = append(buf, chunk...)
		}
		if !isPrefix {
			break
		}
	}
	return strings.TrimRight(string(buf), "\r"), nil
}

// Writer prints lines to an output stream.
type Writer struct {
	w     io.Writer
	clear bool
}

// NewWriter returns a Writer on w. With ClearAuto, screen clearing is
// enabled only if w is an *os.File attached to a terminal.
func NewWriter(w io.Writer, mode ClearMode) *Writer {
	return &Writer{w: w, clear: shouldClear(w, mode)}
}

func shouldClear(w io.Writer, mode ClearMode) bool {
	switch mode {
	case ClearAlways:
		return true
	case ClearNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// WriteLine prints s followed by a newline.
func (w *Writer) WriteLine(s string) {
	_, _ = fmt.Fprintln(w.w, s)
}

// ClearScreen clears the terminal when clearing is enabled.
func (w *Writer) ClearScreen() {
	if w.clear {
		_, _ = io.WriteString(w.w, clearSequence)
	}
}

// ParseClearMode validates a configured clear mode.
func ParseClearMode(s string) (ClearMode, error) {
	switch m := ClearMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ClearAuto, ClearAlways, ClearNever:
		return m, nil
	}
	return "", fmt.Errorf("console: unknown clear mode %q", s)
}
