package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed rules.txt
var FS embed.FS

// readLines returns the non-comment lines of an embedded text file.
// Blank lines are kept so paragraphs survive; "#" lines are dropped.
func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// RulesText returns the rules shown at the start of a session.
func RulesText() ([]string, error) {
	return readLines("rules.txt")
}
