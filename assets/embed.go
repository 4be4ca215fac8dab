// Package assets embeds the default word lists and the SQL migrations so the
// server runs without any files on disk.
package assets

import (
	"bufio"
	"embed"
	"io"
	"io/fs"
	"strings"
)

//go:embed wordlist.txt hangman.txt
var FS embed.FS

//go:embed sql/*.sql
var migrations embed.FS

// Migrations returns the SQL migration files rooted at the sql/ directory.
func Migrations() fs.FS {
	sub, err := fs.Sub(migrations, "sql")
	if err != nil {
		panic(err) // embedded path is fixed at compile time
	}
	return sub
}

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// LadderList returns the default ladder dictionary (lowercase, unfiltered).
func LadderList() ([]string, error) {
	return readLines("wordlist.txt")
}

// HangmanList opens the default hangman list; parse it with hangman.ParseWords.
func HangmanList() (io.ReadCloser, error) {
	return FS.Open("hangman.txt")
}
