package words

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordgames/apps/go-server/internal/hangman"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadFiles_Embedded(t *testing.T) {
	lex, err := LoadFiles("", "")
	require.NoError(t, err)

	ladderCount, hangmanCount := lex.Stats()
	assert.Greater(t, ladderCount, 100)
	assert.Greater(t, hangmanCount, 100)
	assert.Contains(t, lex.Ladder.Lengths(), 5)
	assert.True(t, lex.Ladder.Contains("cold"))
}

func TestLoadFiles_Custom(t *testing.T) {
	lp := writeFile(t, "ladder.txt", "Cat\ncot\n\n# skip\ndog\n")
	hp := writeFile(t, "hangman.txt", "11111\tgiraffe\n11112\tox\n")

	lex, err := LoadFiles(lp, hp)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "cot", "dog"}, lex.Ladder.Words(3))
	assert.Equal(t, []string{"GIRAFFE"}, lex.Hangman)
	assert.Equal(t, "GIRAFFE", lex.RandomHangmanWord())
}

func TestLoadFiles_Errors(t *testing.T) {
	_, err := LoadFiles(filepath.Join(t.TempDir(), "missing.txt"), "")
	assert.Error(t, err)

	empty := writeFile(t, "empty.txt", "\n\n")
	_, err = LoadFiles(empty, "")
	assert.Error(t, err)
}

func TestLoadFiles_HangmanFallback(t *testing.T) {
	lp := writeFile(t, "ladder.txt", "cat\ncot\n")

	lex, err := LoadFiles(lp, filepath.Join(t.TempDir(), "missing.txt"))
	require.NoError(t, err)
	assert.Equal(t, hangman.Fallback, lex.Hangman)
}

func TestLoadFiles_LogsSummaryOnce(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	_, err := LoadFiles(writeFile(t, "ladder.txt", "cat\ncot\n"), "")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(buf.String(), "word lists loaded"))
	assert.Contains(t, buf.String(), `"ladderWords":2`)
}
