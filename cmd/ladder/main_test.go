package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordgames/apps/go-server/internal/ladder"
)

func writeWords(t *testing.T, words ...string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(p, []byte(strings.Join(words, "\n")+"\n"), 0o644))
	return p
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNeighborsCommand(t *testing.T) {
	file := writeWords(t, "cat", "cot", "cog", "dog", "bat")
	out, err := run(t, "--words", file, "neighbors", "cat")
	require.NoError(t, err)
	assert.Equal(t, "bat\ncot\n", out)
}

func TestPathCommand(t *testing.T) {
	file := writeWords(t, "cat", "cot", "cog", "dog")

	out, err := run(t, "--words", file, "path", "cat", "dog")
	require.NoError(t, err)
	assert.Equal(t, "cat -> cot -> cog -> dog (3 steps)\n", out)

	_, err = run(t, "--words", file, "path", "cat", "dog", "--max-steps", "2")
	assert.ErrorIs(t, err, ladder.ErrNoPathWithinBound)
}

func TestPickCommand_Seeded(t *testing.T) {
	file := writeWords(t, "cat", "cot")
	out, err := run(t, "--words", file, "pick", "--length", "3", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "solution:")
	assert.Contains(t, out, "(1 steps)")
}

func TestPickCommand_TooFewWords(t *testing.T) {
	file := writeWords(t, "cat")
	_, err := run(t, "--words", file, "pick", "--length", "3")
	assert.ErrorIs(t, err, ladder.ErrInsufficientDictionary)
}

func TestLengthsCommand(t *testing.T) {
	file := writeWords(t, "cat", "dog", "tree")
	out, err := run(t, "--words", file, "lengths")
	require.NoError(t, err)
	assert.Equal(t, "3\t2\n4\t1\n", out)
}
