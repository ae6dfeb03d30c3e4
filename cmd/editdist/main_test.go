package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var logs bytes.Buffer
	rootCmd := newRootCmd(&logs)
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestHelpAndSubcommands(t *testing.T) {
	tests := []struct {
		args    []string
		wantOut string
		wantErr bool
	}{
		{args: []string{"--help"}, wantOut: "editdist computes Hamming"},
		{args: []string{"distance", "--help"}, wantOut: "Print the distance"},
		{args: []string{"search", "--help"}, wantOut: "Report every position"},
		{args: []string{"unknown"}, wantErr: true},
	}
	for _, tt := range tests {
		out, err := execute(t, tt.args...)
		if tt.wantErr {
			assert.Error(t, err, "args %v", tt.args)
			continue
		}
		require.NoError(t, err, "args %v", tt.args)
		assert.Contains(t, out, tt.wantOut, "args %v", tt.args)
	}
}

func TestDistanceCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"distance", "kitten", "sitting"}, "3"},
		{[]string{"distance", "--strategy", "bitvector", "kitten", "sitting"}, "3"},
		{[]string{"distance", "-m", "damerau", "ab", "ba"}, "1"},
		{[]string{"distance", "-m", "hamming", "karolin", "kathrin"}, "3"},
		{[]string{"distance", "-k", "2", "kitten", "sitting"}, "> 2"},
		{[]string{"distance", "-k", "3", "kitten", "sitting"}, "3"},
		{[]string{"distance", "--backend", "scalar", "", "abc"}, "3"},
	}
	for _, tt := range tests {
		out, err := execute(t, tt.args...)
		require.NoError(t, err, "args %v", tt.args)
		assert.Equal(t, tt.want, strings.TrimSpace(out), "args %v", tt.args)
	}
}

func TestDistanceCommandErrors(t *testing.T) {
	_, err := execute(t, "distance", "-m", "hamming", "a", "ab")
	assert.Error(t, err)

	_, err = execute(t, "distance", "-m", "jaro", "a", "b")
	assert.True(t, errors.Is(err, errMetric))

	_, err = execute(t, "--strategy", "fastest", "distance", "a", "b")
	assert.Error(t, err)

	_, err = execute(t, "--backend", "avx512", "distance", "a", "b")
	assert.Error(t, err)

	_, err = execute(t, "--log-format", "xml", "distance", "a", "b")
	assert.True(t, errors.Is(err, errLogFormat))
}

func TestSearchCommand(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("xxabdxx"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("abc abc"), 0o600))

	out, err := execute(t, "search", "-k", "1", "abc", a, b)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, a+":2-4:1", lines[0])
	assert.Contains(t, out, a+":2-5:1")
	assert.Contains(t, out, b+":0-3:0")
	assert.Contains(t, out, b+":4-7:0")

	out, err = execute(t, "search", "-c", "-m", "hamming", "-k", "0", "abc", a, b)
	require.NoError(t, err)
	assert.Equal(t, a+":0\n"+b+":2\n", out)

	_, err = execute(t, "search", "abc", filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)

	_, err = execute(t, "search", "-k", "-1", "abc", a)
	assert.Error(t, err)
}

func TestBackendsCommand(t *testing.T) {
	out, err := execute(t, "-v", "--log-format", "json", "backends")
	require.NoError(t, err)
	assert.Contains(t, out, "detected:")
	assert.Contains(t, out, "effective:")
	assert.Contains(t, out, "scalar")
}

// failAfter accepts n writes and then fails every write.
type failAfter struct {
	n      int
	writes int
}

var errClosed = errors.New("write on closed pipe")

func (f *failAfter) Write(p []byte) (int, error) {
	if f.writes >= f.n {
		return 0, errClosed
	}
	f.writes++
	return len(p), nil
}

func TestPrintBackendsWriteError(t *testing.T) {
	for _, n := range []int{0, 1, 4} {
		fw := &failAfter{n: n}
		err := printBackends(fw)
		require.ErrorIs(t, err, errClosed, "fail after %d writes", n)
		assert.Equal(t, n, fw.writes, "no writes after the first failure")
	}

	require.NoError(t, printBackends(new(bytes.Buffer)))
}
