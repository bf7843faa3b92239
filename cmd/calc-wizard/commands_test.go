package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("CALC_STORAGE_BACKEND", "file")
	t.Setenv("CALC_STORAGE_DIR", filepath.Join(dir, "data"))
	t.Setenv("CALC_LOG_FILE", filepath.Join(dir, "calc.log"))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEvalRecordsHistory(t *testing.T) {
	isolate(t)

	out, err := execute(t, "eval", "2+3*4")
	require.NoError(t, err)
	assert.Equal(t, "14\n", out)

	out, err = execute(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "2+3*4 = 14")
}

func TestEvalError(t *testing.T) {
	isolate(t)

	_, err := execute(t, "eval", "5+")
	require.Error(t, err)

	out, err := execute(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No history")
}

func TestEvalTreatsArgumentAsOneExpression(t *testing.T) {
	isolate(t)

	_, err := execute(t, "eval", "1+1=+2")
	require.Error(t, err)

	_, err = execute(t, "eval", "AC")
	require.Error(t, err)

	out, err := execute(t, "history")
	require.NoError(t, err)
	assert.Equal(t, "No history\n", out)
}

func TestUnreadableHistoryIsNotFatal(t *testing.T) {
	isolate(t)
	// a directory where the history file should be makes every read fail
	dataDir := os.Getenv("CALC_STORAGE_DIR")
	require.NoError(t, os.MkdirAll(filepath.Join(dataDir, "calculator_history.json"), 0755))

	out, err := execute(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "Warning: history could not be loaded")
	assert.Contains(t, out, "No history")
}

func TestNoteUnderDateFilter(t *testing.T) {
	isolate(t)
	today := time.Now().Format("2006-01-02")

	_, err := execute(t, "eval", "1+1")
	require.NoError(t, err)
	_, err = execute(t, "eval", "2*3")
	require.NoError(t, err)

	_, err = execute(t, "note", "--date", today, "1", "first")
	require.NoError(t, err)

	out, err := execute(t, "history")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "2*3 = 6")
	assert.Contains(t, lines[1], "1+1 = 2")
	assert.Equal(t, "note: first", strings.TrimSpace(lines[2]))
}

func TestNoteRejectsBadIndex(t *testing.T) {
	isolate(t)

	_, err := execute(t, "note", "abc", "text")
	assert.Error(t, err)

	_, err = execute(t, "note", "0", "text")
	assert.Error(t, err)
}

func TestHistoryRejectsBadDate(t *testing.T) {
	isolate(t)

	_, err := execute(t, "history", "--date", "16/10/2026")
	assert.Error(t, err)
}

func TestUnknownBackendFailsFast(t *testing.T) {
	isolate(t)
	t.Setenv("CALC_STORAGE_BACKEND", "redis")

	_, err := execute(t, "history")
	assert.ErrorContains(t, err, `invalid storage.backend "redis"`)
}
