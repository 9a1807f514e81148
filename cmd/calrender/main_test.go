package main

import (
	"bytes"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleWeek = `{
	"startDate": {"year": 2024, "monthValue": 1, "dayOfMonth": 1},
	"endDate": {"year": 2024, "monthValue": 1, "dayOfMonth": 7},
	"checkIns": [
		{"checkInDate": {"year": 2024, "monthValue": 1, "dayOfMonth": 2}},
		{"checkInDate": {"year": 2024, "monthValue": 1, "dayOfMonth": 4}}
	]
}`

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRenderFromStdin(t *testing.T) {
	out, _, err := run(t, exampleWeek, "--today", "2024-01-05")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `<div class="calendar-container">`))
	assert.Equal(t, 2, strings.Count(out, "calendar-day checked-in"))
	assert.Equal(t, 2, strings.Count(out, "calendar-day missed"))
	assert.Equal(t, 1, strings.Count(out, `"calendar-day today"`))
	assert.Contains(t, out, `title="05/01/2024"`)
}

func TestRenderFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(exampleWeek), 0o600))

	out, _, err := run(t, "", path, "--today", "2024-01-05")
	require.NoError(t, err)
	assert.Contains(t, out, "calendar-legend")
}

func TestRenderIsDeterministic(t *testing.T) {
	a, _, err := run(t, exampleWeek, "--today", "2024-01-05")
	require.NoError(t, err)
	b, _, err := run(t, exampleWeek, "--today", "2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRenderSkipsInvalidRange(t *testing.T) {
	doc := `{"startDate": {"year": 2024, "monthValue": 1, "dayOfMonth": 7},
		"endDate": {"year": 2024, "monthValue": 1, "dayOfMonth": 1}, "checkIns": []}`

	out, stderr, err := run(t, doc, "--today", "2024-01-05")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "skipping")

	_, _, err = run(t, doc, "--today", "2024-01-05", "--strict")
	assert.Error(t, err)
}

func TestRenderRejectsBadInput(t *testing.T) {
	_, _, err := run(t, "not json", "--today", "2024-01-05")
	assert.Error(t, err)

	_, _, err = run(t, exampleWeek, "--today", "05/01/2024")
	assert.Error(t, err)
}

func TestSourcesAreGofmtFormatted(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		src, err := os.ReadFile(name)
		require.NoError(t, err)
		formatted, err := format.Source(src)
		require.NoError(t, err, name)
		assert.Equal(t, string(formatted), string(src), name)
	}
}
