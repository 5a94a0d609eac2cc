package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/inmemstore/scenario"
)

func fixture(name string) string {
	return filepath.Join("..", "..", "scenario", "testdata", name)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRunCommand(t *testing.T) {
	t.Run("AllFixturesPass", func(t *testing.T) {
		out, err := execute(t, "run",
			fixture("insert_two.yaml"),
			fixture("clear_keeps_generator.yaml"),
			fixture("clear_resets_generator.yaml"),
			fixture("reset_hazard.yaml"),
		)
		require.NoError(t, err)
		assert.Contains(t, out, "PASS insert-two")
		assert.Contains(t, out, "PASS reset-hazard")
		assert.NotContains(t, out, "FAIL")
	})

	t.Run("SharedDatabaseFailsOnSecondRun", func(t *testing.T) {
		out, err := execute(t, "run", fixture("fixed_database.yaml"), fixture("fixed_database.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2 scenario(s) failed")
		assert.Contains(t, out, "PASS fixed-database (database fixed)")
		assert.Contains(t, out, "FAIL fixed-database (database fixed)")
		assert.Contains(t, out, "expected found=true")
	})

	t.Run("ResetOnClearFlag", func(t *testing.T) {
		_, err := execute(t, "run", "--reset-on-clear", fixture("fixed_database.yaml"), fixture("fixed_database.yaml"))
		require.NoError(t, err)
	})

	t.Run("ResetOnClearFlagBreaksKeepFixture", func(t *testing.T) {
		out, err := execute(t, "run", "--reset-on-clear", fixture("clear_keeps_generator.yaml"))
		require.Error(t, err)
		assert.Contains(t, out, "expected keys [2], got [1]")
	})

	t.Run("ConfigFromEnv", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "store.yaml")
		require.NoError(t, os.WriteFile(path, []byte("resetGeneratorsOnClear: true\n"), 0o600))
		t.Setenv(configEnv, path)

		_, err := execute(t, "run", fixture("fixed_database.yaml"), fixture("fixed_database.yaml"))
		require.NoError(t, err)
	})

	t.Run("BadConfig", func(t *testing.T) {
		_, err := execute(t, "run", "--config", filepath.Join(t.TempDir(), "missing.yaml"), fixture("insert_two.yaml"))
		require.Error(t, err)
	})

	t.Run("JSON", func(t *testing.T) {
		out, err := execute(t, "--format", "json", "run", fixture("insert_two.yaml"))
		require.NoError(t, err)

		var reports []scenario.Report
		require.NoError(t, json.Unmarshal([]byte(out), &reports))
		require.Len(t, reports, 1)
		assert.Equal(t, "insert-two", reports[0].Scenario)
		assert.Equal(t, []int64{1, 2}, reports[0].Steps[2].Keys)
	})

	t.Run("ConfigFileKeepsScenarioKeys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(path, nil, 0o600))

		out, err := execute(t, "run", "--config", path, fixture("clear_resets_generator.yaml"))
		require.NoError(t, err, out)
	})

	t.Run("ItemFieldsBuiltByFactory", func(t *testing.T) {
		path := writeScenario(t, `name: created-at
steps:
  - op: add
    type: Item
    fields: {Name: Zach, CreatedAt: "2025-01-02T03:04:05Z"}
  - op: commit
    expect: {keys: [1]}
`)
		out, err := execute(t, "run", path)
		require.NoError(t, err, out)
		assert.Contains(t, out, "PASS created-at")
	})

	t.Run("MalformedCreatedAtFailsStep", func(t *testing.T) {
		path := writeScenario(t, `name: bad-created-at
steps:
  - op: add
    type: Item
    fields: {Name: Zach, CreatedAt: never}
`)
		out, err := execute(t, "run", path)
		require.Error(t, err)
		assert.Contains(t, out, "FAIL bad-created-at")
		assert.Contains(t, out, "failed to parse CreatedAt")
	})

	t.Run("MissingScenario", func(t *testing.T) {
		_, err := execute(t, "run", fixture("missing.yaml"))
		require.Error(t, err)
	})

	t.Run("InvalidFormat", func(t *testing.T) {
		_, err := execute(t, "--format", "xml", "run", fixture("insert_two.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format")
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "inmemstore 0.1.0")

	out, err = execute(t, "--format", "json", "version")
	require.NoError(t, err)
	assert.Contains(t, out, `"version":"0.1.0"`)
}
