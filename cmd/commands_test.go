package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-wadsworth/fm-attribute-customizer/internal/codec"
	"github.com/matt-wadsworth/fm-attribute-customizer/internal/editor"
	"github.com/matt-wadsworth/fm-attribute-customizer/internal/workspace"
)

const testRangeCollection = `{
  "m_Name": "AttributeDataCollection",
  "m_rows": 6,
  "m_columns": [{"rid": 101}, {"rid": 102}],
  "references": {"RefIds": [
    {"rid": 101, "type": {"class": "IntDataSet"},
     "data": {"m_rows": [0, 6, 7, 10, 15, 20]}},
    {"rid": 102, "type": {"class": "StringDataSet"},
     "data": {"m_rows": [
       "attribute-colour-unset", "attribute-colour-low",
       "attribute-colour-poor", "attribute-colour-average",
       "attribute-colour-good", "attribute-colour-excellent"]}}
  ]}
}`

func setupWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, workspace.ObjectRangeCollection+".json")
	require.NoError(t, os.WriteFile(path, []byte(testRangeCollection), 0o644))
	return dir
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestShowCommand(t *testing.T) {
	dir := setupWorkspace(t)
	assert.NoError(t, run(t, "--workspace", dir, "show"))
}

func TestSetBoundaryCommand(t *testing.T) {
	dir := setupWorkspace(t)
	require.NoError(t, run(t, "--workspace", dir, "set-boundary", "1", "12"))

	session, err := editor.Load(workspace.Open(dir))
	require.NoError(t, err)
	assert.Equal(t, []int{7, 12, 15, 20}, session.Table().Boundaries())
}

func TestInsertAndRemoveCommands(t *testing.T) {
	dir := setupWorkspace(t)
	require.NoError(t, run(t, "--workspace", dir, "insert", "1"))

	session, err := editor.Load(workspace.Open(dir))
	require.NoError(t, err)
	require.Equal(t, 5, session.Table().EditableLen())
	assert.Contains(t, session.Table().Labels()[1], "attribute-colour-custom-")

	require.NoError(t, run(t, "--workspace", dir, "remove", "1"))
	session, err = editor.Load(workspace.Open(dir))
	require.NoError(t, err)
	assert.Equal(t, 4, session.Table().EditableLen())
}

func TestHighlightCommand(t *testing.T) {
	dir := setupWorkspace(t)
	highlight := `{
  "m_rows": 3,
  "m_columns": [{"rid": 11}, {"rid": 12}],
  "references": {"RefIds": [
    {"rid": 12, "type": {"class": "StringDataSet"}, "data": {"m_rows": [
      "attributes-row-number",
      "attributes-row-number-preference",
      "attributes-row-number-key"]}}
  ]}
}`
	path := filepath.Join(dir, workspace.ObjectHighlight+".json")
	require.NoError(t, os.WriteFile(path, []byte(highlight), 0o644))

	require.NoError(t, run(t, "--workspace", dir, "highlight", "off"))

	doc, err := workspace.Open(dir).ReadObject(workspace.ObjectHighlight)
	require.NoError(t, err)
	rows, err := codec.DecodeHighlightRows(doc)
	require.NoError(t, err)
	assert.False(t, codec.HighlightEnabled(rows))

	assert.Error(t, run(t, "--workspace", dir, "highlight", "maybe"))
}

func TestQueryCommand(t *testing.T) {
	dir := setupWorkspace(t)
	assert.NoError(t, run(t, "--workspace", dir,
		"query", workspace.ObjectRangeCollection, "$.m_columns[0].rid"))
	assert.Error(t, run(t, "--workspace", dir,
		"query", workspace.ObjectRangeCollection, "$[invalid"))
}

func TestHistoryRecordedAcrossEdits(t *testing.T) {
	dir := setupWorkspace(t)
	require.NoError(t, run(t, "--workspace", dir, "set-boundary", "0", "8"))
	require.NoError(t, run(t, "--workspace", dir, "history"))

	// Best-effort log lands next to the workspace by default.
	_, err := os.Stat(filepath.Join(dir, ".fmattr-history.db"))
	assert.NoError(t, err)
}
