package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist/internal/kvstore"
	"tasklist/internal/paths"
)

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	t.Setenv("TASKLIST_LOG_LEVEL", "")
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(dir, "config.json")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := run(t, dir, args...)
	require.NoError(t, err, out)
	return out
}

func TestAddAndList(t *testing.T) {
	dir := t.TempDir()

	assert.Equal(t, "(no tasks)\n", mustRun(t, dir, "list"))

	assert.Equal(t, "✅ Task added [0]\n", mustRun(t, dir, "add", "Buy", "milk"))
	assert.Equal(t, "✅ Task added [1]\n", mustRun(t, dir, "add", "Walk dog"))

	assert.Equal(t, "- Buy milk [0]\n- Walk dog [1]\n", mustRun(t, dir, "list"))
	assert.FileExists(t, paths.Beside(filepath.Join(dir, "config.json"), paths.StoreFile))
	assert.FileExists(t, paths.Beside(filepath.Join(dir, "config.json"), paths.LogFile))
}

func TestAddBlankTitle(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "add", "   ")
	require.Error(t, err)
	assert.Equal(t, "You must enter a task", err.Error())
	assert.Equal(t, "(no tasks)\n", mustRun(t, dir, "list"))
}

func TestEditCommand(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "add", "Buy milk")

	assert.Equal(t, "✏️  Task updated\n", mustRun(t, dir, "edit", "[0]", "Buy", "oat", "milk"))
	assert.Equal(t, "- Buy oat milk [0]\n", mustRun(t, dir, "list"))

	_, err := run(t, dir, "edit", "7", "nope")
	assert.EqualError(t, err, "task not found: 7")

	_, err = run(t, dir, "edit", "0", " ")
	assert.EqualError(t, err, "You must enter a task")
	assert.Equal(t, "- Buy oat milk [0]\n", mustRun(t, dir, "list"))
}

func TestDeleteCommand(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "add", "A")
	mustRun(t, dir, "add", "B")

	assert.Equal(t, "(no task with that id)\n", mustRun(t, dir, "delete", "42"))
	assert.Equal(t, "🗑️ Task deleted\n", mustRun(t, dir, "delete", "0"))
	assert.Equal(t, "- B [1]\n", mustRun(t, dir, "list"))

	_, err := run(t, dir, "delete", "abc")
	assert.EqualError(t, err, `invalid task id "abc"`)
}

func TestSortAndSearchCommands(t *testing.T) {
	dir := t.TempDir()
	for _, title := range []string{"banana", "Apple", "cherry"} {
		mustRun(t, dir, "add", title)
	}

	assert.Equal(t, "- banana [0]\n", mustRun(t, dir, "search", "NAN"))
	assert.Equal(t, "- banana [0]\n", mustRun(t, dir, "list", "--search", "an"))
	assert.Equal(t, "(no tasks)\n", mustRun(t, dir, "search", "kiwi"))

	assert.Equal(t, "- Apple [1]\n- banana [0]\n- cherry [2]\n", mustRun(t, dir, "sort"))
	assert.Equal(t, "- Apple [1]\n- banana [0]\n- cherry [2]\n", mustRun(t, dir, "list"))
}

func TestClearRemovesStoredEntry(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "add", "A")

	assert.Equal(t, "🗑️ All tasks deleted\n", mustRun(t, dir, "clear", "--yes"))

	store := kvstore.NewFile(paths.Beside(filepath.Join(dir, "config.json"), paths.StoreFile))
	_, ok, err := store.Get("tasks")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExportImportRoundTrip(t *testing.T) {
	src := t.TempDir()
	mustRun(t, src, "add", "Buy milk")
	mustRun(t, src, "add", "Walk dog")

	for _, format := range []string{"json", "yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			exported := mustRun(t, src, "export", "--format", format)
			file := filepath.Join(t.TempDir(), "tasks."+format)
			require.NoError(t, os.WriteFile(file, []byte(exported), 0o600))

			dst := t.TempDir()
			mustRun(t, dst, "add", "old")
			assert.Equal(t, "📥 Imported 2 tasks\n", mustRun(t, dst, "import", file))
			assert.Equal(t, "- Buy milk [0]\n- Walk dog [1]\n", mustRun(t, dst, "list"))
		})
	}
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	_, err := run(t, t.TempDir(), "export", "--format", "xml")
	assert.EqualError(t, err, "unsupported format: xml")
}

func TestStoreFlagOverridesLocation(t *testing.T) {
	dir := t.TempDir()
	storePath := filepath.Join(t.TempDir(), "elsewhere.json")

	mustRun(t, dir, "--store", storePath, "add", "A")

	assert.FileExists(t, storePath)
	assert.Equal(t, "(no tasks)\n", mustRun(t, dir, "list"))
	assert.Equal(t, "- A [0]\n", mustRun(t, dir, "--store", storePath, "list"))
}

func TestConfigCommands(t *testing.T) {
	dir := t.TempDir()

	out := mustRun(t, dir, "config", "init")
	assert.Contains(t, out, "Config written")
	_, err := run(t, dir, "config", "init")
	assert.ErrorContains(t, err, "config already exists")
	mustRun(t, dir, "config", "init", "--force")

	assert.Equal(t, "storage_key updated\n", mustRun(t, dir, "config", "set", "storage_key", "todos"))
	assert.Contains(t, mustRun(t, dir, "config", "show"), `"storage_key": "todos"`)

	mustRun(t, dir, "add", "A")
	store := kvstore.NewFile(paths.Beside(filepath.Join(dir, "config.json"), paths.StoreFile))
	raw, ok, err := store.Get("todos")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"title":"A","id":0}]`, raw)

	_, err = run(t, dir, "config", "set", "colour", "blue")
	assert.ErrorContains(t, err, `unknown config key "colour"`)
}
