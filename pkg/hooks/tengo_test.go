package hooks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTengoExecutor_ScriptNotFound(t *testing.T) {
	scriptPath := filepath.Join(t.TempDir(), "missing-hook.tengo")

	executor := NewTengoExecutor()
	err := executor.Execute(scriptPath, &Context{
		Name:      "blog",
		Version:   "1.0.0",
		Operation: "deploy",
	})

	assert.Error(t, err)
}

func TestTengoExecutor_SimpleScript(t *testing.T) {
	scriptPath := filepath.Join(t.TempDir(), "hook.tengo")
	require.NoError(t, os.WriteFile(scriptPath, []byte("true\n"), 0o644))

	executor := NewTengoExecutor()
	err := executor.Execute(scriptPath, &Context{
		Name:      "blog",
		Version:   "1.0.0",
		Operation: "deploy",
	})

	assert.NoError(t, err)
}

func TestTengoExecutor_InvalidScript(t *testing.T) {
	scriptPath := filepath.Join(t.TempDir(), "broken.tengo")
	require.NoError(t, os.WriteFile(scriptPath, []byte("invalid tengo syntax !!!\n"), 0o644))

	executor := NewTengoExecutor()
	err := executor.Execute(scriptPath, &Context{Operation: "deploy"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "hook script execution failed")
}

func TestTengoExecutor_ScriptSeesDeploymentDirs(t *testing.T) {
	targetDir := t.TempDir()
	stale := filepath.Join(targetDir, "stale.cache")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	// A cache-invalidation hook: drop the stale cache file in the
	// directory that was just deployed to.
	script := `
os := import("os")
dirs := import("dirs")
os.remove(dirs.target_dir + "/stale.cache")
`
	scriptPath := filepath.Join(t.TempDir(), "invalidate.tengo")
	require.NoError(t, os.WriteFile(scriptPath, []byte(script), 0o644))

	executor := NewTengoExecutor()
	err := executor.Execute(scriptPath, &Context{
		Name:      "blog",
		Version:   "1.0.0",
		Operation: "deploy",
		TargetDir: targetDir,
	})

	require.NoError(t, err)
	assert.NoFileExists(t, stale)
}
