package fsops

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/glorpus-work/deployfs/pkg/fsops/mocks"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCopyFile(t *testing.T) {
	tests := []struct {
		name       string
		srcName    string
		exclude    bool
		wantCopied bool
	}{
		{
			name:       "copies a regular file",
			srcName:    "data.json",
			exclude:    false,
			wantCopied: true,
		},
		{
			name:       "skips excluded extension but reports success",
			srcName:    "logic.tpl",
			exclude:    true,
			wantCopied: false,
		},
		{
			name:       "copies excluded extension when exclusion is off",
			srcName:    "logic.tpl",
			exclude:    false,
			wantCopied: true,
		},
		{
			name:       "extension match is case-insensitive",
			srcName:    "logic.TPL",
			exclude:    true,
			wantCopied: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			src := filepath.Join(dir, tt.srcName)
			dst := filepath.Join(dir, "out", tt.srcName)
			writeFile(t, src, "payload")
			require.NoError(t, os.MkdirAll(filepath.Dir(dst), 0o755))

			ops := NewDefault()
			err := ops.CopyFile(src, dst, tt.exclude)

			assert.NoError(t, err)
			if tt.wantCopied {
				content, readErr := os.ReadFile(dst)
				require.NoError(t, readErr)
				assert.Equal(t, "payload", string(content))
			} else {
				assert.NoFileExists(t, dst)
			}
		})
	}
}

func TestCopyFile_ExcludedLeavesExistingDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "logic.tengo")
	dst := filepath.Join(dir, "installed.tengo")
	writeFile(t, src, "new logic")
	writeFile(t, dst, "old logic")

	ops := NewDefault()
	require.NoError(t, ops.CopyFile(src, dst, true))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "old logic", string(content), "excluded copy must not touch the destination")
}

func TestCopyFile_RetriesAfterPermissionFix(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "data.txt")
	dst := filepath.Join(dir, "locked.txt")
	writeFile(t, src, "fresh")
	writeFile(t, dst, "stale")
	require.NoError(t, os.Chmod(dst, 0o444))

	ops := NewDefault()
	err := ops.CopyFile(src, dst, false)

	require.NoError(t, err)
	content, readErr := os.ReadFile(dst)
	require.NoError(t, readErr)
	assert.Equal(t, "fresh", string(content))
}

func TestCopyFile_FatalAfterRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()
	src := filepath.Join(dir, "data.txt")
	dst := filepath.Join(dir, "missing-dir", "data.txt")
	writeFile(t, src, "payload")

	advisor := mocks.NewMockAdvisor(ctrl)
	advisor.EXPECT().
		PermissionAdvice(filepath.Dir(dst)).
		Return("check directory permissions under the deployment root")

	ops := New(DefaultPolicy(), advisor)
	err := ops.CopyFile(src, dst, false)

	require.Error(t, err)
	var copyErr *CopyError
	require.True(t, errors.As(err, &copyErr))
	assert.Equal(t, src, copyErr.Source)
	assert.Equal(t, dst, copyErr.Dest)
	assert.Contains(t, err.Error(), "check directory permissions")
}

func TestCopyTree(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := filepath.Join(t.TempDir(), "target")

	writeFile(t, filepath.Join(srcDir, "index.html"), "index")
	writeFile(t, filepath.Join(srcDir, "logic.tpl"), "template")
	writeFile(t, filepath.Join(srcDir, "assets", "style.css"), "css")
	writeFile(t, filepath.Join(srcDir, "assets", "deep", "app.js"), "js")
	writeFile(t, filepath.Join(srcDir, "assets", "deep", "page.tpl"), "template")

	ops := NewDefault()
	require.NoError(t, ops.CopyTree(srcDir, dstDir, true))

	assert.FileExists(t, filepath.Join(dstDir, "index.html"))
	assert.FileExists(t, filepath.Join(dstDir, "assets", "style.css"))
	assert.FileExists(t, filepath.Join(dstDir, "assets", "deep", "app.js"))

	// Exclusion applies at every depth, not just the root.
	assert.NoFileExists(t, filepath.Join(dstDir, "logic.tpl"))
	assert.NoFileExists(t, filepath.Join(dstDir, "assets", "deep", "page.tpl"))

	// Target directories carry no access markers.
	assert.NoFileExists(t, filepath.Join(dstDir, DefaultMarkerName))
	assert.NoFileExists(t, filepath.Join(dstDir, "assets", DefaultMarkerName))
}

func TestCopyTree_FileSourceDelegatesToCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "single.txt")
	dst := filepath.Join(dir, "copied.txt")
	writeFile(t, src, "just one file")

	ops := NewDefault()
	require.NoError(t, ops.CopyTree(src, dst, false))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "just one file", string(content))
}

func TestCopyTree_PropagatesCopyError(t *testing.T) {
	srcDir := t.TempDir()
	writeFile(t, filepath.Join(srcDir, "a.txt"), "a")

	// An unwritable target parent makes EnsureDir fail silently and the
	// file copy fail fatally.
	dstDir := string(filepath.Separator) + filepath.Join("proc", "deployfs-no-write", "target")

	ops := NewDefault()
	err := ops.CopyTree(srcDir, dstDir, false)

	var copyErr *CopyError
	require.True(t, errors.As(err, &copyErr))
}

func TestPolicy_IsExcluded(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "template extension", path: "views/page.tpl", want: true},
		{name: "script extension", path: "hooks/post.tengo", want: true},
		{name: "data file", path: "content/data.json", want: false},
		{name: "no extension", path: "README", want: false},
	}

	policy := DefaultPolicy()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.IsExcluded(tt.path))
		})
	}
}
