package fsops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CopyFile copies src to dst. When exclude is set and src carries an
// excluded extension, the copy is skipped and reported as success: the
// file is treated as already present so data-only deployments never
// overwrite logic files.
//
// On a copy failure the destination's permissions are relaxed and the copy
// retried once. If the retry also fails a *CopyError is returned. This is
// the only fatal error in the package.
func (o *Ops) CopyFile(src, dst string, exclude bool) error {
	if exclude && o.policy.IsExcluded(src) {
		return nil
	}

	if err := copyContents(src, dst); err == nil {
		return nil
	}

	_ = os.Chmod(dst, FileModeDefault)
	if err := copyContents(src, dst); err != nil {
		return &CopyError{
			Source: src,
			Dest:   dst,
			Advice: o.advice(filepath.Dir(dst)),
			Err:    err,
		}
	}
	return nil
}

// CopyTree mirrors srcDir into dstDir, applying the exclusion rule at
// every depth. Target directories are ensured without access markers.
// Unreadable source directories are skipped; a failed file copy aborts
// with its *CopyError. A plain-file source delegates to CopyFile.
//
// The traversal uses an explicit worklist so pathologically deep trees
// cannot exhaust the stack.
func (o *Ops) CopyTree(srcDir, dstDir string, exclude bool) error {
	info, err := os.Stat(srcDir)
	if err != nil || !info.IsDir() {
		return o.CopyFile(srcDir, dstDir, exclude)
	}

	type pair struct {
		src, dst string
	}
	queue := []pair{{srcDir, dstDir}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		o.EnsureDir(cur.dst, false)

		entries, err := os.ReadDir(cur.src)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			src := filepath.Join(cur.src, entry.Name())
			dst := filepath.Join(cur.dst, entry.Name())
			if entry.IsDir() {
				queue = append(queue, pair{src, dst})
				continue
			}
			if err := o.CopyFile(src, dst, exclude); err != nil {
				return err
			}
		}
	}
	return nil
}

// copyContents copies the contents of srcFile to dstFile.
func copyContents(srcFile, dstFile string) error {
	src, err := os.Open(srcFile)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", srcFile, err)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.Create(dstFile)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstFile, err)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to copy from %s to %s: %w", srcFile, dstFile, err)
	}
	return nil
}
