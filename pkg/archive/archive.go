// Package archive packs and unpacks deployment bundles. A bundle is a
// compressed archive holding the file tree a deployment stages before it
// is copied into place.
package archive

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mholt/archives"

	"github.com/glorpus-work/deployfs/pkg/fsops"
)

// Manager handles bundle extraction and creation.
type Manager struct{}

// NewManager creates a new Manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// ExtractBundle unpacks the archive at bundlePath into destDir. Entry
// paths are confined to destDir; an entry that would escape it aborts the
// extraction.
func (m *Manager) ExtractBundle(ctx context.Context, bundlePath, destDir string) error {
	fsys, err := archives.FileSystem(ctx, bundlePath, nil)
	if err != nil {
		return fmt.Errorf("failed to open bundle %s: %w", bundlePath, err)
	}
	if closer, ok := fsys.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	if err := os.MkdirAll(destDir, fsops.DirModeDefault); err != nil {
		return fmt.Errorf("failed to create staging directory %s: %w", destDir, err)
	}

	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		return m.extractEntry(fsys, path, destDir, d)
	})
}

// CreateBundle archives the tree under sourceDir as a gzipped tarball at
// bundlePath.
func (m *Manager) CreateBundle(ctx context.Context, sourceDir, bundlePath string) error {
	absSource, err := filepath.Abs(sourceDir)
	if err != nil {
		return fmt.Errorf("failed to resolve source directory: %w", err)
	}

	files, err := archives.FilesFromDisk(ctx, nil, map[string]string{
		absSource + string(os.PathSeparator): "",
	})
	if err != nil {
		return fmt.Errorf("failed to read files from %s: %w", sourceDir, err)
	}

	out, err := os.Create(bundlePath)
	if err != nil {
		return fmt.Errorf("failed to create bundle file %s: %w", bundlePath, err)
	}
	defer func() { _ = out.Close() }()

	format := archives.CompressedArchive{
		Compression: archives.Gz{},
		Archival:    archives.Tar{},
	}
	if err := format.Archive(ctx, out, files); err != nil {
		return fmt.Errorf("failed to write bundle: %w", err)
	}
	return nil
}

func (m *Manager) extractEntry(fsys fs.FS, path, destDir string, d fs.DirEntry) error {
	if path == "." {
		return nil
	}
	if !filepath.IsLocal(path) {
		return fmt.Errorf("bundle entry %q escapes the staging directory", path)
	}

	targetPath := filepath.Join(destDir, path)
	if d.IsDir() {
		return os.MkdirAll(targetPath, fsops.DirModeDefault)
	}

	info, err := d.Info()
	if err != nil {
		return fmt.Errorf("failed to get entry info for %s: %w", path, err)
	}
	// Symlinks are not extracted: a bundle must not plant links that point
	// outside its own tree.
	if !info.Mode().IsRegular() {
		return nil
	}

	src, err := fsys.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open bundle entry %s: %w", path, err)
	}
	defer func() { _ = src.Close() }()

	if err := os.MkdirAll(filepath.Dir(targetPath), fsops.DirModeDefault); err != nil {
		return fmt.Errorf("failed to create parent directory for %s: %w", path, err)
	}

	dst, err := os.OpenFile(targetPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", targetPath, err)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to extract %s: %w", path, err)
	}
	return nil
}
