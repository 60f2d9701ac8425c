package fsops

import (
	"path/filepath"
	"strings"
)

// Default policy values. Deployments that only ship data must not clobber
// the application's logic files, so template and script extensions are
// excluded from copies by default.
var defaultExcludedExtensions = []string{".tpl", ".tmpl", ".tengo"}

const (
	// DefaultMarkerName is the access-deny marker file name understood by
	// Apache-style web servers.
	DefaultMarkerName = ".htaccess"

	// DefaultMarkerContent denies all direct HTTP access to a directory.
	DefaultMarkerContent = "order deny,allow\ndeny from all\n"
)

// Policy carries the static deployment rules for the tree operations:
// which file extensions a copy treats as already present, and what the
// access-deny marker looks like. A Policy is immutable once constructed.
type Policy struct {
	// ExcludedExtensions are matched case-insensitively against the
	// source file extension (including the leading dot).
	ExcludedExtensions []string

	// MarkerName is the file name of the access-deny marker.
	MarkerName string

	// MarkerContent is written verbatim into new markers. The content is
	// opaque to this package.
	MarkerContent string
}

// DefaultPolicy returns the stock policy: template/script extensions
// excluded and an Apache deny-all marker.
func DefaultPolicy() Policy {
	return Policy{
		ExcludedExtensions: defaultExcludedExtensions,
		MarkerName:         DefaultMarkerName,
		MarkerContent:      DefaultMarkerContent,
	}
}

// IsExcluded reports whether path carries one of the policy's excluded
// extensions.
func (p Policy) IsExcluded(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	for _, excluded := range p.ExcludedExtensions {
		if ext == strings.ToLower(excluded) {
			return true
		}
	}
	return false
}
