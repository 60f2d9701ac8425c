package fsops

// File and directory permission constants.
// These follow standard Unix permission conventions and are used
// consistently by the tree operations.
const (
	// Default file modes.
	FileModeDefault = 0o644 // -rw-r--r--: Default for regular files
	FileModeSecure  = 0o640 // -rw-r-----: For sensitive files (owner read/write, group read)
	FileModeExec    = 0o755 // -rwxr-xr-x: For executable files

	// Directory modes.
	DirModeDefault = 0o755 // drwxr-xr-x: Default for directories, owner-writable
	DirModeGroup   = 0o775 // drwxrwxr-x: Escalation ceiling, group-writable
	DirModeSecure  = 0o750 // drwxr-x---: For sensitive directories
	DirModePrivate = 0o700 // drwx------: For private directories
)
