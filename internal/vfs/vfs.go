// Package vfs provides the file-system boundary used by the program cache.
// Implementations must be safe for concurrent use.
package vfs

// FS is the subset of file-system behavior the facade needs: reading project
// inputs, writing emit outputs, and existence checks during closure building.
type FS interface {
	// UseCaseSensitiveFileNames reports whether file names are compared
	// case-sensitively on this file system.
	UseCaseSensitiveFileNames() bool

	// ReadFile reads the file at the given path. The ok result is false if
	// the file does not exist or could not be read.
	ReadFile(path string) (contents string, ok bool)

	// WriteFile writes content to the given path, creating parent
	// directories as needed.
	WriteFile(path string, data string) error

	FileExists(path string) bool
	DirectoryExists(path string) bool
}
