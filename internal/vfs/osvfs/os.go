// Package osvfs provides a vfs.FS backed by the real file system.
package osvfs

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/tstools/tsvc/internal/tspath"
	"github.com/tstools/tsvc/internal/vfs"
)

func FS() vfs.FS {
	return osFS{}
}

type osFS struct{}

var _ vfs.FS = osFS{}

func (osFS) UseCaseSensitiveFileNames() bool {
	// Windows and macOS are case-insensitive by default.
	return runtime.GOOS != "windows" && runtime.GOOS != "darwin"
}

func (osFS) ReadFile(path string) (contents string, ok bool) {
	data, err := os.ReadFile(filepath.FromSlash(path))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (osFS) WriteFile(path string, data string) error {
	osPath := filepath.FromSlash(path)
	if err := os.MkdirAll(filepath.Dir(osPath), 0o777); err != nil {
		return fmt.Errorf("vfs: creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(osPath, []byte(data), 0o666); err != nil {
		return fmt.Errorf("vfs: writing %s: %w", path, err)
	}
	return nil
}

func (osFS) FileExists(path string) bool {
	info, err := os.Stat(filepath.FromSlash(path))
	return err == nil && !info.IsDir()
}

func (osFS) DirectoryExists(path string) bool {
	info, err := os.Stat(filepath.FromSlash(path))
	return err == nil && info.IsDir()
}

// GetCurrentDirectory returns the process working directory in normalized
// slash form.
func GetCurrentDirectory() string {
	wd, err := os.Getwd()
	if err != nil {
		return "/"
	}
	return tspath.NormalizeSlashes(wd)
}
