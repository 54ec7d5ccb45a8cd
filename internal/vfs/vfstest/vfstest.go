// Package vfstest provides an in-memory vfs.FS for tests.
package vfstest

import (
	"sync"

	"github.com/tstools/tsvc/internal/tspath"
	"github.com/tstools/tsvc/internal/vfs"
)

type mapFS struct {
	mu                        sync.RWMutex
	files                     map[tspath.Path]fileEntry
	useCaseSensitiveFileNames bool
}

type fileEntry struct {
	fileName string
	content  string
}

var _ vfs.FS = (*mapFS)(nil)

// FromMap creates an FS from a map of absolute, slash-separated file names to
// contents. Parent directories exist implicitly.
func FromMap(files map[string]string, useCaseSensitiveFileNames bool) vfs.FS {
	fs := &mapFS{
		files:                     make(map[tspath.Path]fileEntry, len(files)),
		useCaseSensitiveFileNames: useCaseSensitiveFileNames,
	}
	for fileName, content := range files {
		fileName = tspath.NormalizePath(fileName)
		if !tspath.IsRootedDiskPath(fileName) {
			panic("vfstest: file names must be absolute: " + fileName)
		}
		fs.files[fs.toPath(fileName)] = fileEntry{fileName: fileName, content: content}
	}
	return fs
}

func (fs *mapFS) toPath(fileName string) tspath.Path {
	return tspath.ToPath(fileName, "/", fs.useCaseSensitiveFileNames)
}

func (fs *mapFS) UseCaseSensitiveFileNames() bool {
	return fs.useCaseSensitiveFileNames
}

func (fs *mapFS) ReadFile(path string) (contents string, ok bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	entry, ok := fs.files[fs.toPath(path)]
	return entry.content, ok
}

func (fs *mapFS) WriteFile(path string, data string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	path = tspath.NormalizePath(path)
	fs.files[fs.toPath(path)] = fileEntry{fileName: path, content: data}
	return nil
}

func (fs *mapFS) FileExists(path string) bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	_, ok := fs.files[fs.toPath(path)]
	return ok
}

func (fs *mapFS) DirectoryExists(path string) bool {
	dirPath := fs.toPath(path)
	if dirPath != "/" {
		dirPath += "/"
	}
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	for filePath := range fs.files {
		if len(filePath) > len(dirPath) && filePath[:len(dirPath)] == dirPath {
			return true
		}
	}
	return false
}
