package tspath

import (
	"path"
	"strings"
)

// Path is a normalized, absolute, canonically-cased file path used as a map key.
// Paths are always slash-separated. On case-insensitive file systems the
// canonical form is lowercased.
type Path string

const DirectorySeparator = '/'

func NormalizeSlashes(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// IsRootedDiskPath reports whether the path is absolute: either rooted at a
// directory separator or at a drive letter.
func IsRootedDiskPath(p string) bool {
	if p == "" {
		return false
	}
	if p[0] == DirectorySeparator {
		return true
	}
	// "c:/" style roots
	if len(p) >= 2 && isVolumeCharacter(p[0]) && p[1] == ':' {
		return true
	}
	return false
}

func isVolumeCharacter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// NormalizePath collapses "." and ".." segments of a slash-normalized path.
func NormalizePath(p string) string {
	p = NormalizeSlashes(p)
	if p == "" {
		return p
	}
	normalized := path.Clean(p)
	// path.Clean removes trailing separators; the root keeps its own.
	return normalized
}

func CombinePaths(firstPath string, paths ...string) string {
	result := NormalizeSlashes(firstPath)
	for _, trailingPath := range paths {
		if trailingPath == "" {
			continue
		}
		trailingPath = NormalizeSlashes(trailingPath)
		if result == "" || IsRootedDiskPath(trailingPath) {
			result = trailingPath
		} else {
			result = strings.TrimSuffix(result, "/") + "/" + trailingPath
		}
	}
	return result
}

// GetNormalizedAbsolutePath resolves fileName against currentDirectory and
// collapses relative segments.
func GetNormalizedAbsolutePath(fileName string, currentDirectory string) string {
	fileName = NormalizeSlashes(fileName)
	if !IsRootedDiskPath(fileName) {
		fileName = CombinePaths(currentDirectory, fileName)
	}
	return NormalizePath(fileName)
}

func GetDirectoryPath(p string) string {
	p = NormalizeSlashes(p)
	dir := path.Dir(p)
	if dir == "." {
		return ""
	}
	return dir
}

func GetBaseFileName(p string) string {
	return path.Base(NormalizeSlashes(p))
}

// TryGetExtensionFromPath returns the extension including the leading dot, or
// "" when the path has none. Multi-part declaration extensions (".d.ts") are
// returned whole.
func TryGetExtensionFromPath(p string) string {
	base := GetBaseFileName(p)
	if strings.HasSuffix(base, ".d.ts") {
		return ".d.ts"
	}
	return path.Ext(base)
}

func HasExtension(p string) bool {
	return strings.Contains(GetBaseFileName(p), ".")
}

func RemoveFileExtension(p string) string {
	ext := TryGetExtensionFromPath(p)
	return p[:len(p)-len(ext)]
}

// ToPath converts a file name to its canonical Path form, resolving it
// against currentDirectory and folding case on case-insensitive file systems.
func ToPath(fileName string, currentDirectory string, useCaseSensitiveFileNames bool) Path {
	absolute := GetNormalizedAbsolutePath(fileName, currentDirectory)
	if !useCaseSensitiveFileNames {
		absolute = strings.ToLower(absolute)
	}
	return Path(absolute)
}
