// Package config locates and parses the project manifest that determines a
// program's root directory and initial file set.
package config

import (
	json "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/tstools/tsvc/internal/tspath"
	"github.com/tstools/tsvc/internal/vfs"
)

// FileName is the manifest searched for in ancestor directories.
const FileName = "tsconfig.json"

// CompilerOptions is the subset of engine options the facade consumes.
// Everything else in the manifest's compilerOptions object is passed through
// to the engine untouched and is not modeled here.
type CompilerOptions struct {
	OutDir      string `json:"outDir,omitzero"`
	Declaration bool   `json:"declaration,omitzero"`
	NoEmit      bool   `json:"noEmit,omitzero"`
}

type configFile struct {
	CompilerOptions *CompilerOptions `json:"compilerOptions"`
	Files           []string         `json:"files"`
}

// ParsedConfig is a resolved project definition: a root directory and the
// initial files the closure grows from.
type ParsedConfig struct {
	// ConfigFileName is the absolute manifest path, or "" for an inferred
	// single-file project.
	ConfigFileName string
	// CurrentDirectory is the project root directory.
	CurrentDirectory string
	// FileNames are the initial root files, absolute and normalized.
	FileNames []string

	CompilerOptions *CompilerOptions
}

func (c *ParsedConfig) Inferred() bool {
	return c.ConfigFileName == ""
}

// Discover finds the project definition owning fileName by walking parent
// directories for a manifest. Discovery never fails: a missing, unreadable,
// or malformed manifest falls back to an inferred project containing just
// fileName, rooted at its directory.
func Discover(fileName string, currentDirectory string, fs vfs.FS) *ParsedConfig {
	fileName = tspath.GetNormalizedAbsolutePath(fileName, currentDirectory)
	dir := tspath.GetDirectoryPath(fileName)
	for {
		configFileName := tspath.CombinePaths(dir, FileName)
		if fs.FileExists(configFileName) {
			if parsed := parseConfigFile(configFileName, fileName, fs); parsed != nil {
				return parsed
			}
			// Malformed manifest: treat the file as unconfigured rather
			// than surfacing an error.
			break
		}
		parent := tspath.GetDirectoryPath(dir)
		if parent == dir || parent == "" {
			break
		}
		dir = parent
	}
	return inferredConfig(fileName)
}

func parseConfigFile(configFileName string, requestingFileName string, fs vfs.FS) *ParsedConfig {
	contents, ok := fs.ReadFile(configFileName)
	if !ok {
		return nil
	}
	var raw configFile
	if err := json.Unmarshal([]byte(contents), &raw, jsontext.AllowDuplicateNames(true)); err != nil {
		return nil
	}
	configDir := tspath.GetDirectoryPath(configFileName)
	fileNames := make([]string, 0, len(raw.Files)+1)
	for _, file := range raw.Files {
		fileNames = append(fileNames, tspath.GetNormalizedAbsolutePath(file, configDir))
	}
	if len(fileNames) == 0 {
		// A manifest without a files list still claims the directory; the
		// requesting file becomes the sole root.
		fileNames = append(fileNames, requestingFileName)
	}
	options := raw.CompilerOptions
	if options == nil {
		options = &CompilerOptions{}
	}
	return &ParsedConfig{
		ConfigFileName:   configFileName,
		CurrentDirectory: configDir,
		FileNames:        fileNames,
		CompilerOptions:  options,
	}
}

func inferredConfig(fileName string) *ParsedConfig {
	return &ParsedConfig{
		CurrentDirectory: tspath.GetDirectoryPath(fileName),
		FileNames:        []string{fileName},
		CompilerOptions:  &CompilerOptions{},
	}
}
