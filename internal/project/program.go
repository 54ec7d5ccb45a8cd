package project

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/zeebo/xxh3"

	"github.com/tstools/tsvc/internal/config"
	"github.com/tstools/tsvc/internal/engine"
	"github.com/tstools/tsvc/internal/logging"
	"github.com/tstools/tsvc/internal/tspath"
	"github.com/tstools/tsvc/internal/vfs"
)

// Program owns one engine handle per project root and the set of files the
// engine analyzes. The file set grows monotonically: closure building and
// later acquisitions only ever add files. Growth is serialized internally;
// analysis operations are not synchronized and callers serialize them per
// instance.
type Program struct {
	cfg    *config.ParsedConfig
	fs     vfs.FS
	logger logging.Logger
	toPath func(fileName string) tspath.Path

	// mu guards file-set mutation after construction.
	mu sync.Mutex

	service engine.Service

	// fileNames preserves insertion order: config roots first, then files
	// in closure discovery order.
	fileNames   []string
	filesByPath map[tspath.Path]*hostedFile

	// missingFiles are reference or import targets that resolved to paths
	// with no file behind them. They are skipped with a warning and
	// recorded so repeated scans don't re-warn.
	missingFiles map[tspath.Path]string
}

type hostedFile struct {
	fileName string
	content  string
	hash     xxh3.Uint128
}

func newProgram(ctx context.Context, cfg *config.ParsedConfig, options *RegistryOptions) (*Program, error) {
	service, err := options.NewService(engine.Host{
		FS:               options.FS,
		CurrentDirectory: cfg.CurrentDirectory,
		CompilerOptions:  cfg.CompilerOptions,
		Logger:           options.Logger,
	})
	if err != nil {
		return nil, err
	}

	useCaseSensitiveFileNames := options.FS.UseCaseSensitiveFileNames()
	p := &Program{
		cfg:    cfg,
		fs:     options.FS,
		logger: options.Logger,
		toPath: func(fileName string) tspath.Path {
			return tspath.ToPath(fileName, cfg.CurrentDirectory, useCaseSensitiveFileNames)
		},
		service:      service,
		filesByPath:  make(map[tspath.Path]*hostedFile),
		missingFiles: make(map[tspath.Path]string),
	}

	roots := make([]string, 0, len(cfg.FileNames))
	for _, fileName := range cfg.FileNames {
		if file := p.addFile(fileName); file != nil {
			roots = append(roots, file.fileName)
		}
	}
	p.expandClosure(roots)
	p.emitFrom(ctx, 0)

	if verbose := p.logger.Verbose(); verbose != nil {
		verbose.Write(p.print())
	}
	return p, nil
}

// ensureFile grows the program to include fileName when a file exists behind
// it, expanding the closure from it and emitting whatever the expansion
// added. A path already known, or with no file behind it, leaves the program
// unchanged.
func (p *Program) ensureFile(ctx context.Context, fileName string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fileName = p.absolutePath(fileName)
	if _, ok := p.filesByPath[p.toPath(fileName)]; ok {
		return
	}
	before := len(p.fileNames)
	if file := p.addFile(fileName); file != nil {
		p.expandClosure([]string{file.fileName})
	}
	p.emitFrom(ctx, before)
}

// emitFrom emits every file from the given fileNames index onward, honoring
// noEmit. Emit errors are logged, never surfaced.
func (p *Program) emitFrom(ctx context.Context, start int) {
	if p.cfg.CompilerOptions.NoEmit {
		return
	}
	for _, fileName := range slices.Clone(p.fileNames[start:]) {
		if _, err := p.EmitFile(ctx, fileName); err != nil {
			p.logger.Logf("emit of %s failed: %v", fileName, err)
		}
	}
}

// Root returns the project root directory.
func (p *Program) Root() string {
	return p.cfg.CurrentDirectory
}

func (p *Program) ConfigFileName() string {
	return p.cfg.ConfigFileName
}

func (p *Program) Config() *config.ParsedConfig {
	return p.cfg
}

// Service returns the engine handle. Callers must serialize use with other
// operations on this program.
func (p *Program) Service() engine.Service {
	return p.service
}

// FileNames returns the project's files in insertion order.
func (p *Program) FileNames() []string {
	return slices.Clone(p.fileNames)
}

func (p *Program) ContainsFile(fileName string) bool {
	_, ok := p.filesByPath[p.toPath(p.absolutePath(fileName))]
	return ok
}

// FileContent returns the hosted content of a project file.
func (p *Program) FileContent(fileName string) (string, bool) {
	if file, ok := p.filesByPath[p.toPath(p.absolutePath(fileName))]; ok {
		return file.content, true
	}
	return "", false
}

func (p *Program) absolutePath(fileName string) string {
	return tspath.GetNormalizedAbsolutePath(fileName, p.cfg.CurrentDirectory)
}

// ToPath converts a file name to its canonical form under this program's
// root and case sensitivity. Two names denote the same file iff their
// canonical forms are equal.
func (p *Program) ToPath(fileName string) tspath.Path {
	return p.toPath(p.absolutePath(fileName))
}

// addFile reads fileName from disk and hosts it in the engine. Adding an
// already-known path is a no-op returning the existing entry; a path with no
// file behind it is recorded as missing and nil is returned.
func (p *Program) addFile(fileName string) *hostedFile {
	fileName = p.absolutePath(fileName)
	path := p.toPath(fileName)
	if file, ok := p.filesByPath[path]; ok {
		return file
	}
	if _, missing := p.missingFiles[path]; missing {
		return nil
	}
	content, ok := p.fs.ReadFile(fileName)
	if !ok {
		p.missingFiles[path] = fileName
		p.logger.Logf("file %s does not exist and was skipped", fileName)
		return nil
	}
	file := &hostedFile{
		fileName: fileName,
		content:  content,
		hash:     xxh3.Hash128([]byte(content)),
	}
	p.filesByPath[path] = file
	p.fileNames = append(p.fileNames, fileName)
	p.service.AddFile(fileName, content)
	return file
}

// expandClosure grows the file set to the transitive closure of the
// reference/import relation starting from roots. The worklist only ever
// carries files not previously known, so a cyclic reference graph terminates
// once every reachable file has been seen.
func (p *Program) expandClosure(roots []string) {
	pending := slices.Clone(roots)
	for len(pending) > 0 {
		fileName := pending[0]
		pending = pending[1:]
		file, ok := p.filesByPath[p.toPath(fileName)]
		if !ok {
			continue
		}
		for _, resolved := range p.resolveDependencies(file) {
			if p.ContainsFile(resolved) {
				continue
			}
			if added := p.addFile(resolved); added != nil {
				pending = append(pending, added.fileName)
			}
		}
	}
}

// resolveDependencies preprocesses a file and resolves its reference
// directives and relative imports to absolute paths. Non-relative imports
// are module references the engine resolves on its own and do not grow the
// closure here.
func (p *Program) resolveDependencies(file *hostedFile) []string {
	info := p.service.PreProcessFile(file.content)
	containingDir := tspath.GetDirectoryPath(file.fileName)

	resolved := make([]string, 0, len(info.ReferencedFiles)+len(info.ImportedFiles))
	for _, ref := range info.ReferencedFiles {
		fileName := ref.FileName
		if !tspath.IsRootedDiskPath(fileName) {
			fileName = tspath.CombinePaths(containingDir, fileName)
		}
		resolved = append(resolved, tspath.NormalizePath(fileName))
	}
	for _, imp := range info.ImportedFiles {
		if !isRelativeSpecifier(imp.FileName) {
			continue
		}
		fileName := tspath.NormalizePath(tspath.CombinePaths(containingDir, imp.FileName))
		if !tspath.HasExtension(fileName) {
			// An extensionless relative import takes the importing
			// file's extension.
			fileName += tspath.TryGetExtensionFromPath(file.fileName)
		}
		resolved = append(resolved, fileName)
	}
	return resolved
}

func isRelativeSpecifier(specifier string) bool {
	return specifier == "." || specifier == ".." ||
		strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../")
}

func (p *Program) print() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "Program %s\n", p.cfg.CurrentDirectory)
	if p.cfg.ConfigFileName != "" {
		fmt.Fprintf(&builder, "\tConfig: %s\n", p.cfg.ConfigFileName)
	}
	fmt.Fprintf(&builder, "\tFiles (%d)\n", len(p.fileNames))
	for _, fileName := range p.fileNames {
		fmt.Fprintf(&builder, "\t\t%s\n", fileName)
	}
	return builder.String()
}
