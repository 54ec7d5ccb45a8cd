// Package servicetest provides a scriptable fake engine and registry setup
// helpers for tests. The fake preprocesses with the real scanner but fakes
// analysis: diagnostics are scripted per file and emit derives a .js artifact
// from the hosted source text.
package servicetest

import (
	"context"
	"fmt"
	"sync"

	"github.com/tstools/tsvc/internal/engine"
	"github.com/tstools/tsvc/internal/logging"
	"github.com/tstools/tsvc/internal/project"
	"github.com/tstools/tsvc/internal/scanner"
	"github.com/tstools/tsvc/internal/tspath"
	"github.com/tstools/tsvc/internal/vfs"
	"github.com/tstools/tsvc/internal/vfs/vfstest"
)

// Service is a fake engine.Service. Script diagnostics and formatting edits
// by file name before exercising the code under test; Calls records every
// analysis method invocation for assertions on call patterns.
type Service struct {
	scanner.Scanner

	host  engine.Host
	files map[string]string

	SyntacticDiagnostics map[string][]*engine.Diagnostic
	SemanticDiagnostics  map[string][]*engine.Diagnostic
	OptionsDiagnostics   []*engine.Diagnostic
	FormattingEdits      map[string][]*engine.TextChange

	Calls []string
}

var _ engine.Service = (*Service)(nil)

func NewService(host engine.Host) *Service {
	return &Service{
		host:                 host,
		files:                make(map[string]string),
		SyntacticDiagnostics: make(map[string][]*engine.Diagnostic),
		SemanticDiagnostics:  make(map[string][]*engine.Diagnostic),
		FormattingEdits:      make(map[string][]*engine.TextChange),
	}
}

func (s *Service) record(format string, args ...any) {
	s.Calls = append(s.Calls, fmt.Sprintf(format, args...))
}

// HostedFiles returns the file names pushed through AddFile.
func (s *Service) HostedFiles() []string {
	names := make([]string, 0, len(s.files))
	for name := range s.files {
		names = append(names, name)
	}
	return names
}

func (s *Service) AddFile(fileName string, content string) {
	s.record("AddFile(%s)", fileName)
	s.files[fileName] = content
}

func (s *Service) GetEmitOutput(ctx context.Context, fileName string) *engine.EmitOutput {
	s.record("GetEmitOutput(%s)", fileName)
	if s.hasErrors(fileName) {
		return &engine.EmitOutput{EmitSkipped: true}
	}
	content, ok := s.files[fileName]
	if !ok {
		return &engine.EmitOutput{EmitSkipped: true}
	}
	if tspath.TryGetExtensionFromPath(fileName) == ".d.ts" {
		return &engine.EmitOutput{}
	}
	outputName := tspath.RemoveFileExtension(fileName) + ".js"
	if outDir := s.host.CompilerOptions.OutDir; outDir != "" {
		outputName = tspath.CombinePaths(
			tspath.GetNormalizedAbsolutePath(outDir, s.host.CurrentDirectory),
			tspath.GetBaseFileName(outputName),
		)
	}
	return &engine.EmitOutput{
		OutputFiles: []engine.OutputFile{{Name: outputName, Text: content}},
	}
}

func (s *Service) hasErrors(fileName string) bool {
	for _, diagnostic := range s.SyntacticDiagnostics[fileName] {
		if diagnostic.Category == engine.CategoryError {
			return true
		}
	}
	for _, diagnostic := range s.SemanticDiagnostics[fileName] {
		if diagnostic.Category == engine.CategoryError {
			return true
		}
	}
	return false
}

func (s *Service) GetSyntacticDiagnostics(ctx context.Context, fileName string) []*engine.Diagnostic {
	s.record("GetSyntacticDiagnostics(%s)", fileName)
	return s.SyntacticDiagnostics[fileName]
}

func (s *Service) GetSemanticDiagnostics(ctx context.Context, fileName string) []*engine.Diagnostic {
	s.record("GetSemanticDiagnostics(%s)", fileName)
	return s.SemanticDiagnostics[fileName]
}

func (s *Service) GetCompilerOptionsDiagnostics(ctx context.Context) []*engine.Diagnostic {
	s.record("GetCompilerOptionsDiagnostics()")
	return s.OptionsDiagnostics
}

func (s *Service) GetFormattingEditsForDocument(fileName string, settings *engine.FormatCodeSettings) []*engine.TextChange {
	s.record("GetFormattingEditsForDocument(%s)", fileName)
	return s.FormattingEdits[fileName]
}

func (s *Service) GetFormattingEditsForRange(fileName string, pos int, end int, settings *engine.FormatCodeSettings) []*engine.TextChange {
	s.record("GetFormattingEditsForRange(%s,%d,%d)", fileName, pos, end)
	edits := s.FormattingEdits[fileName]
	inRange := make([]*engine.TextChange, 0, len(edits))
	for _, edit := range edits {
		if edit.Range.Pos >= pos && edit.Range.End <= end {
			inRange = append(inRange, edit)
		}
	}
	return inRange
}

// Utils gives tests access to the pieces behind a registry built by Setup.
type Utils struct {
	fs   vfs.FS
	logs *logging.LogCollector

	mu       sync.Mutex
	services []*Service
	// Prepare scripts each service created by the registry before any file
	// is hosted in it.
	Prepare func(service *Service)
}

func (u *Utils) FS() vfs.FS {
	return u.fs
}

func (u *Utils) Logs() string {
	return u.logs.String()
}

// Service returns the most recently created fake service.
func (u *Utils) Service() *Service {
	u.mu.Lock()
	defer u.mu.Unlock()
	if len(u.services) == 0 {
		return nil
	}
	return u.services[len(u.services)-1]
}

func (u *Utils) Services() []*Service {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]*Service(nil), u.services...)
}

// Setup builds a registry over an in-memory case-insensitive file system
// seeded with the given files, wired to fake services.
func Setup(files map[string]string) (*project.Registry, *Utils) {
	fs := vfstest.FromMap(files, false /*useCaseSensitiveFileNames*/)
	logs := logging.NewLogCollector()
	utils := &Utils{fs: fs, logs: logs}
	registry := project.NewRegistry(&project.RegistryOptions{
		FS:               fs,
		CurrentDirectory: "/",
		Logger:           logs.Logger,
		NewService: func(host engine.Host) (engine.Service, error) {
			service := NewService(host)
			utils.mu.Lock()
			prepare := utils.Prepare
			utils.services = append(utils.services, service)
			utils.mu.Unlock()
			if prepare != nil {
				prepare(service)
			}
			return service, nil
		},
	})
	return registry, utils
}

// DefaultConfig is a minimal manifest accepted by config discovery.
const DefaultConfig = `{"compilerOptions": {}}`
