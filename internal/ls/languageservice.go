package ls

import (
	"github.com/tstools/tsvc/internal/engine"
	"github.com/tstools/tsvc/internal/project"
)

// LanguageService exposes the per-file operations an editor integration
// consumes: formatting and diagnostics retrieval. It is a thin view over a
// cached program; the engine behind the program does the actual work.
type LanguageService struct {
	program        *project.Program
	formatSettings *engine.FormatCodeSettings
}

func NewLanguageService(program *project.Program, formatSettings *engine.FormatCodeSettings) *LanguageService {
	if formatSettings == nil {
		formatSettings = engine.DefaultFormatCodeSettings("\n")
	}
	return &LanguageService{
		program:        program,
		formatSettings: formatSettings,
	}
}

func (l *LanguageService) GetProgram() *project.Program {
	return l.program
}
