package project

import (
	"context"
	"fmt"
	"io"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/tstools/tsvc/internal/config"
	"github.com/tstools/tsvc/internal/engine"
	"github.com/tstools/tsvc/internal/logging"
	"github.com/tstools/tsvc/internal/tspath"
	"github.com/tstools/tsvc/internal/vfs"
)

// RegistryOptions are the immutable initialization options for a Registry.
type RegistryOptions struct {
	FS               vfs.FS
	CurrentDirectory string
	Logger           logging.Logger

	// NewService constructs the engine handle for a new program.
	NewService func(host engine.Host) (engine.Service, error)
}

// Registry is the process-wide cache of programs, one per project root.
// Entries persist for the registry's lifetime and are never evicted, so
// external edits to a project's files after its first analysis are not
// reflected unless a new file enters the closure. Construct one at startup
// and inject it into callers; it is safe for concurrent use.
type Registry struct {
	options *RegistryOptions
	toPath  func(fileName string) tspath.Path

	mu       sync.RWMutex
	programs map[tspath.Path]*Program
	// configs memoizes manifest discovery by requesting directory. Inferred
	// projects are never memoized since they are specific to one file.
	configs map[tspath.Path]*config.ParsedConfig

	// group collapses concurrent check-then-create for the same root.
	group singleflight.Group
}

func NewRegistry(options *RegistryOptions) *Registry {
	if options.NewService == nil {
		panic("project: RegistryOptions.NewService is required")
	}
	opts := *options
	if opts.Logger == nil {
		opts.Logger = logging.NewLogger(io.Discard)
	}
	currentDirectory := opts.CurrentDirectory
	useCaseSensitiveFileNames := opts.FS.UseCaseSensitiveFileNames()
	return &Registry{
		options: &opts,
		toPath: func(fileName string) tspath.Path {
			return tspath.ToPath(fileName, currentDirectory, useCaseSensitiveFileNames)
		},
		programs: make(map[tspath.Path]*Program),
		configs:  make(map[tspath.Path]*config.ParsedConfig),
	}
}

// AcquireProgram returns the program owning fileName, constructing it on
// first use. Two calls for paths under the same project root return the
// identical program instance. Construction resolves the project definition,
// expands it to the transitive closure of referenced and imported files, and
// emits every file in the closure once (unless noEmit is configured). A
// requested file the cached program does not yet know is added to it, along
// with its own closure, so the file set keeps up with later acquisitions.
func (r *Registry) AcquireProgram(ctx context.Context, fileName string) (*Program, error) {
	cfg := r.resolveProject(fileName)
	rootPath := r.toPath(cfg.CurrentDirectory)

	r.mu.RLock()
	program := r.programs[rootPath]
	r.mu.RUnlock()
	if program == nil {
		result, err, _ := r.group.Do(string(rootPath), func() (any, error) {
			r.mu.RLock()
			existing := r.programs[rootPath]
			r.mu.RUnlock()
			if existing != nil {
				return existing, nil
			}
			created, err := newProgram(ctx, cfg, r.options)
			if err != nil {
				return nil, err
			}
			r.mu.Lock()
			r.programs[rootPath] = created
			r.mu.Unlock()
			return created, nil
		})
		if err != nil {
			return nil, fmt.Errorf("project: creating program for %s: %w", cfg.CurrentDirectory, err)
		}
		program = result.(*Program)
	}
	program.ensureFile(ctx, fileName)
	return program, nil
}

// Programs returns the cached programs in unspecified order.
func (r *Registry) Programs() []*Program {
	r.mu.RLock()
	defer r.mu.RUnlock()
	programs := make([]*Program, 0, len(r.programs))
	for _, program := range r.programs {
		programs = append(programs, program)
	}
	return programs
}

func (r *Registry) resolveProject(fileName string) *config.ParsedConfig {
	fileName = tspath.GetNormalizedAbsolutePath(fileName, r.options.CurrentDirectory)
	dirPath := r.toPath(tspath.GetDirectoryPath(fileName))

	r.mu.RLock()
	cfg := r.configs[dirPath]
	r.mu.RUnlock()
	if cfg != nil {
		return cfg
	}

	cfg = config.Discover(fileName, r.options.CurrentDirectory, r.options.FS)
	if !cfg.Inferred() {
		r.mu.Lock()
		r.configs[dirPath] = cfg
		r.mu.Unlock()
	}
	return cfg
}
