package main

import (
	"fmt"

	"github.com/tstools/tsvc/internal/engine"
	"github.com/tstools/tsvc/internal/project"
	"github.com/tstools/tsvc/internal/scanner"
	"github.com/tstools/tsvc/internal/vfs/osvfs"
)

// newRegistry wires a registry against the selected engine, or against the
// scan-only service for commands that need closure building but no analysis.
func newRegistry(scanOnly bool, quiet bool) (*project.Registry, error) {
	newService := scanner.NewScanOnlyService
	if !scanOnly {
		if flagEngine == "" {
			if len(engine.Engines()) == 0 {
				return nil, fmt.Errorf("no engine is linked into this build; analysis commands are unavailable")
			}
			return nil, fmt.Errorf("--engine is required (registered engines: %v)", engine.Engines())
		}
		newService = func(host engine.Host) (engine.Service, error) {
			return engine.Open(flagEngine, host)
		}
	}
	return project.NewRegistry(&project.RegistryOptions{
		FS:               osvfs.FS(),
		CurrentDirectory: osvfs.GetCurrentDirectory(),
		Logger:           newLogger(quiet),
		NewService:       newService,
	}), nil
}
