package config_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/tstools/tsvc/internal/config"
	"github.com/tstools/tsvc/internal/vfs/vfstest"
)

func TestDiscover(t *testing.T) {
	t.Parallel()

	t.Run("manifest in the same directory", func(t *testing.T) {
		t.Parallel()
		fs := vfstest.FromMap(map[string]string{
			"/home/src/project/tsconfig.json": `{"files": ["a.ts", "b.ts"]}`,
			"/home/src/project/a.ts":          "export {};",
			"/home/src/project/b.ts":          "export {};",
		}, false)
		parsed := config.Discover("/home/src/project/a.ts", "/", fs)
		assert.Equal(t, parsed.ConfigFileName, "/home/src/project/tsconfig.json")
		assert.Equal(t, parsed.CurrentDirectory, "/home/src/project")
		assert.Assert(t, !parsed.Inferred())
		assert.DeepEqual(t, parsed.FileNames, []string{"/home/src/project/a.ts", "/home/src/project/b.ts"})
	})

	t.Run("manifest in an ancestor directory", func(t *testing.T) {
		t.Parallel()
		fs := vfstest.FromMap(map[string]string{
			"/home/src/project/tsconfig.json": `{"files": ["src/deep/a.ts"]}`,
			"/home/src/project/src/deep/a.ts": "export {};",
		}, false)
		parsed := config.Discover("/home/src/project/src/deep/a.ts", "/", fs)
		assert.Equal(t, parsed.ConfigFileName, "/home/src/project/tsconfig.json")
		assert.Equal(t, parsed.CurrentDirectory, "/home/src/project")
		assert.DeepEqual(t, parsed.FileNames, []string{"/home/src/project/src/deep/a.ts"})
	})

	t.Run("nearest manifest wins", func(t *testing.T) {
		t.Parallel()
		fs := vfstest.FromMap(map[string]string{
			"/home/src/tsconfig.json":         `{"files": ["outer.ts"]}`,
			"/home/src/project/tsconfig.json": `{"files": ["a.ts"]}`,
			"/home/src/project/a.ts":          "export {};",
		}, false)
		parsed := config.Discover("/home/src/project/a.ts", "/", fs)
		assert.Equal(t, parsed.ConfigFileName, "/home/src/project/tsconfig.json")
	})

	t.Run("no manifest infers a single-file project", func(t *testing.T) {
		t.Parallel()
		fs := vfstest.FromMap(map[string]string{
			"/home/src/project/a.ts": "export {};",
		}, false)
		parsed := config.Discover("/home/src/project/a.ts", "/", fs)
		assert.Assert(t, parsed.Inferred())
		assert.Equal(t, parsed.ConfigFileName, "")
		assert.Equal(t, parsed.CurrentDirectory, "/home/src/project")
		assert.DeepEqual(t, parsed.FileNames, []string{"/home/src/project/a.ts"})
	})

	t.Run("relative request resolves against the current directory", func(t *testing.T) {
		t.Parallel()
		fs := vfstest.FromMap(map[string]string{
			"/home/src/project/tsconfig.json": `{"files": ["a.ts"]}`,
			"/home/src/project/a.ts":          "export {};",
		}, false)
		parsed := config.Discover("a.ts", "/home/src/project", fs)
		assert.Equal(t, parsed.ConfigFileName, "/home/src/project/tsconfig.json")
	})

	t.Run("empty files list uses the requesting file", func(t *testing.T) {
		t.Parallel()
		fs := vfstest.FromMap(map[string]string{
			"/home/src/project/tsconfig.json": `{"compilerOptions": {"noEmit": true}}`,
			"/home/src/project/a.ts":          "export {};",
		}, false)
		parsed := config.Discover("/home/src/project/a.ts", "/", fs)
		assert.Assert(t, !parsed.Inferred())
		assert.DeepEqual(t, parsed.FileNames, []string{"/home/src/project/a.ts"})
		assert.Assert(t, parsed.CompilerOptions.NoEmit)
	})

	t.Run("malformed manifest falls back to inferred", func(t *testing.T) {
		t.Parallel()
		fs := vfstest.FromMap(map[string]string{
			"/home/src/project/tsconfig.json": `{"files": [`,
			"/home/src/project/a.ts":          "export {};",
		}, false)
		parsed := config.Discover("/home/src/project/a.ts", "/", fs)
		assert.Assert(t, parsed.Inferred())
		assert.DeepEqual(t, parsed.FileNames, []string{"/home/src/project/a.ts"})
	})

	t.Run("compiler options", func(t *testing.T) {
		t.Parallel()
		fs := vfstest.FromMap(map[string]string{
			"/home/src/project/tsconfig.json": `{"compilerOptions": {"outDir": "dist", "declaration": true}, "files": ["a.ts"]}`,
			"/home/src/project/a.ts":          "export {};",
		}, false)
		parsed := config.Discover("/home/src/project/a.ts", "/", fs)
		assert.Equal(t, parsed.CompilerOptions.OutDir, "dist")
		assert.Assert(t, parsed.CompilerOptions.Declaration)
		assert.Assert(t, !parsed.CompilerOptions.NoEmit)
	})
}
