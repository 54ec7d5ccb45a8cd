package tspath_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/tstools/tsvc/internal/tspath"
)

func TestIsRootedDiskPath(t *testing.T) {
	t.Parallel()
	assert.Assert(t, tspath.IsRootedDiskPath("/home/src"))
	assert.Assert(t, tspath.IsRootedDiskPath("/"))
	assert.Assert(t, tspath.IsRootedDiskPath("c:/dev"))
	assert.Assert(t, tspath.IsRootedDiskPath("C:/dev"))
	assert.Assert(t, !tspath.IsRootedDiskPath(""))
	assert.Assert(t, !tspath.IsRootedDiskPath("src/a.ts"))
	assert.Assert(t, !tspath.IsRootedDiskPath("./a.ts"))
}

func TestNormalizePath(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{"/home/src/project", "/home/src/project"},
		{"/home/src/project/", "/home/src/project"},
		{"/home/src/./project", "/home/src/project"},
		{"/home/src/app/../project", "/home/src/project"},
		{"\\home\\src\\project", "/home/src/project"},
		{"/", "/"},
		{"", ""},
	}
	for _, test := range tests {
		test := test
		t.Run(test.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tspath.NormalizePath(test.input), test.want)
		})
	}
}

func TestGetNormalizedAbsolutePath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, tspath.GetNormalizedAbsolutePath("a.ts", "/home/src"), "/home/src/a.ts")
	assert.Equal(t, tspath.GetNormalizedAbsolutePath("./a.ts", "/home/src"), "/home/src/a.ts")
	assert.Equal(t, tspath.GetNormalizedAbsolutePath("../a.ts", "/home/src"), "/home/a.ts")
	assert.Equal(t, tspath.GetNormalizedAbsolutePath("/other/a.ts", "/home/src"), "/other/a.ts")
}

func TestGetDirectoryPath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, tspath.GetDirectoryPath("/home/src/a.ts"), "/home/src")
	assert.Equal(t, tspath.GetDirectoryPath("/a.ts"), "/")
	assert.Equal(t, tspath.GetDirectoryPath("a.ts"), "")
}

func TestExtensions(t *testing.T) {
	t.Parallel()
	assert.Equal(t, tspath.TryGetExtensionFromPath("/home/src/a.ts"), ".ts")
	assert.Equal(t, tspath.TryGetExtensionFromPath("/home/src/a.d.ts"), ".d.ts")
	assert.Equal(t, tspath.TryGetExtensionFromPath("/home/src/a"), "")
	assert.Assert(t, tspath.HasExtension("/home/src/a.ts"))
	assert.Assert(t, !tspath.HasExtension("/home/src/a"))
	assert.Equal(t, tspath.RemoveFileExtension("/home/src/a.ts"), "/home/src/a")
	assert.Equal(t, tspath.RemoveFileExtension("/home/src/a.d.ts"), "/home/src/a")
}

func TestToPath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, tspath.ToPath("a.ts", "/home/src", true), tspath.Path("/home/src/a.ts"))
	assert.Equal(t, tspath.ToPath("A.TS", "/home/src", true), tspath.Path("/home/src/A.TS"))
	assert.Equal(t, tspath.ToPath("A.TS", "/Home/Src", false), tspath.Path("/home/src/a.ts"))
}
