package servicetest

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/peter-evans/patience"
)

// AssertTextEqual fails the test with a unified diff when two text blobs
// differ. Use for emitted outputs and formatted documents, where a plain
// inequality message would be unreadable.
func AssertTextEqual(t *testing.T, got string, want string) {
	t.Helper()
	if got == want {
		return
	}
	diffs := patience.Diff(strings.Split(want, "\n"), strings.Split(got, "\n"))
	t.Fatalf("text differs (-want +got):\n%s", patience.UnifiedDiffText(diffs))
}

// AssertDeepEqual fails the test with a cmp diff when two values differ.
func AssertDeepEqual[T any](t *testing.T, got T, want T, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Fatalf("values differ (-want +got):\n%s", diff)
	}
}
