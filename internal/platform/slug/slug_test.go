package slug_test

import (
	"strings"
	"testing"

	"studytrack/internal/platform/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"Linear Algebra":   "linear-algebra",
		"  C++ / Systems ": "c-systems",
		"***":              "untitled",
		"":                 "untitled",
	}
	for in, want := range cases {
		if got := slug.Make(in); got != want {
			t.Fatalf("Make(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMakeCapsLength(t *testing.T) {
	t.Parallel()
	got := slug.Make(strings.Repeat("history ", 20))
	if len(got) > slug.MaxLen || strings.HasSuffix(got, "-") {
		t.Fatalf("slug not capped cleanly: %q", got)
	}
}
