package slug_test

import (
	"testing"

	"fitstat/internal/platform/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"SportsWalking": "sports-walking",
		"Running":       "running",
		"  Swimming  ":  "swimming",
		"!!!":           "workout",
	}
	for in, want := range cases {
		if got := slug.Make(in); got != want {
			t.Fatalf("slug.Make(%q) = %q, want %q", in, got, want)
		}
	}
}
