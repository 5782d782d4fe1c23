package objcswift_test

import (
	"testing"

	objcswift "github.com/arclight-dev/objcswift"
	"github.com/arclight-dev/objcswift/internal/golden"
)

// TestGolden_Corpus runs the rewrite pipeline end to end against fixture
// units under testdata/, comparing the emitted, trailer-terminated
// output against checked-in <name>.golden.swift files. Refresh matching
// units by running with OBJCSWIFT_GOLDEN_REFRESH=<glob>.
func TestGolden_Corpus(t *testing.T) {
	corpus := golden.Corpus{Root: "testdata", Refresh: "OBJCSWIFT_GOLDEN_REFRESH"}
	corpus.Run(t, func(t *testing.T, u golden.Unit) map[string]string {
		inputs := objcswift.StaticSources{Files: u.Files, Order: u.Order}
		out := objcswift.NewMemoryOutput()
		if _, err := objcswift.Rewrite(inputs, out); err != nil {
			t.Fatalf("rewrite failed: %v", err)
		}
		return out.Files
	})
}
