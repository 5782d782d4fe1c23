// Package golden provides a file-based golden test harness for the
// rewrite pipeline: a directory of Objective-C unit directories, each
// compared against expected Swift output files sitting alongside them.
package golden

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Unit is one test case: an ordered set of Objective-C source files
// sharing a directory, plus optional metadata read from a sidecar
// "case.yaml" file.
type Unit struct {
	Dir   string
	Files map[string]string // name (relative to Dir) -> contents
	Order []string
	Meta  Meta
}

// Meta is the optional per-unit metadata a "case.yaml" sidecar can
// carry: a free-text description, which does not change how the unit
// runs. Absent a sidecar, Meta is the zero value.
type Meta struct {
	Description string `yaml:"description"`
}

// Corpus walks Root for subdirectories containing .h/.m files and runs
// test once per unit, comparing its returned outputs (keyed by output
// file name) against "<Dir>/<name>.golden.swift" golden files.
type Corpus struct {
	Root    string
	Refresh string // env var name; when set to a glob, matching units are rewritten instead of compared
}

// Run discovers every unit under c.Root and invokes test once per unit.
// test returns a map from Swift output file name to its generated text.
func (c Corpus) Run(t *testing.T, test func(t *testing.T, u Unit) map[string]string) {
	root := callerDir(t, c.Root)

	units, err := discoverUnits(root)
	if err != nil {
		t.Fatalf("golden: discovering units under %q: %v", root, err)
	}

	refresh := ""
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
	}

	for _, u := range units {
		u := u
		t.Run(filepath.Base(u.Dir), func(t *testing.T) {
			outputs := test(t, u)

			names := make([]string, 0, len(outputs))
			for name := range outputs {
				names = append(names, name)
			}
			slices.Sort(names)

			for _, name := range names {
				got := outputs[name]
				goldenPath := filepath.Join(u.Dir, name+".golden.swift")

				shouldRefresh := refresh != ""
				if shouldRefresh {
					if ok, _ := doublestar.Match(refresh, filepath.ToSlash(goldenPath)); !ok {
						shouldRefresh = false
					}
				}

				if shouldRefresh {
					if err := os.WriteFile(goldenPath, []byte(got), 0o600); err != nil {
						t.Fatalf("golden: writing %q: %v", goldenPath, err)
					}
					continue
				}

				want, err := os.ReadFile(goldenPath)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Fatalf("golden: reading %q: %v", goldenPath, err)
				}

				if diff := Diff(got, string(want)); diff != "" {
					t.Errorf("output mismatch for %s:\n%s", name, diff)
				}
			}
		})
	}
}

// Diff returns a unified diff between got and want, or "" if they are
// equal.
func Diff(got, want string) string {
	if got == want {
		return ""
	}
	d, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return d
}

func discoverUnits(root string) ([]Unit, error) {
	dirs := map[string]*Unit{}
	var order []string

	err := filepath.Walk(root, func(p string, fi fs.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return err
		}
		if !strings.HasSuffix(p, ".h") && !strings.HasSuffix(p, ".m") {
			return nil
		}
		dir := filepath.Dir(p)
		u, ok := dirs[dir]
		if !ok {
			u = &Unit{Dir: dir, Files: map[string]string{}}
			dirs[dir] = u
			order = append(order, dir)
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		name := filepath.Base(p)
		u.Files[name] = string(data)
		u.Order = append(u.Order, name)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(order)
	units := make([]Unit, 0, len(order))
	for _, dir := range order {
		u := dirs[dir]
		slices.Sort(u.Order)
		if meta, err := os.ReadFile(filepath.Join(dir, "case.yaml")); err == nil {
			_ = yaml.Unmarshal(meta, &u.Meta)
		}
		units = append(units, *u)
	}
	return units, nil
}

// callerDir resolves rel against the directory of the file that called
// Corpus.Run, mirroring how table-driven fixture tests locate testdata
// relative to the _test.go file rather than the process cwd.
func callerDir(t *testing.T, rel string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(2)
	if !ok {
		t.Fatal("golden: could not determine caller")
	}
	return filepath.Join(filepath.Dir(file), rel)
}
