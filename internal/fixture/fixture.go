/*
File    : cc64/internal/fixture/fixture.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package fixture loads golden source/assembly pairs from a testdata
// directory for end-to-end compiler tests: open, read fully, and
// report a descriptive error if either half of a pair is missing.
package fixture

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Pair is one golden end-to-end test case: a .c source file and the
// assembly instruction subsequence (one needle per line) its
// compiled output is expected to contain, in order.
type Pair struct {
	Name    string
	Source  string
	Needles []string
}

// LoadDir reads every "<name>.c" / "<name>.s" pair under dir and
// returns one Pair per matched name, sorted by filename. A .c file
// with no matching .s file is an error: every fixture is expected to
// carry both halves.
func LoadDir(dir string) ([]Pair, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("fixture: reading %s: %w", dir, err)
	}

	var pairs []Pair
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".c") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".c")

		source, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("fixture: reading %s: %w", entry.Name(), err)
		}

		asmPath := filepath.Join(dir, name+".s")
		asmNeedles, err := os.ReadFile(asmPath)
		if err != nil {
			return nil, fmt.Errorf("fixture: %s has no matching %s.s: %w", entry.Name(), name, err)
		}

		pairs = append(pairs, Pair{
			Name:    name,
			Source:  string(source),
			Needles: splitNonEmptyLines(string(asmNeedles)),
		})
	}
	return pairs, nil
}

// splitNonEmptyLines splits text on newlines and drops blank lines,
// so a .s fixture file can use blank lines for readability without
// them becoming empty (and therefore always-matching) needles.
func splitNonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
