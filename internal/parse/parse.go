// Package parse reads 0-1 knapsack instance files in the formats used by
// the benchmark corpora this engine was validated against: the plain
// "standard" format, Pisinger's comma-separated format (which also carries
// a known-optimal solution for regression tests), and a subset-sum variant
// of the standard format where profit always equals weight.
//
// This package is a supplement, not part of the core engine: the engine
// package never imports "os", and nothing in internal/knapsack depends on
// parse. It exists so the CLI and the test suite can exercise Solve against
// real instance files instead of only Go-literal fixtures.
package parse

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Instance is the file-independent result of parsing: a capacity, a list
// of (weight, profit) pairs in file order, and, for formats that carry one
// (Pisinger), the known-optimal per-item decision vector.
type Instance struct {
	Capacity int64
	Items    [][2]int64 // [w, p]
	Optimal  []int8     // nil unless the format supplies one
}

// Format names accepted by ReadFile, mirroring the upstream solver's
// format switch in Instance::Instance(filepath, format).
const (
	FormatStandard          = "standard"
	FormatPisinger          = "pisinger"
	FormatSubsetSumStandard = "subsetsum_standard"
)

// ReadFile dispatches to the reader for the named format. Mirrors
// Instance::Instance(std::string filepath, std::string format).
func ReadFile(path, format string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parse: opening %q: %w", path, err)
	}
	defer CloseFile(f)

	switch format {
	case FormatStandard:
		return readStandard(f)
	case FormatPisinger:
		return readPisinger(f)
	case FormatSubsetSumStandard:
		return readSubsetSumStandard(f)
	default:
		return nil, fmt.Errorf("parse: unknown instance format %q", format)
	}
}

// CloseFile closes f, discarding the error the way a best-effort cleanup
// of a read-only handle is expected to.
func CloseFile(f *os.File) {
	_ = f.Close()
}

// wordScanner builds a bufio.Scanner that tokenizes on whitespace, the Go
// equivalent of repeated `file >> token` reads in the C++ source: both
// ignore newlines, so a scanner and an ifstream see the same token stream.
func wordScanner(f *os.File) *bufio.Scanner {
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)
	return sc
}

func nextInt64(sc *bufio.Scanner, field string) (int64, error) {
	if !sc.Scan() {
		return 0, fmt.Errorf("parse: unexpected end of file reading %s", field)
	}
	v, err := strconv.ParseInt(sc.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse: reading %s: %w", field, err)
	}
	return v, nil
}

func nextToken(sc *bufio.Scanner, field string) (string, error) {
	if !sc.Scan() {
		return "", fmt.Errorf("parse: unexpected end of file reading %s", field)
	}
	return sc.Text(), nil
}

// readStandard reads "n capacity" followed by n "weight profit" pairs.
// Mirrors Instance::read_standard.
func readStandard(f *os.File) (*Instance, error) {
	sc := wordScanner(f)
	n, err := nextInt64(sc, "item count")
	if err != nil {
		return nil, err
	}
	cap, err := nextInt64(sc, "capacity")
	if err != nil {
		return nil, err
	}
	out := &Instance{Capacity: cap, Items: make([][2]int64, 0, n)}
	for j := int64(0); j < n; j++ {
		w, err := nextInt64(sc, "weight")
		if err != nil {
			return nil, err
		}
		p, err := nextInt64(sc, "profit")
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, [2]int64{w, p})
	}
	return out, nil
}

// readSubsetSumStandard reads "n capacity" followed by n weights, with
// profit implicitly equal to weight. Mirrors Instance::read_subsetsum_standard.
func readSubsetSumStandard(f *os.File) (*Instance, error) {
	sc := wordScanner(f)
	n, err := nextInt64(sc, "item count")
	if err != nil {
		return nil, err
	}
	cap, err := nextInt64(sc, "capacity")
	if err != nil {
		return nil, err
	}
	out := &Instance{Capacity: cap, Items: make([][2]int64, 0, n)}
	for j := int64(0); j < n; j++ {
		w, err := nextInt64(sc, "weight")
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, [2]int64{w, w})
	}
	return out, nil
}

// readPisinger reads the Pisinger benchmark format: a whitespace-tokenized
// header (two discarded tokens, n, a discarded token, capacity, a discarded
// token, the known optimum, and two trailing discarded tokens), followed by
// n comma-separated "index,profit,weight,x" lines. Since neither the header
// nor the item lines contain embedded whitespace, a word-tokenizing scanner
// sees the identical stream the C++ `file >> tmp` chain does. Mirrors
// Instance::read_pisinger.
func readPisinger(f *os.File) (*Instance, error) {
	sc := wordScanner(f)
	if _, err := nextToken(sc, "header"); err != nil {
		return nil, err
	}
	if _, err := nextToken(sc, "header"); err != nil {
		return nil, err
	}
	n, err := nextInt64(sc, "item count")
	if err != nil {
		return nil, err
	}
	if _, err := nextToken(sc, "header"); err != nil {
		return nil, err
	}
	cap, err := nextInt64(sc, "capacity")
	if err != nil {
		return nil, err
	}
	if _, err := nextToken(sc, "header"); err != nil {
		return nil, err
	}
	_, err = nextInt64(sc, "known optimum") // parsed for validation, then discarded
	if err != nil {
		return nil, err
	}
	if _, err := nextToken(sc, "header"); err != nil {
		return nil, err
	}
	if _, err := nextToken(sc, "header"); err != nil {
		return nil, err
	}

	out := &Instance{Capacity: cap, Items: make([][2]int64, 0, n), Optimal: make([]int8, n)}
	for j := int64(0); j < n; j++ {
		line, err := nextToken(sc, "item line")
		if err != nil {
			return nil, err
		}
		fields := strings.Split(line, ",")
		if len(fields) < 4 {
			return nil, fmt.Errorf("parse: malformed pisinger item line %q", line)
		}
		p, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse: item %d profit: %w", j, err)
		}
		w, err := strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse: item %d weight: %w", j, err)
		}
		x, err := strconv.ParseInt(strings.TrimSpace(fields[3]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse: item %d decision: %w", j, err)
		}
		out.Items = append(out.Items, [2]int64{w, p})
		out.Optimal[j] = int8(x)
	}
	return out, nil
}

// WriteStandard writes an instance in the standard format, the counterpart
// `generate` uses to persist a randomly built instance for later solve
// invocations.
func WriteStandard(path string, capacity int64, items [][2]int64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("parse: creating %q: %w", path, err)
	}
	defer CloseFile(f)

	w := bufio.NewWriter(f)
	if _, err := fmt.Fprintf(w, "%d %d\n", len(items), capacity); err != nil {
		return fmt.Errorf("parse: writing header: %w", err)
	}
	for _, it := range items {
		if _, err := fmt.Fprintf(w, "%d %d\n", it[0], it[1]); err != nil {
			return fmt.Errorf("parse: writing item: %w", err)
		}
	}
	return w.Flush()
}
