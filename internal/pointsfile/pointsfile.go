// Package pointsfile reads the distance tables fed to interpolation and
// writes the interpolated points back out as CSV.
package pointsfile

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/geodesy-tools/vincenty"
)

// Column names shared by input and output tables.
const (
	ColumnID        = "serial no"
	ColumnDistance  = "distance"
	ColumnLatitude  = "latitude"
	ColumnLongitude = "longitude"
)

var (
	ErrEmptyFile     = errors.New("points file is empty")
	ErrMissingColumn = errors.New("points file is missing a required column")
)

// Row is one requested distance. ID is passed through untouched.
type Row struct {
	ID       string  `csv:"serial no"`
	Distance float64 `csv:"distance"`
}

// Result is a Row with the point found at its distance.
type Result struct {
	ID        string  `csv:"serial no"`
	Distance  float64 `csv:"distance"`
	Latitude  float64 `csv:"latitude"`
	Longitude float64 `csv:"longitude"`
	// Iterations used by the direct solve; not written out.
	Iterations int `csv:"-"`
}

// Resolve returns path unchanged when it is absolute and joined to baseDir
// otherwise.
func Resolve(baseDir, path string) string {
	if filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}

// OutputPath names the output file written next to inputPath.
func OutputPath(inputPath, name string) string {
	return filepath.Join(filepath.Dir(inputPath), name)
}

// Read parses a CSV table with a header containing at least the serial no
// and distance columns. Other columns are ignored.
func Read(r io.Reader) ([]Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read points: %w", err)
	}

	header, err := csv.NewReader(bytes.NewReader(data)).Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("read points header: %w", err)
	}
	if err := requireColumns(header, ColumnID, ColumnDistance); err != nil {
		return nil, err
	}

	rows := []Row{}
	if err := gocsv.Unmarshal(bytes.NewReader(data), &rows); err != nil {
		return nil, fmt.Errorf("read points: %w", err)
	}
	return rows, nil
}

// ReadFile is Read on the named file.
func ReadFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open points file: %w", err)
	}
	defer f.Close()

	rows, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

func requireColumns(header []string, names ...string) error {
	have := make(map[string]struct{}, len(header))
	for _, h := range header {
		have[h] = struct{}{}
	}
	var missing []string
	for _, n := range names {
		if _, ok := have[n]; !ok {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

// Write emits results as CSV, header first, in the given order.
func Write(w io.Writer, results []Result) error {
	if err := gocsv.Marshal(results, w); err != nil {
		return fmt.Errorf("write points: %w", err)
	}
	return nil
}

// WriteFile is Write to the named file, replacing it.
func WriteFile(path string, results []Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close output file: %w", cerr)
		}
	}()
	return Write(f, results)
}

// Interpolate finds the point of every row along line and tags it with the
// row's identifier. Output order follows rows.
func Interpolate(ctx context.Context, line vincenty.Line, rows []Row, workers int) ([]Result, error) {
	distances := make([]float64, len(rows))
	for i, r := range rows {
		distances[i] = r.Distance
	}

	solved, err := line.SolveConcurrent(ctx, distances, workers)
	if err != nil {
		return nil, fmt.Errorf("interpolate points: %w", err)
	}

	out := make([]Result, len(rows))
	for i, r := range rows {
		out[i] = Result{
			ID:         r.ID,
			Distance:   r.Distance,
			Latitude:   solved[i].Point.Lat,
			Longitude:  solved[i].Point.Lon,
			Iterations: solved[i].Iterations,
		}
	}
	return out, nil
}
