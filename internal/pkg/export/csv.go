// Package export materialises report row sets as files on disk.
package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/Suhaibk137/attendance-app/internal/domain/report"
)

// CSVSerializer writes row sets as CSV files under tempDir (os.TempDir when
// empty). The caller owns the returned artifact and removes it when done.
type CSVSerializer struct {
	tempDir string
}

func NewCSVSerializer(tempDir string) *CSVSerializer {
	return &CSVSerializer{tempDir: tempDir}
}

// CreateArtifact implements report.Serializer.
func (s *CSVSerializer) CreateArtifact(baseName string, headers []string, rows [][]string) (report.Artifact, error) {
	f, err := os.CreateTemp(s.tempDir, baseName+"_*.csv")
	if err != nil {
		return report.Artifact{}, fmt.Errorf("failed to create report file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(headers); err != nil {
		return report.Artifact{}, s.discard(f, fmt.Errorf("failed to write headers: %w", err))
	}
	for i, row := range rows {
		if err := w.Write(row); err != nil {
			return report.Artifact{}, s.discard(f, fmt.Errorf("failed to write row %d: %w", i, err))
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return report.Artifact{}, s.discard(f, fmt.Errorf("failed to flush report file: %w", err))
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return report.Artifact{}, fmt.Errorf("failed to close report file: %w", err)
	}

	return report.Artifact{
		Path:     f.Name(),
		Filename: baseName + ".csv",
	}, nil
}

// discard closes and removes a half-written file, returning the original
// write error.
func (s *CSVSerializer) discard(f *os.File, err error) error {
	f.Close()
	os.Remove(f.Name())
	return err
}
