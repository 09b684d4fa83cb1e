package export

import (
	"encoding/csv"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVSerializer_CreateArtifact(t *testing.T) {
	s := NewCSVSerializer(t.TempDir())

	headers := []string{"ID", "Employee Name", "Date", "Check In", "Check Out"}
	rows := [][]string{
		{"1", "Alice", "2024-01-01", "9:00:00 AM", "6:00:00 PM"},
		{"2", "Bob", "2024-01-01", "9:30:00 AM", ""},
	}

	artifact, err := s.CreateArtifact("attendance_2024-01-01_to_2024-01-01", headers, rows)
	require.NoError(t, err)
	defer os.Remove(artifact.Path)

	assert.Equal(t, "attendance_2024-01-01_to_2024-01-01.csv", artifact.Filename)
	assert.True(t, strings.HasSuffix(artifact.Path, ".csv"))

	f, err := os.Open(artifact.Path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, headers, records[0])
	assert.Equal(t, rows[0], records[1])
	assert.Equal(t, rows[1], records[2])
}

func TestCSVSerializer_QuotesEmbeddedCommas(t *testing.T) {
	s := NewCSVSerializer(t.TempDir())

	rows := [][]string{{"1", "Smith, Jane", "2024-01-01", "9:00:00 AM", ""}}
	artifact, err := s.CreateArtifact("attendance", []string{"ID", "Employee Name", "Date", "Check In", "Check Out"}, rows)
	require.NoError(t, err)
	defer os.Remove(artifact.Path)

	f, err := os.Open(artifact.Path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Smith, Jane", records[1][1])
}

func TestCSVSerializer_BadTempDir(t *testing.T) {
	s := NewCSVSerializer("/nonexistent/dir")

	_, err := s.CreateArtifact("attendance", []string{"ID"}, nil)
	assert.Error(t, err)
}
