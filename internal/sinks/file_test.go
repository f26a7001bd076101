package sinks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportFileName(t *testing.T) {
	tests := []struct {
		name     string
		document string
		ext      string
		want     string
	}{
		{"plain document", "report.pdf", ".csv", "report_comments.csv"},
		{"no extension", "report", ".txt", "report_comments.txt"},
		{"multiple dots", "q3.final.pdf", ".xlsx", "q3.final_comments.xlsx"},
		{"hostile characters stripped", `bad<name>:"v1".pdf`, ".csv", "badnamev1_comments.csv"},
		{"empty name falls back", "", ".csv", "comments.csv"},
		{"fully sanitized falls back", `<>:"?`, ".txt", "comments.txt"},
		{"surrounding spaces trimmed", "  draft .pdf", ".csv", "draft_comments.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExportFileName(tt.document, tt.ext))
		})
	}
}

func TestFileSink_Write(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileSink(dir)

	path, err := sink.Write("report.pdf", ".csv", []byte("Page,Comment\n"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report_comments.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Page,Comment\n", string(data))
}

func TestFileSink_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	sink := NewFileSink(dir)

	path, err := sink.Write("doc.pdf", ".txt", []byte("hello"))
	require.NoError(t, err)
	assert.FileExists(t, path)
}
