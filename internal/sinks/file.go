// Package sinks provides the terminal destinations for formatted export
// text: files on disk (or download responses) and the system clipboard.
package sinks

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// MIME types used for download responses.
const (
	MIMECSV  = "text/csv;charset=utf-8"
	MIMEText = "text/plain;charset=utf-8"
	MIMEXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

const exportSuffix = "_comments"

// Characters invalid in filenames on most filesystems.
var invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// ExportFileName builds the export filename for a document: the document
// name with its extension stripped and hostile characters removed, the
// "_comments" suffix, and the format extension (".csv", ".txt", ".xlsx").
// An empty or fully sanitized-away document name falls back to "comments".
func ExportFileName(documentName, ext string) string {
	base := strings.TrimSuffix(documentName, filepath.Ext(documentName))
	base = invalidFilenameChars.ReplaceAllString(base, "")
	base = strings.TrimSpace(base)

	if base == "" {
		return "comments" + ext
	}
	return base + exportSuffix + ext
}

// FileSink writes export blobs into a directory.
type FileSink struct {
	Dir string
}

func NewFileSink(dir string) *FileSink {
	return &FileSink{Dir: dir}
}

// Write stores data under the export filename derived from documentName and
// ext, returning the full path.
func (s *FileSink) Write(documentName, ext string, data []byte) (string, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, ExportFileName(documentName, ext))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing export file: %w", err)
	}
	return path, nil
}
