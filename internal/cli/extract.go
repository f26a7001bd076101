package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/justcomments/justcomments/internal/annotations"
	"github.com/justcomments/justcomments/internal/entities"
	"github.com/justcomments/justcomments/internal/export"
	"github.com/justcomments/justcomments/internal/pdfdoc"
	"github.com/justcomments/justcomments/internal/sinks"
)

// ExtractCommand runs the extraction pipeline against a local file and
// writes the result to a file, stdout or the clipboard.
type ExtractCommand struct {
	FilePath  string
	Format    string
	Columns   string
	OutputDir string
	Copy      bool
	Stdout    bool
}

func NewExtractCommand() *ExtractCommand {
	return &ExtractCommand{}
}

func (cmd *ExtractCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to the PDF document (required)")
	fs.StringVar(&cmd.Format, "format", "csv", "Output format: csv, tsv, txt or xlsx")
	fs.StringVar(&cmd.Columns, "columns", "page,comment", "Comma-separated columns to include (page, author, modified, comment)")
	fs.StringVar(&cmd.OutputDir, "output", ".", "Output directory for the export file")
	fs.BoolVar(&cmd.Copy, "copy", false, "Copy the result to the clipboard instead of writing a file")
	fs.BoolVar(&cmd.Stdout, "stdout", false, "Print the result to stdout instead of writing a file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s extract -file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Extract review comments from a PDF document and export them.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Export page and comment columns to report_comments.csv:\n")
		fmt.Fprintf(os.Stderr, "  %s extract -file report.pdf\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Copy a spreadsheet-ready table to the clipboard:\n")
		fmt.Fprintf(os.Stderr, "  %s extract -file report.pdf -format tsv -columns page,author,comment -copy\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.FilePath == "" {
		return fmt.Errorf("required flag -file not provided")
	}

	switch cmd.Format {
	case "csv", "tsv", "txt", "xlsx":
	default:
		return fmt.Errorf("unknown format %q (want csv, tsv, txt or xlsx)", cmd.Format)
	}

	return nil
}

func (cmd *ExtractCommand) Run() error {
	data, err := os.ReadFile(cmd.FilePath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", cmd.FilePath, err)
	}

	doc, err := pdfdoc.Open(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", cmd.FilePath, err)
	}

	records, err := annotations.Extract(doc)
	if err != nil {
		return fmt.Errorf("extracting comments: %w", err)
	}

	if len(records) == 0 {
		fmt.Println("No comments found. The document may have flattened annotations.")
		return nil
	}

	cols, err := cmd.parseColumns()
	if err != nil {
		return err
	}

	var body []byte
	ext := "." + cmd.Format
	switch cmd.Format {
	case "csv":
		body = []byte(export.CSV(records, cols))
	case "tsv":
		body = []byte(export.TSV(records, cols))
	case "txt":
		body = []byte(export.Text(records, cols))
	case "xlsx":
		body, err = export.XLSX(records, cols)
		if err != nil {
			return fmt.Errorf("building workbook: %w", err)
		}
	}

	docName := filepath.Base(cmd.FilePath)

	switch {
	case cmd.Copy:
		if cmd.Format == "xlsx" {
			return fmt.Errorf("xlsx cannot be copied to the clipboard")
		}
		sink := sinks.NewClipboardSink(func(text string) {
			fmt.Fprintln(os.Stderr, "Clipboard unavailable; copy the output below manually:")
			fmt.Println(text)
		})
		if sink.Copy(string(body)) {
			fmt.Printf("Copied %d comment(s) to the clipboard\n", len(records))
		}
	case cmd.Stdout:
		fmt.Println(string(body))
	default:
		sink := sinks.NewFileSink(cmd.OutputDir)
		path, err := sink.Write(docName, ext, body)
		if err != nil {
			return err
		}
		fmt.Printf("Exported %d comment(s) to %s\n", len(records), path)
	}

	return nil
}

// parseColumns builds the visibility set from the -columns flag. The
// comment column is always included, whether listed or not.
func (cmd *ExtractCommand) parseColumns() ([]entities.Column, error) {
	visibility := entities.ColumnVisibility{}
	for _, name := range strings.Split(cmd.Columns, ",") {
		col := entities.Column(strings.TrimSpace(strings.ToLower(name)))
		if name == "" {
			continue
		}
		if !col.Valid() {
			return nil, fmt.Errorf("unknown column %q", name)
		}
		visibility[col] = true
	}
	return export.Columns(visibility), nil
}
