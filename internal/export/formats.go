// Package export turns a projection of comment records into downstream text
// encodings. All formatters are pure: the same records and column set always
// produce the identical byte sequence.
package export

import (
	"strconv"
	"strings"

	"github.com/justcomments/justcomments/internal/entities"
)

// Columns resolves a visibility map to the ordered list of exported columns.
// Order is fixed (page, author, modified, comment) and the comment column is
// always present.
func Columns(v entities.ColumnVisibility) []entities.Column {
	v = v.Normalize()
	cols := make([]entities.Column, 0, len(entities.AllColumns))
	for _, col := range entities.AllColumns {
		if v[col] {
			cols = append(cols, col)
		}
	}
	return cols
}

func fieldValue(r entities.CommentRecord, col entities.Column) string {
	switch col {
	case entities.ColumnPage:
		return strconv.Itoa(r.Page)
	case entities.ColumnAuthor:
		return r.Author
	case entities.ColumnModified:
		return r.Modified
	case entities.ColumnComment:
		return r.Text
	}
	return ""
}

// CSV renders the records as comma-separated values with a header row.
// The comment field is always quoted — it is free-form by definition —
// while every other field is quoted only when it contains a comma, a quote
// or a newline. Embedded quotes are doubled.
func CSV(records []entities.CommentRecord, cols []entities.Column) string {
	var b strings.Builder

	headers := make([]string, len(cols))
	for i, col := range cols {
		headers[i] = col.Header()
	}
	b.WriteString(strings.Join(headers, ","))

	for _, r := range records {
		b.WriteByte('\n')
		for i, col := range cols {
			if i > 0 {
				b.WriteByte(',')
			}
			value := fieldValue(r, col)
			if col == entities.ColumnComment || needsQuoting(value) {
				b.WriteString(quote(value))
			} else {
				b.WriteString(value)
			}
		}
	}

	return b.String()
}

// TSV renders a tab-separated table where every field, headers included, is
// unconditionally quoted. A value containing newlines therefore stays one
// logical field when pasted into a spreadsheet. Empty fields render as "".
func TSV(records []entities.CommentRecord, cols []entities.Column) string {
	var b strings.Builder

	for i, col := range cols {
		if i > 0 {
			b.WriteByte('\t')
		}
		b.WriteString(quote(col.Header()))
	}

	for _, r := range records {
		b.WriteByte('\n')
		for i, col := range cols {
			if i > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(quote(fieldValue(r, col)))
		}
	}

	return b.String()
}

// Text renders a human-readable listing. Each record becomes a line built
// from a metadata prefix (page as "P<n>", then author and modified when
// visible and non-empty, joined with ", ") and the comment text after
// " - ". Records are separated by a blank line.
func Text(records []entities.CommentRecord, cols []entities.Column) string {
	visible := make(map[entities.Column]bool, len(cols))
	for _, col := range cols {
		visible[col] = true
	}

	lines := make([]string, 0, len(records))
	for _, r := range records {
		var prefix []string
		if visible[entities.ColumnPage] {
			prefix = append(prefix, "P"+strconv.Itoa(r.Page))
		}
		if visible[entities.ColumnAuthor] && r.Author != "" {
			prefix = append(prefix, r.Author)
		}
		if visible[entities.ColumnModified] && r.Modified != "" {
			prefix = append(prefix, r.Modified)
		}

		line := strings.Join(prefix, ", ")
		if visible[entities.ColumnComment] {
			if line == "" {
				line = r.Text
			} else {
				line += " - " + r.Text
			}
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n\n")
}

func needsQuoting(value string) bool {
	return strings.ContainsAny(value, ",\"\n")
}

func quote(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
