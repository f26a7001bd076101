package entities

// CommentRecord is the canonical representation of one extracted text
// comment. Records are immutable once created; the whole record set is
// replaced atomically on each extraction.
type CommentRecord struct {
	Page     int    `json:"page"`     // 1-based page number
	Author   string `json:"author"`   // may be empty
	Text     string `json:"text"`     // trimmed, never empty
	Modified string `json:"modified"` // "2006-01-02 15:04:05Z" UTC form, or empty
}

type Column string

const (
	ColumnPage     Column = "page"
	ColumnAuthor   Column = "author"
	ColumnModified Column = "modified"
	ColumnComment  Column = "comment"
)

// AllColumns lists every column in its fixed display/export order.
var AllColumns = []Column{ColumnPage, ColumnAuthor, ColumnModified, ColumnComment}

// Header returns the human-readable column name used in export headers.
func (c Column) Header() string {
	switch c {
	case ColumnPage:
		return "Page"
	case ColumnAuthor:
		return "Author"
	case ColumnModified:
		return "Modified"
	case ColumnComment:
		return "Comment"
	}
	return string(c)
}

// Valid reports whether c is one of the known columns.
func (c Column) Valid() bool {
	switch c {
	case ColumnPage, ColumnAuthor, ColumnModified, ColumnComment:
		return true
	}
	return false
}

// ColumnVisibility maps each column to whether it is included in exports.
// The comment column can never be hidden; use Normalize after every write.
type ColumnVisibility map[Column]bool

// DefaultVisibility returns the visibility applied on a fresh workspace:
// page and comment shown, author and modified hidden.
func DefaultVisibility() ColumnVisibility {
	return ColumnVisibility{
		ColumnPage:     true,
		ColumnAuthor:   false,
		ColumnModified: false,
		ColumnComment:  true,
	}
}

// Normalize drops unknown columns, fills in missing known ones and
// force-enables the comment column.
func (v ColumnVisibility) Normalize() ColumnVisibility {
	out := make(ColumnVisibility, len(AllColumns))
	for _, col := range AllColumns {
		out[col] = v[col]
	}
	out[ColumnComment] = true
	return out
}

// Clone returns an independent copy.
func (v ColumnVisibility) Clone() ColumnVisibility {
	out := make(ColumnVisibility, len(v))
	for col, show := range v {
		out[col] = show
	}
	return out
}
