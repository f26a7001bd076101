package export

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justcomments/justcomments/internal/entities"
)

func sampleRecords() []entities.CommentRecord {
	return []entities.CommentRecord{
		{Page: 1, Author: "Smith", Modified: "2023-06-15 14:30:00Z", Text: "Fix typo"},
		{Page: 3, Author: "Smith, J.", Modified: "", Text: `He said "hi"`},
		{Page: 7, Author: "", Modified: "2023-07-01 09:00:00Z", Text: "line one\nline two"},
	}
}

func allColumns() []entities.Column {
	return Columns(entities.ColumnVisibility{
		entities.ColumnPage:     true,
		entities.ColumnAuthor:   true,
		entities.ColumnModified: true,
		entities.ColumnComment:  true,
	})
}

func TestColumns_FixedOrderAndForcedComment(t *testing.T) {
	cols := Columns(entities.ColumnVisibility{
		entities.ColumnComment:  false,
		entities.ColumnModified: true,
		entities.ColumnPage:     true,
	})

	assert.Equal(t, []entities.Column{
		entities.ColumnPage,
		entities.ColumnModified,
		entities.ColumnComment,
	}, cols)
}

func TestCSV_QuotingRules(t *testing.T) {
	out := CSV(sampleRecords()[:2], allColumns())
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "Page,Author,Modified,Comment", lines[0])
	// Bare author stays unquoted, the comment is quoted regardless.
	assert.Equal(t, `1,Smith,2023-06-15 14:30:00Z,"Fix typo"`, lines[1])
	// A comma forces quoting, embedded quotes are doubled.
	assert.Equal(t, `3,"Smith, J.",,"He said ""hi"""`, lines[2])
}

func TestCSV_RoundTrip(t *testing.T) {
	out := CSV(sampleRecords(), allColumns())

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"Page", "Author", "Modified", "Comment"}, rows[0])
	assert.Equal(t, []string{"3", "Smith, J.", "", `He said "hi"`}, rows[2])
	assert.Equal(t, []string{"7", "", "2023-07-01 09:00:00Z", "line one\nline two"}, rows[3])
}

func TestCSV_NoTrailingNewline(t *testing.T) {
	out := CSV(sampleRecords(), allColumns())
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestCSV_EmptyRecords(t *testing.T) {
	out := CSV(nil, allColumns())
	assert.Equal(t, "Page,Author,Modified,Comment", out)
}

func TestTSV_EveryFieldQuoted(t *testing.T) {
	out := TSV(sampleRecords()[:1], allColumns())
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 2)
	assert.Equal(t, "\"Page\"\t\"Author\"\t\"Modified\"\t\"Comment\"", lines[0])
	assert.Equal(t, "\"1\"\t\"Smith\"\t\"2023-06-15 14:30:00Z\"\t\"Fix typo\"", lines[1])
}

func TestTSV_RoundTrip(t *testing.T) {
	out := TSV(sampleRecords(), allColumns())

	r := csv.NewReader(strings.NewReader(out))
	r.Comma = '\t'
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"3", "Smith, J.", "", `He said "hi"`}, rows[2])
	assert.Equal(t, "line one\nline two", rows[3][3])
}

func TestText_Layout(t *testing.T) {
	out := Text(sampleRecords(), allColumns())
	blocks := strings.Split(out, "\n\n")

	require.Len(t, blocks, 3)
	assert.Equal(t, "P1, Smith, 2023-06-15 14:30:00Z - Fix typo", blocks[0])
	// Empty metadata fields are skipped, not rendered as blanks.
	assert.Equal(t, `P3, Smith, J. - He said "hi"`, blocks[1])
	assert.Equal(t, "P7, 2023-07-01 09:00:00Z - line one\nline two", blocks[2])
}

func TestText_CommentOnly(t *testing.T) {
	cols := Columns(entities.ColumnVisibility{entities.ColumnComment: true})
	out := Text(sampleRecords()[:2], cols)

	assert.Equal(t, "Fix typo\n\nHe said \"hi\"", out)
}
