package pdfdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/pdf"

	"github.com/justcomments/justcomments/internal/annotations"
)

func TestOpen_RejectsGarbage(t *testing.T) {
	_, err := Open([]byte("definitely not a document"))
	assert.Error(t, err)

	_, err = Open(nil)
	assert.Error(t, err)
}

func TestLowerDict_FieldNameMapping(t *testing.T) {
	dict := pdf.Dict{
		"Subtype":  pdf.Name("Text"),
		"Contents": pdf.String("needs a comma here"),
		"T":        pdf.String("Alice"),
		"M":        pdf.String("D:20230615143000"),
		"NM":       pdf.String("annot-7"),
		"Open":     pdf.Boolean(false),
	}

	raw := lowerDict(nil, dict)

	assert.Equal(t, "Text", raw["subtype"])
	assert.Equal(t, "needs a comma here", raw["contents"])
	assert.Equal(t, "Alice", raw["title"])
	assert.Equal(t, "D:20230615143000", raw["modificationDate"])
	assert.Equal(t, "annot-7", raw["name"])
	assert.Equal(t, false, raw["open"])
}

// The normalizer reaches into the raw view with plain-Go type assertions,
// so the lowering must never leak backend-named types (pdf.TextString and
// friends) into the map.
func TestLowerDict_YieldsPlainGoTypes(t *testing.T) {
	raw := lowerDict(nil, pdf.Dict{
		"Contents": pdf.String("hello world"),
		"T":        pdf.String("Alice"),
		"Open":     pdf.Boolean(true),
		"Rect":     pdf.Array{pdf.Integer(1), pdf.Real(2.5)},
		"RC":       pdf.Dict{"Str": pdf.String("nested")},
	})

	_, ok := raw["contents"].(string)
	require.True(t, ok, "contents must be a plain string, got %T", raw["contents"])
	_, ok = raw["title"].(string)
	require.True(t, ok, "title must be a plain string, got %T", raw["title"])
	_, ok = raw["open"].(bool)
	require.True(t, ok, "open must be a plain bool, got %T", raw["open"])

	rect, ok := raw["rect"].([]any)
	require.True(t, ok)
	_, ok = rect[0].(int)
	require.True(t, ok, "array ints must lower to int, got %T", rect[0])
	_, ok = rect[1].(float64)
	require.True(t, ok, "array reals must lower to float64, got %T", rect[1])

	rc, ok := raw["contentsObj"].(map[string]any)
	require.True(t, ok)
	_, ok = rc["str"].(string)
	require.True(t, ok, "nested strings must be plain strings, got %T", rc["str"])
}

// loweredSource feeds lowered annotation dictionaries straight into the
// normalizer, covering the seam between the two packages.
type loweredSource struct {
	annots []annotations.RawAnnotation
}

func (s *loweredSource) NumPages() int { return 1 }

func (s *loweredSource) PageAnnotations(int) ([]annotations.RawAnnotation, error) {
	return s.annots, nil
}

func TestLoweredAnnotationsProduceRecords(t *testing.T) {
	src := &loweredSource{annots: []annotations.RawAnnotation{
		lowerDict(nil, pdf.Dict{
			"Subtype":  pdf.Name("Text"),
			"Contents": pdf.String("hello world"),
			"T":        pdf.String("Alice"),
			"M":        pdf.String("D:20230615143000"),
		}),
	}}

	records, err := annotations.Extract(src)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "hello world", records[0].Text)
	assert.Equal(t, "Alice", records[0].Author)
	assert.Equal(t, "2023-06-15 14:30:00Z", records[0].Modified)
}

func TestLowerValue_Scalars(t *testing.T) {
	assert.Equal(t, "hello", lowerValue(nil, pdf.String("hello"), 0))
	assert.Equal(t, "Text", lowerValue(nil, pdf.Name("Text"), 0))
	assert.Equal(t, 42, lowerValue(nil, pdf.Integer(42), 0))
	assert.Equal(t, 2.5, lowerValue(nil, pdf.Real(2.5), 0))
	assert.Equal(t, true, lowerValue(nil, pdf.Boolean(true), 0))
	assert.Nil(t, lowerValue(nil, nil, 0))
}

func TestLowerValue_Containers(t *testing.T) {
	arr := lowerValue(nil, pdf.Array{pdf.String("a"), pdf.Integer(1)}, 0)
	assert.Equal(t, []any{"a", 1}, arr)

	dict := lowerValue(nil, pdf.Dict{"Str": pdf.String("nested")}, 0)
	m, ok := dict.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "nested", m["str"])
}

func TestLowerValue_DepthCapped(t *testing.T) {
	nested := pdf.Object(pdf.String("leaf"))
	for i := 0; i < 8; i++ {
		nested = pdf.Array{nested}
	}

	top, ok := lowerValue(nil, nested, 0).([]any)
	require.True(t, ok)

	// Walk down; somewhere before the leaf the lowering gives up.
	depth := 0
	var cur any = top
	for {
		arr, ok := cur.([]any)
		if !ok {
			break
		}
		require.Len(t, arr, 1)
		cur = arr[0]
		depth++
	}
	assert.Nil(t, cur)
	assert.Less(t, depth, 8)
}
