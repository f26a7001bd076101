// Package pdfdoc adapts the PDF parsing backend to the annotation
// pipeline: it opens a byte buffer as a paginated document and lowers each
// page's annotation dictionaries into the loosely-typed key/value view the
// normalizer consumes.
package pdfdoc

import (
	"bytes"
	"fmt"
	"strings"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"

	"github.com/justcomments/justcomments/internal/annotations"
)

// Document is an opened PDF. It satisfies annotations.Source.
type Document struct {
	reader   *pdf.Reader
	numPages int
}

// Open parses the given bytes as a PDF document. Any failure here is a
// backend failure: the caller surfaces it and keeps no partial results.
func Open(data []byte) (*Document, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), nil)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}

	numPages, err := pagetree.NumPages(reader)
	if err != nil {
		return nil, fmt.Errorf("reading page count: %w", err)
	}

	return &Document{reader: reader, numPages: numPages}, nil
}

func (d *Document) NumPages() int {
	return d.numPages
}

// PageAnnotations returns the raw annotations of the given 1-based page in
// document order. A page without an Annots entry yields an empty slice.
// Individual malformed annotation entries are skipped, not fatal.
func (d *Document) PageAnnotations(page int) ([]annotations.RawAnnotation, error) {
	if page < 1 || page > d.numPages {
		return nil, fmt.Errorf("page %d out of range [1,%d]", page, d.numPages)
	}

	_, pageDict, err := pagetree.GetPage(d.reader, page-1)
	if err != nil {
		return nil, fmt.Errorf("reading page %d: %w", page, err)
	}

	annots, err := pdf.GetArray(d.reader, pageDict["Annots"])
	if err != nil || annots == nil {
		// A malformed or absent Annots entry means no annotations.
		return nil, nil
	}

	raws := make([]annotations.RawAnnotation, 0, len(annots))
	for _, obj := range annots {
		dict, err := pdf.GetDict(d.reader, obj)
		if err != nil || dict == nil {
			continue
		}
		raws = append(raws, lowerDict(d.reader, dict))
	}
	return raws, nil
}

// fieldNames maps the document format's annotation keys to the field names
// the normalizer resolves.
var fieldNames = map[pdf.Name]string{
	"Subtype":  "subtype",
	"Contents": "contents",
	"RC":       "contentsObj",
	"T":        "title",
	"M":        "modificationDate",
	"NM":       "name",
}

// lowerDict converts an annotation dictionary into the untyped map view,
// resolving indirect references and decoding text strings along the way.
func lowerDict(r pdf.Getter, dict pdf.Dict) annotations.RawAnnotation {
	raw := make(annotations.RawAnnotation, len(dict))
	for key, obj := range dict {
		name, ok := fieldNames[key]
		if !ok {
			name = strings.ToLower(string(key))
		}
		if value := lowerValue(r, obj, 0); value != nil {
			raw[name] = value
		}
	}
	return raw
}

// lowerValue maps a backend object to plain Go values: strings, numbers,
// bools, []any and map[string]any. Unresolvable objects become nil and end
// up absent from the raw view. Depth is capped to keep cyclic structures
// from recursing forever.
func lowerValue(r pdf.Getter, obj pdf.Object, depth int) any {
	if depth > 4 {
		return nil
	}

	resolved, err := pdf.Resolve(r, obj)
	if err != nil {
		return nil
	}

	switch v := resolved.(type) {
	case pdf.String:
		// AsTextString returns a backend-named string type; the raw view
		// must carry plain Go strings.
		return string(v.AsTextString())
	case pdf.Name:
		return string(v)
	case pdf.Integer:
		return int(v)
	case pdf.Real:
		return float64(v)
	case pdf.Boolean:
		return bool(v)
	case pdf.Array:
		out := make([]any, 0, len(v))
		for _, item := range v {
			out = append(out, lowerValue(r, item, depth+1))
		}
		return out
	case pdf.Dict:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[strings.ToLower(string(key))] = lowerValue(r, item, depth+1)
		}
		return out
	default:
		return nil
	}
}
