package annotations

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/justcomments/justcomments/internal/entities"
)

// RawAnnotation is the loosely-typed per-page annotation object handed over
// by the document backend. No field is guaranteed to be present or to have
// any particular type; every access must tolerate absence and mistyping.
type RawAnnotation map[string]any

// Source is the contract consumed from the document-parsing backend: a
// paginated document exposing its raw annotation collections.
type Source interface {
	NumPages() int
	// PageAnnotations returns the raw annotations of the given 1-based page,
	// in the order the backend yields them.
	PageAnnotations(page int) ([]RawAnnotation, error)
}

// textCommentSubtype marks the only annotation kind that produces records.
// Highlights, shapes, links and every other category are skipped.
const textCommentSubtype = "Text"

// Extract walks the document in ascending page order and normalizes its
// text comments into CommentRecords. Backend failures abort the walk and
// propagate; per-annotation anomalies never do — a broken field degrades
// to an empty value and an annotation without usable text is dropped.
func Extract(src Source) ([]entities.CommentRecord, error) {
	var records []entities.CommentRecord

	for page := 1; page <= src.NumPages(); page++ {
		annots, err := src.PageAnnotations(page)
		if err != nil {
			return nil, fmt.Errorf("reading annotations of page %d: %w", page, err)
		}

		for _, a := range annots {
			if subtype(a) != textCommentSubtype {
				continue
			}

			text := strings.TrimSpace(resolveText(a))
			if text == "" {
				continue
			}

			records = append(records, entities.CommentRecord{
				Page:     page,
				Author:   resolveAuthor(a),
				Text:     text,
				Modified: resolveModified(a),
			})
		}
	}

	return records, nil
}

func subtype(a RawAnnotation) string {
	if s, ok := stringValue(a["subtype"]); ok && s != "" {
		return s
	}
	s, _ := stringValue(a["annotationType"])
	return s
}

// fieldStrategy extracts one candidate value for a logical field. Strategies
// are tried in fixed precedence order; the first non-empty result wins.
type fieldStrategy func(RawAnnotation) string

var textStrategies = []fieldStrategy{
	func(a RawAnnotation) string { return contentsValue(a["contents"]) },
	func(a RawAnnotation) string { return contentsValue(a["contentsObj"]) },
}

var authorStrategies = []fieldStrategy{
	func(a RawAnnotation) string { return nestedString(a["titleObj"]) },
	func(a RawAnnotation) string { s, _ := stringValue(a["title"]); return s },
	func(a RawAnnotation) string {
		// "T" is how the document format itself names the title/author field.
		if s, ok := stringValue(a["T"]); ok {
			return s
		}
		return nestedString(a["T"])
	},
	func(a RawAnnotation) string { s, _ := stringValue(a["user"]); return s },
	func(a RawAnnotation) string { s, _ := stringValue(a["author"]); return s },
	func(a RawAnnotation) string { s, _ := stringValue(a["userName"]); return s },
}

// modifiedFields lists the alternate names a modification timestamp may
// hide under, in lookup order.
var modifiedFields = []string{"modificationDate", "modDate", "modified"}

func resolveText(a RawAnnotation) string {
	return firstNonEmpty(a, textStrategies)
}

func resolveAuthor(a RawAnnotation) string {
	return firstNonEmpty(a, authorStrategies)
}

// resolveModified picks the first present modification-date field and
// normalizes it. A value that fails to parse degrades to an empty string
// rather than aborting the page loop.
func resolveModified(a RawAnnotation) string {
	for _, key := range modifiedFields {
		raw, ok := stringValue(a[key])
		if !ok || raw == "" {
			continue
		}
		formatted, err := FormatDate(raw)
		if err != nil {
			return ""
		}
		return formatted
	}
	return ""
}

func firstNonEmpty(a RawAnnotation, strategies []fieldStrategy) string {
	for _, strategy := range strategies {
		if s := strategy(a); strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// contentsValue resolves a contents-like value: a direct string, an object
// with a "str" or "text" sub-field, an array of parts joined with spaces,
// or — as a last resort — a structural serialization of the object.
func contentsValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := stringValue(item); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	case map[string]any:
		if s, ok := stringValue(val["str"]); ok && s != "" {
			return s
		}
		if s, ok := stringValue(val["text"]); ok && s != "" {
			return s
		}
		return structural(val)
	default:
		return ""
	}
}

// nestedString returns the "str" sub-field of an object-shaped value.
func nestedString(v any) string {
	m, ok := v.(map[string]any)
	if !ok {
		return ""
	}
	s, _ := stringValue(m["str"])
	return s
}

func stringValue(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// structural serializes an object-shaped value so that a malformed but
// non-empty contents field still yields something inspectable.
func structural(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
