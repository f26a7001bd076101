package annotations

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
)

// Matches the fixed-width date-authoring format, e.g. "D:20230615143000".
// Trailing timezone offsets ("+02'00'") are ignored on purpose: the original
// values are treated as UTC.
var authoringDatePattern = regexp.MustCompile(`^D:(\d{4})(\d{2})(\d{2})(\d{2})(\d{2})(\d{2})`)

// isoForm is the output layout for normalized timestamps.
const isoForm = "2006-01-02 15:04:05Z"

// FormatDate normalizes a modification timestamp to the "2006-01-02
// 15:04:05Z" UTC form, truncated to whole seconds. Values in the
// "D:YYYYMMDDHHMMSS" authoring format are decoded directly; anything else
// goes through generic timestamp parsing. Unparsable input returns an error
// so the caller can degrade the field instead of aborting the extraction.
func FormatDate(raw string) (string, error) {
	if m := authoringDatePattern.FindStringSubmatch(raw); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		hour, _ := strconv.Atoi(m[4])
		minute, _ := strconv.Atoi(m[5])
		second, _ := strconv.Atoi(m[6])

		t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
		return t.Format(isoForm), nil
	}

	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return "", fmt.Errorf("unrecognized timestamp %q: %w", raw, err)
	}
	return t.UTC().Truncate(time.Second).Format(isoForm), nil
}
