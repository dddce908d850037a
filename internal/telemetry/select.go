package telemetry

import (
	"fmt"
	"io"
	"os"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// Select pulls pitch records out of an arbitrary JSON document with a
// JSONPath expression, e.g. "$.game.atbat[*].pitch[*]". Matches that are
// arrays are flattened one level; any other non-object match is an error.
func Select(r io.Reader, path string) ([]Record, error) {
	x, err := jp.ParseString(path)
	if err != nil {
		return nil, fmt.Errorf("telemetry: path %q: %w", path, err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	doc, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("telemetry: %w", err)
	}

	records := make([]Record, 0)
	for i, match := range x.Get(doc) {
		switch v := match.(type) {
		case map[string]any:
			records = append(records, Record(v))
		case []any:
			for j, item := range v {
				obj, ok := item.(map[string]any)
				if !ok {
					return nil, fmt.Errorf("telemetry: match %d element %d is %T, not an object", i, j, item)
				}
				records = append(records, Record(obj))
			}
		default:
			return nil, fmt.Errorf("telemetry: match %d is %T, not an object", i, match)
		}
	}
	return records, nil
}

// LoadSelect reads the document at path and parses the records matched
// by the JSONPath expression.
func LoadSelect(path, expr string) ([]Pitch, []error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	records, err := Select(f, expr)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	pitches, errs := Parse(records)
	return pitches, errs, nil
}
