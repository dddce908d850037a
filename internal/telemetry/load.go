package telemetry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
)

// Decode reads a feed document. Accepted shapes are an array of records,
// a single record, or an object whose "pitch" field holds either.
func Decode(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("telemetry: empty document")
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("telemetry: %w", err)
	}

	if obj, ok := doc.(map[string]any); ok {
		if inner, ok := obj["pitch"]; ok {
			doc = inner
		}
	}

	switch v := doc.(type) {
	case []any:
		records := make([]Record, 0, len(v))
		for i, item := range v {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("telemetry: element %d is %T, not an object", i, item)
			}
			records = append(records, Record(obj))
		}
		return records, nil
	case map[string]any:
		return []Record{Record(v)}, nil
	default:
		return nil, fmt.Errorf("telemetry: unexpected document of type %T", doc)
	}
}

// Parse converts every record it can. Rejected records are reported in
// errs and do not affect the others.
func Parse(records []Record) (pitches []Pitch, errs []error) {
	for i, rec := range records {
		p, err := FromRecord(i, rec)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		pitches = append(pitches, p)
	}
	return pitches, errs
}

// LoadFile decodes and parses the feed at path.
func LoadFile(path string) ([]Pitch, []error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	pitches, errs := Parse(records)
	return pitches, errs, nil
}

// Load returns the bundled sample when path is empty.
func Load(path string) ([]Pitch, []error, error) {
	if path == "" {
		return Sample()
	}
	return LoadFile(path)
}

// Labels returns a short display label per pitch.
func Labels(pitches []Pitch) []string {
	return lo.Map(pitches, func(p Pitch, i int) string {
		label := p.PitchType
		if label == "" {
			label = "pitch"
		}
		if p.StartSpeed > 0 {
			return fmt.Sprintf("%d %s %.1f mph %s", i+1, label, p.StartSpeed, p.Outcome)
		}
		return fmt.Sprintf("%d %s %s", i+1, label, p.Outcome)
	})
}
