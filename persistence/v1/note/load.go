package note

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ribgsilva/note-board/persistence/v1/slot"
)

// Load returns the stored collection. An absent slot is an empty collection,
// anything that does not decode into valid records is ErrMalformed.
func (a *Adapter) Load(ctx context.Context) ([]Record, error) {
	get, err := a.slot.Read(ctx, a.key)
	if errors.Is(err, slot.ErrAbsent) {
		a.log.Debugw("load", "key", a.key, "status", "absent")
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read notes: %w", err)
	}

	records, err := Decode([]byte(get))
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Decode parses a stored collection, checking every record.
func Decode(data []byte) ([]Record, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil, fmt.Errorf("%w: not a json array", ErrMalformed)
	}

	// encoding/json matches keys case-insensitively and skips unknown ones,
	// the raw objects are checked first so only the exact stored shape passes
	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, err)
	}
	for i, fields := range raw {
		if err := checkKeys(fields); err != nil {
			return nil, fmt.Errorf("%w: record %d: %s", ErrMalformed, i, err)
		}
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, err)
	}

	seen := make(map[int64]struct{}, len(records))
	for i, r := range records {
		if err := check(r); err != nil {
			return nil, fmt.Errorf("%w: record %d: %s", ErrMalformed, i, err)
		}
		if _, ok := seen[r.Id]; ok {
			return nil, fmt.Errorf("%w: record %d: duplicated id %d", ErrMalformed, i, r.Id)
		}
		seen[r.Id] = struct{}{}
	}
	return records, nil
}

func check(r Record) error {
	switch {
	case strings.TrimSpace(r.Title) == "":
		return errors.New("empty title")
	case strings.TrimSpace(r.Content) == "":
		return errors.New("empty content")
	case !ValidColor(r.Color):
		return fmt.Errorf("color %q is not in the palette", r.Color)
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return fmt.Errorf("invalid date %q", r.Date)
	}
	return nil
}

func checkKeys(fields map[string]json.RawMessage) error {
	if fields == nil {
		return errors.New("not an object")
	}
	if len(fields) != len(recordKeys) {
		return fmt.Errorf("expected %d keys, got %d", len(recordKeys), len(fields))
	}
	for _, k := range recordKeys {
		if _, ok := fields[k]; !ok {
			return fmt.Errorf("missing key %q", k)
		}
	}
	return nil
}
