package note

import (
	"context"
	"encoding/json"
	"fmt"
)

// Save overwrites the slot with the full collection.
func (a *Adapter) Save(ctx context.Context, records []Record) error {
	if records == nil {
		records = []Record{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}

	if err := a.slot.Write(ctx, a.key, string(data)); err != nil {
		return fmt.Errorf("failed to save notes: %w", err)
	}
	a.log.Debugw("save", "key", a.key, "notes", len(records))
	return nil
}
