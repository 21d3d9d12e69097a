package note

import (
	"github.com/ribgsilva/note-board/persistence/v1/slot"
	"go.uber.org/zap"
)

// Adapter reads and writes the whole note collection through a single slot key.
type Adapter struct {
	log  *zap.SugaredLogger
	slot slot.Slot
	key  string
}

func NewAdapter(log *zap.SugaredLogger, s slot.Slot, key string) *Adapter {
	if key == "" {
		key = DefaultSlotKey
	}
	return &Adapter{log: log, slot: s, key: key}
}
