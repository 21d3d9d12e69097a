package note

import (
	"context"
	"sync"
	"time"

	"github.com/ribgsilva/note-board/persistence/v1/note"
	"go.uber.org/zap"
)

// Persistence stores the whole collection at once
type Persistence interface {
	Load(ctx context.Context) ([]note.Record, error)
	Save(ctx context.Context, records []note.Record) error
}

// Store owns the note collection of a session. Every mutation is written
// through to Persistence; write failures are logged and the in-memory
// collection stays authoritative.
type Store struct {
	log *zap.SugaredLogger
	db  Persistence
	now func() time.Time

	mu    sync.Mutex
	notes []Note
}

type Option func(*Store)

// WithClock replaces time.Now, used for ids and dates
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(log *zap.SugaredLogger, db Persistence, opts ...Option) *Store {
	s := &Store{
		log:   log,
		db:    db,
		now:   time.Now,
		notes: []Note{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize loads the persisted collection. Any load failure leaves the
// store empty, it never fails.
func (s *Store) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = []Note{}

	records, err := s.db.Load(ctx)
	if err != nil {
		s.log.Warnw("initialize", "status", "starting with no notes", "ERROR", err)
		return
	}

	notes := make([]Note, 0, len(records))
	for _, r := range records {
		if !ValidColor(r.Color) {
			s.log.Warnw("initialize", "status", "starting with no notes", "ERROR", "unknown color "+r.Color)
			return
		}
		notes = append(notes, Note(r))
	}
	s.notes = notes
	s.log.Infow("initialize", "notes", len(notes))
}

// persist must be called with mu held
func (s *Store) persist(ctx context.Context) {
	records := make([]note.Record, len(s.notes))
	for i, n := range s.notes {
		records[i] = note.Record(n)
	}
	if err := s.db.Save(ctx, records); err != nil {
		s.log.Errorw("persist", "status", "notes kept in memory only", "ERROR", err)
	}
}

// snapshot must be called with mu held
func (s *Store) snapshot() []Note {
	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out
}
