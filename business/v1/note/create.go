package note

import (
	"context"
	"strings"
	"time"

	"github.com/ribgsilva/note-board/persistence/v1/note"
)

// Add appends a note and returns the updated collection. A blank title or
// content leaves the collection untouched and nothing is saved.
func (s *Store) Add(ctx context.Context, title, content, color string) []Note {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	s.mu.Lock()
	defer s.mu.Unlock()

	if title == "" || content == "" {
		return s.snapshot()
	}
	if !ValidColor(color) {
		color = DefaultColor
	}

	now := s.now()
	n := Note{
		Id:      s.nextId(now),
		Title:   title,
		Content: content,
		Color:   color,
		Date:    now.Format(note.DateLayout),
	}
	s.notes = append(s.notes, n)
	s.persist(ctx)

	return s.snapshot()
}

// nextId is the creation time in milliseconds, bumped past the largest id in use
func (s *Store) nextId(now time.Time) int64 {
	id := now.UnixMilli()
	for _, n := range s.notes {
		if n.Id >= id {
			id = n.Id + 1
		}
	}
	return id
}
