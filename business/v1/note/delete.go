package note

import "context"

// Delete removes the note with id, if any, saves and returns the updated collection.
func (s *Store) Delete(ctx context.Context, id int64) []Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]Note, 0, len(s.notes))
	for _, n := range s.notes {
		if n.Id != id {
			kept = append(kept, n)
		}
	}
	s.notes = kept
	s.persist(ctx)

	return s.snapshot()
}
