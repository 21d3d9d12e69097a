package note

// All returns a copy of the collection in insertion order
func (s *Store) All() []Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Chart aggregates the current collection
func (s *Store) Chart() []ChartPoint {
	return Aggregate(s.All())
}
