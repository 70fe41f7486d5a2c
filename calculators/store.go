package calculators

import "sync/atomic"

// Store holds the active Catalog and may be swapped while handlers read it.
type Store struct {
	current atomic.Pointer[Catalog]
}

func NewStore(c Catalog) *Store {
	s := &Store{}
	s.Set(c)
	return s
}

func (s *Store) Catalog() Catalog {
	return *s.current.Load()
}

func (s *Store) Set(c Catalog) {
	s.current.Store(&c)
}
