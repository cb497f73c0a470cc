package record

// Store is the ordered, read-only record list for one session. It is safe for
// concurrent readers because nothing mutates it after construction.
type Store struct {
	records []Record
}

// NewStore copies records into a new store, preserving their order.
func NewStore(records []Record) *Store {
	out := make([]Record, len(records))
	for i, rec := range records {
		out[i] = rec.Clone()
	}
	return &Store{records: out}
}

// Empty returns a store without records.
func Empty() *Store {
	return &Store{}
}

// Len reports the number of records.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// At returns the record at index i.
func (s *Store) At(i int) Record {
	return s.records[i]
}

// Records returns the records in load order. The slice is a copy; the records
// themselves are shared and must be treated as read-only.
func (s *Store) Records() []Record {
	if s == nil {
		return nil
	}
	return append([]Record(nil), s.records...)
}

// Find returns the first record whose house_id equals id.
func (s *Store) Find(id string) (Record, bool) {
	if s == nil {
		return nil, false
	}
	for _, rec := range s.records {
		if rec.ID() == id {
			return rec, true
		}
	}
	return nil, false
}
