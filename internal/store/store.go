// Package store provides the in-memory entity store backing the HMS demo.
// All domain repositories share a single Store constructed at startup; state
// lives for the lifetime of the process and is never persisted.
package store

import (
	"fmt"
	"sync/atomic"
)

// Entity type names used for sequence registration.
const (
	EntityPatient      = "patient"
	EntityStaff        = "staff"
	EntityAdmission    = "admission"
	EntityPrescription = "prescription"
	EntityBill         = "bill"
	EntityPharmacy     = "pharmacy"
)

// Sequence allocates monotonically increasing business IDs for one entity
// type. IDs carry a type prefix and a numeric offset, e.g. the patient
// sequence starts at 1000 and the first allocation returns "P1001".
type Sequence struct {
	prefix  string
	counter atomic.Int64
}

// NewSequence returns a sequence producing prefix+N IDs, where N starts at
// start+1 on the first call to Next.
func NewSequence(prefix string, start int64) *Sequence {
	s := &Sequence{prefix: prefix}
	s.counter.Store(start)
	return s
}

// Next allocates and returns the next ID in the sequence.
func (s *Sequence) Next() string {
	return fmt.Sprintf("%s%d", s.prefix, s.counter.Add(1))
}

// Peek returns the ID the next call to Next would allocate, without
// allocating it. Used by tests and diagnostics.
func (s *Sequence) Peek() string {
	return fmt.Sprintf("%s%d", s.prefix, s.counter.Load()+1)
}

// Prefix returns the sequence's ID prefix.
func (s *Sequence) Prefix() string {
	return s.prefix
}

// Store bundles the per-entity ID sequences. Domain repositories hold their
// own collections; the Store exists so that every sequence is constructed in
// one place and handed down explicitly instead of living in package globals.
type Store struct {
	sequences map[string]*Sequence
}

// New constructs a Store with the standard HMS sequences registered.
func New() *Store {
	return &Store{
		sequences: map[string]*Sequence{
			EntityPatient:      NewSequence("P", 1000),
			EntityStaff:        NewSequence("S", 2000),
			EntityAdmission:    NewSequence("A", 3000),
			EntityPrescription: NewSequence("R", 4000),
			EntityBill:         NewSequence("B", 5000),
			EntityPharmacy:     NewSequence("PH", 6000),
		},
	}
}

// Sequence returns the sequence registered for the given entity type.
// It panics on an unknown entity type; sequences are registered statically
// in New and a miss is a programming error.
func (s *Store) Sequence(entity string) *Sequence {
	seq, ok := s.sequences[entity]
	if !ok {
		panic(fmt.Sprintf("store: no sequence registered for entity %q", entity))
	}
	return seq
}
