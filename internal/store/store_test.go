package store

import (
	"fmt"
	"sync"
	"testing"
)

func TestSequence_StartingOffsets(t *testing.T) {
	s := New()

	tests := []struct {
		entity string
		first  string
		second string
	}{
		{EntityPatient, "P1001", "P1002"},
		{EntityStaff, "S2001", "S2002"},
		{EntityAdmission, "A3001", "A3002"},
		{EntityPrescription, "R4001", "R4002"},
		{EntityBill, "B5001", "B5002"},
		{EntityPharmacy, "PH6001", "PH6002"},
	}

	for _, tt := range tests {
		seq := s.Sequence(tt.entity)
		if got := seq.Next(); got != tt.first {
			t.Errorf("%s: first ID = %q, want %q", tt.entity, got, tt.first)
		}
		if got := seq.Next(); got != tt.second {
			t.Errorf("%s: second ID = %q, want %q", tt.entity, got, tt.second)
		}
	}
}

func TestSequence_StrictlyIncreasingUnique(t *testing.T) {
	seq := NewSequence("P", 1000)
	seen := make(map[string]bool)
	prev := int64(0)
	for i := 0; i < 50; i++ {
		id := seq.Next()
		if seen[id] {
			t.Fatalf("duplicate ID allocated: %s", id)
		}
		seen[id] = true
		var n int64
		if _, err := fmt.Sscanf(id, "P%d", &n); err != nil {
			t.Fatalf("unexpected ID format %q: %v", id, err)
		}
		if n <= prev {
			t.Fatalf("IDs not strictly increasing: %d after %d", n, prev)
		}
		prev = n
	}
}

func TestSequence_Peek(t *testing.T) {
	seq := NewSequence("B", 5000)
	if got := seq.Peek(); got != "B5001" {
		t.Errorf("Peek = %q, want B5001", got)
	}
	seq.Next()
	if got := seq.Peek(); got != "B5002" {
		t.Errorf("Peek after Next = %q, want B5002", got)
	}
}

func TestSequence_ConcurrentAllocation(t *testing.T) {
	seq := NewSequence("S", 2000)
	const workers = 8
	const perWorker = 100

	ids := make(chan string, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				ids <- seq.Next()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate ID under concurrency: %s", id)
		}
		seen[id] = true
	}
	if len(seen) != workers*perWorker {
		t.Errorf("allocated %d unique IDs, want %d", len(seen), workers*perWorker)
	}
}

func TestStore_UnknownEntityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown entity")
		}
	}()
	New().Sequence("ward")
}
