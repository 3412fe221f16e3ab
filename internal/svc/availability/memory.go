package availability

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/medilink/api/data/model"
	"github.com/medilink/api/internal/instance"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewMemory returns an in-process availability store with the same contract
// as the mongo-backed one. Used by coordinator tests; not for production.
func NewMemory() instance.Availability {
	return &memoryStore{
		records: make(map[primitive.ObjectID]model.AvailabilityRecord),
		base:    time.Now(),
	}
}

type memoryStore struct {
	mu      sync.Mutex
	records map[primitive.ObjectID]model.AvailabilityRecord
	base    time.Time
	clock   int64
}

// now returns a strictly increasing timestamp so back-to-back writes within
// the same wall-clock tick still order deterministically.
func (s *memoryStore) now() time.Time {
	s.clock++
	return s.base.Add(time.Duration(s.clock) * time.Microsecond)
}

func (s *memoryStore) SetAvailability(_ context.Context, empID primitive.ObjectID, isAvailable bool) (model.AvailabilityRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := model.AvailabilityRecord{
		EmpID:       empID,
		IsAvailable: isAvailable,
		LastUpdated: s.now(),
	}
	s.records[empID] = record

	return record, nil
}

func (s *memoryStore) GetAvailable(_ context.Context) ([]model.AvailabilityRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := []model.AvailabilityRecord{}

	for _, r := range s.records {
		if r.IsAvailable {
			records = append(records, r)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].LastUpdated.Before(records[j].LastUpdated)
	})

	return records, nil
}

func (s *memoryStore) Reserve(_ context.Context, empID primitive.ObjectID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[empID]
	if !ok || !r.IsAvailable {
		return false, nil
	}

	r.IsAvailable = false
	r.LastUpdated = s.now()
	s.records[empID] = r

	return true, nil
}
