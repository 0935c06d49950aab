package memstore

import (
	"sync"

	"swiss-virtual-airline/internal/domain/flight"
	"swiss-virtual-airline/internal/pkg/errs"
)

// FlightStore is the in-memory flight catalog. All mutations are serialized
// by the store mutex; snapshots are copies.
type FlightStore struct {
	mu      sync.Mutex
	flights []flight.Record
}

func NewFlightStore() *FlightStore {
	return &FlightStore{}
}

func (s *FlightStore) List() []flight.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]flight.Record(nil), s.flights...)
}

// ReplaceAll swaps the entire board and returns the new count.
func (s *FlightStore) ReplaceAll(records []flight.Record) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flights = append([]flight.Record(nil), records...)
	return len(s.flights)
}

func (s *FlightStore) Append(rec flight.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flights = append(s.flights, rec)
}

func (s *FlightStore) Exists(flightNumber string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(flightNumber) >= 0
}

// Merge applies a partial update to the matching record and returns the
// updated copy.
func (s *FlightStore) Merge(flightNumber string, apply func(*flight.Record)) (flight.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(flightNumber)
	if i < 0 {
		return flight.Record{}, errs.ErrFlightNotFound
	}
	apply(&s.flights[i])
	return s.flights[i], nil
}

func (s *FlightStore) Remove(flightNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(flightNumber)
	if i < 0 {
		return errs.ErrFlightNotFound
	}
	s.flights = append(s.flights[:i], s.flights[i+1:]...)
	return nil
}

func (s *FlightStore) indexOf(flightNumber string) int {
	for i, f := range s.flights {
		if f.FlightNumber == flightNumber {
			return i
		}
	}
	return -1
}
