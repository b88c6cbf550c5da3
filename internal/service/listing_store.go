package service

import (
	"sync"

	"clinic-manager/internal/domain/entity"
)

// Listing is the dashboard data last loaded from the API.
type Listing struct {
	Doctors      []entity.Doctor
	Patients     []entity.Patient
	Appointments []entity.EnrichedAppointment
}

// ListingStore keeps the dashboard listing in memory so deletions can be
// reflected without refetching. It is never persisted.
type ListingStore struct {
	mu      sync.RWMutex
	listing Listing
}

func NewListingStore() *ListingStore {
	return &ListingStore{}
}

// Replace swaps in a freshly loaded listing.
func (s *ListingStore) Replace(listing Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listing = listing
}

// Snapshot returns a copy safe to hand to callers.
func (s *ListingStore) Snapshot() Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Listing{
		Doctors:      append([]entity.Doctor{}, s.listing.Doctors...),
		Patients:     append([]entity.Patient{}, s.listing.Patients...),
		Appointments: append([]entity.EnrichedAppointment{}, s.listing.Appointments...),
	}
}

func (s *ListingStore) RemoveDoctor(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listing.Doctors = removeByID(s.listing.Doctors, func(d entity.Doctor) int64 { return d.ID }, id)
}

func (s *ListingStore) RemovePatients(ids ...int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listing.Patients = removeByID(s.listing.Patients, func(p entity.Patient) int64 { return p.ID }, ids...)
}

func (s *ListingStore) RemoveAppointments(ids ...int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listing.Appointments = removeByID(s.listing.Appointments, func(a entity.EnrichedAppointment) int64 { return a.ID }, ids...)
}

func removeByID[T any](items []T, idOf func(T) int64, ids ...int64) []T {
	if len(ids) == 0 {
		return items
	}
	drop := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := items[:0:0]
	for _, item := range items {
		if _, ok := drop[idOf(item)]; !ok {
			kept = append(kept, item)
		}
	}
	return kept
}
