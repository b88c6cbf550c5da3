package service

import (
	"testing"

	"clinic-manager/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestListingStore_RemovesByID(t *testing.T) {
	store := NewListingStore()
	store.Replace(Listing{
		Doctors:  []entity.Doctor{{ID: 5}, {ID: 6}},
		Patients: []entity.Patient{{ID: 20}, {ID: 21}},
		Appointments: []entity.EnrichedAppointment{
			{Appointment: entity.Appointment{ID: 10}},
			{Appointment: entity.Appointment{ID: 11}},
			{Appointment: entity.Appointment{ID: 12}},
		},
	})
	before := store.Snapshot()

	store.RemoveDoctor(5)
	store.RemovePatients(20)
	store.RemoveAppointments(10, 11)

	after := store.Snapshot()
	assert.Equal(t, []entity.Doctor{{ID: 6}}, after.Doctors)
	assert.Equal(t, []entity.Patient{{ID: 21}}, after.Patients)
	assert.Len(t, after.Appointments, 1)
	assert.Equal(t, int64(12), after.Appointments[0].ID)

	// earlier snapshots are not affected
	assert.Len(t, before.Doctors, 2)
}

func TestListingStore_RemoveWithoutIDsIsNoop(t *testing.T) {
	store := NewListingStore()
	store.Replace(Listing{Patients: []entity.Patient{{ID: 1}}})
	store.RemovePatients()
	assert.Len(t, store.Snapshot().Patients, 1)
}
