package entity

// Collection names one of the REST collections exposed by the clinic API.
type Collection string

const (
	CollectionDoctors      Collection = "doctors"
	CollectionPatients     Collection = "patients"
	CollectionAppointments Collection = "appointments"
)

// Singular is used in user-facing messages ("Failed to delete doctor").
func (c Collection) Singular() string {
	switch c {
	case CollectionDoctors:
		return "doctor"
	case CollectionPatients:
		return "patient"
	case CollectionAppointments:
		return "appointment"
	}
	return string(c)
}
