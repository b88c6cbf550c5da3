package entity

// Appointment as served by /appointments. Either foreign key may be missing
// and neither is checked locally.
type Appointment struct {
	ID              int64  `json:"id"`
	AppointmentDate Date   `json:"appointment_date"`
	DoctorID        *int64 `json:"doctor_id"`
	PatientID       *int64 `json:"patient_id"`
}

// BelongsToDoctor reports whether the appointment references doctorID.
func (a *Appointment) BelongsToDoctor(doctorID int64) bool {
	return a.DoctorID != nil && *a.DoctorID == doctorID
}

// EnrichedAppointment adds display names resolved from the referenced
// doctor and patient. The names are never sent back to the API.
type EnrichedAppointment struct {
	Appointment
	DoctorName  string `json:"doctorName"`
	PatientName string `json:"patientName"`
}
