package dto

type DashboardResponse struct {
	Message       string                `json:"message,omitempty"`
	Authenticated bool                  `json:"authenticated"`
	Doctors       []DoctorResponse      `json:"doctors"`
	Patients      []PatientResponse     `json:"patients"`
	Appointments  []AppointmentResponse `json:"appointments"`
}

// CascadeReport describes how far a cascading doctor deletion got.
type CascadeReport struct {
	DoctorID            int64   `json:"doctor_id"`
	State               string  `json:"state"`
	FailedStep          string  `json:"failed_step,omitempty"`
	AppointmentIDs      []int64 `json:"appointment_ids"`
	PatientIDs          []int64 `json:"patient_ids"`
	DeletedAppointments []int64 `json:"deleted_appointments"`
	DeletedPatients     []int64 `json:"deleted_patients"`
	Error               string  `json:"error,omitempty"`
}
