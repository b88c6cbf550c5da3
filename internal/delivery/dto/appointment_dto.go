package dto

import "clinic-manager/internal/domain/entity"

type AppointmentForm struct {
	AppointmentDate string `json:"appointment_date" validate:"calendar_date"`
	DoctorID        int64  `json:"doctor_id" validate:"required"`
	PatientID       int64  `json:"patient_id" validate:"required"`
}

type AppointmentResponse struct {
	ID              int64  `json:"id"`
	AppointmentDate string `json:"appointment_date"`
	DoctorID        *int64 `json:"doctor_id"`
	PatientID       *int64 `json:"patient_id"`
	DoctorName      string `json:"doctorName"`
	PatientName     string `json:"patientName"`
}

// Option is one entry of a select box.
type Option struct {
	Value int64  `json:"value"`
	Label string `json:"label"`
}

// AppointmentFormOptions feeds the doctor and patient pickers.
type AppointmentFormOptions struct {
	Doctors  []Option `json:"doctors"`
	Patients []Option `json:"patients"`
}

type AppointmentPayload struct {
	AppointmentDate entity.Date `json:"appointment_date"`
	DoctorID        int64       `json:"doctor_id"`
	PatientID       int64       `json:"patient_id"`
}
