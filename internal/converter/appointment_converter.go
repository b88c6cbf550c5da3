package converter

import (
	"clinic-manager/internal/delivery/dto"
	"clinic-manager/internal/domain/entity"
)

// AppointmentToResponse converts an EnrichedAppointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.EnrichedAppointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		AppointmentDate: appointment.AppointmentDate.String(),
		DoctorID:        appointment.DoctorID,
		PatientID:       appointment.PatientID,
		DoctorName:      appointment.DoctorName,
		PatientName:     appointment.PatientName,
	}
}

func AppointmentsToResponses(appointments []entity.EnrichedAppointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

func AppointmentToForm(appointment *entity.Appointment) *dto.AppointmentForm {
	form := &dto.AppointmentForm{AppointmentDate: appointment.AppointmentDate.String()}
	if appointment.DoctorID != nil {
		form.DoctorID = *appointment.DoctorID
	}
	if appointment.PatientID != nil {
		form.PatientID = *appointment.PatientID
	}
	return form
}

// AppointmentFormToPayload expects a form that already passed validation.
func AppointmentFormToPayload(form *dto.AppointmentForm) (*dto.AppointmentPayload, error) {
	date, err := entity.ParseDate(form.AppointmentDate)
	if err != nil {
		return nil, err
	}
	return &dto.AppointmentPayload{
		AppointmentDate: date,
		DoctorID:        form.DoctorID,
		PatientID:       form.PatientID,
	}, nil
}
