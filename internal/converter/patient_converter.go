package converter

import (
	"clinic-manager/internal/delivery/dto"
	"clinic-manager/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:          patient.ID,
		FirstName:   patient.FirstName,
		LastName:    patient.LastName,
		DisplayName: patient.DisplayName(),
		Email:       patient.Email,
		Phone:       patient.Phone,
		Address:     patient.Address,
		DateOfBirth: patient.DateOfBirth.String(),
	}
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

func PatientToForm(patient *entity.Patient) *dto.PatientForm {
	return &dto.PatientForm{
		FirstName:   patient.FirstName,
		LastName:    patient.LastName,
		Email:       patient.Email,
		Phone:       patient.Phone,
		Address:     patient.Address,
		DateOfBirth: patient.DateOfBirth.String(),
	}
}

// PatientFormToPayload expects a form that already passed validation.
func PatientFormToPayload(form *dto.PatientForm) (*dto.PatientPayload, error) {
	dob, err := entity.ParseDate(form.DateOfBirth)
	if err != nil {
		return nil, err
	}
	return &dto.PatientPayload{
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		Email:       form.Email,
		Phone:       form.Phone,
		Address:     form.Address,
		DateOfBirth: dob,
	}, nil
}

func PatientsToOptions(patients []entity.Patient) []dto.Option {
	options := make([]dto.Option, len(patients))
	for i := range patients {
		options[i] = dto.Option{Value: patients[i].ID, Label: patients[i].DisplayName()}
	}
	return options
}
