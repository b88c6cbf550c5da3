package converter

import (
	"clinic-manager/internal/delivery/dto"
	"clinic-manager/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:             doctor.ID,
		FirstName:      doctor.FirstName,
		LastName:       doctor.LastName,
		DisplayName:    doctor.DisplayName(),
		Email:          doctor.Email,
		Phone:          doctor.Phone,
		Specialisation: doctor.Specialisation,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// DoctorToForm prefills the edit form
func DoctorToForm(doctor *entity.Doctor) *dto.DoctorForm {
	return &dto.DoctorForm{
		FirstName:      doctor.FirstName,
		LastName:       doctor.LastName,
		Email:          doctor.Email,
		Phone:          doctor.Phone,
		Specialisation: doctor.Specialisation,
	}
}

func DoctorsToOptions(doctors []entity.Doctor) []dto.Option {
	options := make([]dto.Option, len(doctors))
	for i := range doctors {
		options[i] = dto.Option{Value: doctors[i].ID, Label: doctors[i].DisplayName()}
	}
	return options
}
