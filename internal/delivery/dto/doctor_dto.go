package dto

// DoctorForm is the create/edit form of a doctor.
type DoctorForm struct {
	FirstName      string `json:"first_name" validate:"min=3,max=254"`
	LastName       string `json:"last_name" validate:"min=3,max=254"`
	Email          string `json:"email" validate:"loose_email"`
	Phone          string `json:"phone" validate:"len=10"`
	Specialisation string `json:"specialisation" validate:"specialisation"`
}

type DoctorResponse struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DisplayName    string `json:"display_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Specialisation string `json:"specialisation"`
}
