package entity

import "fmt"

// Doctor as served by /doctors. Email and phone are unique server-side.
type Doctor struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Specialisation string `json:"specialisation"`
}

const (
	SpecialisationPodiatrist          = "Podiatrist"
	SpecialisationDermatologist       = "Dermatologist"
	SpecialisationPediatrician        = "Pediatrician"
	SpecialisationPsychiatrist        = "Psychiatrist"
	SpecialisationGeneralPractitioner = "General Practitioner"
)

var Specialisations = []string{
	SpecialisationPodiatrist,
	SpecialisationDermatologist,
	SpecialisationPediatrician,
	SpecialisationPsychiatrist,
	SpecialisationGeneralPractitioner,
}

func IsValidSpecialisation(s string) bool {
	for _, known := range Specialisations {
		if s == known {
			return true
		}
	}
	return false
}

// DisplayName is the name shown wherever a doctor is referenced.
func (d *Doctor) DisplayName() string {
	return fmt.Sprintf("Dr. %s %s", d.FirstName, d.LastName)
}
