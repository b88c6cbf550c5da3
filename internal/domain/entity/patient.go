package entity

// Patient as served by /patients. The API carries no doctor reference on
// patients; the link to a doctor only exists through appointments.
type Patient struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	DateOfBirth Date   `json:"date_of_birth"`
}

func (p *Patient) DisplayName() string {
	return p.FirstName + " " + p.LastName
}
