package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Name  string `json:"name" validate:"min=3,max=254"`
	Email string `json:"email" validate:"loose_email"`
	Born  string `json:"born" validate:"calendar_date"`
	Role  string `json:"role" validate:"specialisation"`
}

func TestCustomValidator_ReportsEveryFailingField(t *testing.T) {
	cv := NewValidator()
	cv.RegisterMessages(map[string]string{
		"name":  "Name must be between 2 and 255 characters",
		"email": "Invalid email",
	})

	err := cv.Validate(&sampleForm{Name: "Al", Email: "nope", Born: "yesterday", Role: "Surgeon"})
	require.Error(t, err)

	assert.Equal(t, map[string]string{
		"name":  "Name must be between 2 and 255 characters",
		"email": "Invalid email",
		"born":  "born must be a valid date",
		"role":  "role is invalid",
	}, cv.FormatValidationErrors(err))
}

func TestCustomValidator_AcceptsValidForm(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleForm{Name: "Alan", Email: "a@b", Born: "1990-01-31", Role: "General Practitioner"})
	assert.NoError(t, err)
}

func TestCustomValidator_TagSpecificMessageWins(t *testing.T) {
	cv := NewValidator()
	cv.RegisterMessages(map[string]string{
		"name":     "generic",
		"name.max": "too long",
	})

	long := make([]byte, 300)
	for i := range long {
		long[i] = 'a'
	}
	err := cv.Validate(&sampleForm{Name: string(long), Email: "a@b", Born: "1990-01-31", Role: "Podiatrist"})
	require.Error(t, err)
	assert.Equal(t, "too long", cv.FormatValidationErrors(err)["name"])
}
