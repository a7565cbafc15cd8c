package tui

import (
	"testing"

	"github.com/MKhiriev/go-accounts-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{in: "short", max: 10, want: "short"},
		{in: "exactly10!", max: 10, want: "exactly10!"},
		{in: "a much longer label", max: 10, want: "a much ..."},
		{in: "пароль-от-почты", max: 8, want: "парол..."},
		{in: "abcdef", max: 2, want: "ab"},
		{in: "abc", max: 0, want: "abc"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fitText(tt.in, tt.max), tt.in)
	}
}

func TestCell(t *testing.T) {
	assert.Equal(t, "-    ", cell("", 5))
	assert.Equal(t, "ab   ", cell("ab", 5))
	assert.Equal(t, "ab...", cell("abcdefgh", 5))
}

func TestPasswordCell(t *testing.T) {
	assert.Equal(t, maskedPassword, passwordCell(models.Account{Type: models.Local, Password: "p"}))
	assert.Equal(t, "p", passwordCell(models.Account{Type: models.Local, Password: "p", ShowPwd: true}))
	assert.Empty(t, passwordCell(models.Account{Type: models.External, Password: "p", ShowPwd: true}))
}

func TestRowErrors(t *testing.T) {
	errs := models.ErrorMap{
		{Field: models.FieldPassword, Index: 1}: "Password is required",
		{Field: models.FieldLabel, Index: 1}:    "Label is required",
		{Field: models.FieldLogin, Index: 0}:    "Login is required",
	}

	assert.Equal(t, []string{"Label is required", "Password is required"}, rowErrors(errs, 1))
	assert.Empty(t, rowErrors(errs, 2))
}
