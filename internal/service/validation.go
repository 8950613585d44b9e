package service

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"carehome/internal/model"
)

const (
	usernameMinLength = 3
	usernameMaxLength = 20
	passwordMinLength = 6
	// bcrypt ignores input past this many bytes and rejects it outright.
	passwordMaxBytes = 72
)

var validate = validator.New()

// ValidateEmail reports whether email is a syntactically valid address.
func ValidateEmail(email string) bool {
	return email != "" && validate.Var(email, "email") == nil
}

// ValidateUsername checks length and that only letters and digits are used.
// The message is suitable for display in both outcomes.
func ValidateUsername(username string) (bool, string) {
	if len(username) < usernameMinLength || len(username) > usernameMaxLength {
		return false, "El usuario debe tener entre 3 y 20 caracteres"
	}
	if validate.Var(username, "alphanum") != nil {
		return false, "El usuario solo puede contener letras y números"
	}
	return true, "Usuario válido"
}

// ValidatePassword enforces the password length bounds.
func ValidatePassword(password string) (bool, string) {
	if len(password) < passwordMinLength {
		return false, "La contraseña debe tener al menos 6 caracteres"
	}
	if len(password) > passwordMaxBytes {
		return false, "La contraseña no puede superar los 72 bytes"
	}
	return true, "Contraseña válida"
}

// field is a named input value checked by requireFields.
type field struct {
	name  string
	value string
}

// requireFields returns the name of the first field that is blank after trimming.
func requireFields(fields ...field) (string, bool) {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return f.name, false
		}
	}
	return "", true
}

// parseRequiredDate parses a required YYYY-MM-DD input.
func parseRequiredDate(value string) (model.Date, bool) {
	d, err := model.ParseDate(value)
	if err != nil {
		return model.Date{}, false
	}
	return d, true
}

// optionalString trims s and turns blanks into nil.
func optionalString(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
