package waitlist

import (
	"strings"

	apperrors "github.com/akeren/landing-intake/pkg/errors"
	"github.com/akeren/landing-intake/pkg/utils"
)

// ValidateCreateSignup checks the raw field set before any normalization or
// I/O. The first failure is terminal and carries the machine code the client
// branches on. Name is optional at this layer.
func ValidateCreateSignup(req *CreateSignupRequest) *apperrors.AppError {
	if strings.TrimSpace(req.Email) == "" {
		return apperrors.NewValidationError(apperrors.CodeMissingEmail, "Email is required")
	}

	if !utils.IsValidEmailAddress(strings.TrimSpace(req.Email)) {
		return apperrors.NewValidationError(apperrors.CodeInvalidEmailFormat, "Invalid email format")
	}

	return nil
}
