package comments

import (
	"strings"

	apperrors "github.com/akeren/landing-intake/pkg/errors"
	"github.com/akeren/landing-intake/pkg/utils"
)

// ValidateCreateComment checks the raw field set before any normalization or
// I/O, terminal on the first failure. A comment that is present but blank
// after trimming is a distinct failure from a missing one.
func ValidateCreateComment(req *CreateCommentRequest) *apperrors.AppError {
	if strings.TrimSpace(req.Email) == "" {
		return apperrors.NewValidationError(apperrors.CodeMissingEmail, "Email is required")
	}

	if req.Comment == "" {
		return apperrors.NewValidationError(apperrors.CodeMissingComment, "Comment is required")
	}

	if !utils.IsValidEmailAddress(strings.TrimSpace(req.Email)) {
		return apperrors.NewValidationError(apperrors.CodeInvalidEmail, "Invalid email format")
	}

	if strings.TrimSpace(req.Comment) == "" {
		return apperrors.NewValidationError(apperrors.CodeEmptyComment, "Comment cannot be empty")
	}

	return nil
}
