package waitlist

import (
	"strings"
	"time"

	"github.com/akeren/landing-intake/internal/models"
	"github.com/akeren/landing-intake/pkg/constants"
)

// CreateSignupRequest carries the raw field set submitted by the landing page.
// Required-ness and email format are checked by the domain validator so that
// failures carry the stable machine codes clients branch on; binding tags only
// cap field sizes.
type CreateSignupRequest struct {
	Email string `json:"email" binding:"omitempty,max=255"`
	Name  string `json:"name" binding:"omitempty,max=255"`
}

type SignupResponse struct {
	ID        uint    `json:"id"`
	Email     string  `json:"email"`
	Name      *string `json:"name"`
	CreatedAt string  `json:"created_at"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

// ========================================
// Mappers
// ========================================

// ToSignupModel sanitizes a validated request into its persisted form: the
// email is trimmed and lowercased (the identity used for uniqueness), a blank
// name becomes NULL, and created_at is stamped here rather than by the caller.
func ToSignupModel(req *CreateSignupRequest) *models.WaitlistSignup {
	if req == nil {
		return nil
	}

	var name *string
	if trimmed := strings.TrimSpace(req.Name); trimmed != "" {
		name = &trimmed
	}

	return &models.WaitlistSignup{
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Name:      name,
		CreatedAt: time.Now().UTC().Format(constants.RFC3339DateTimeFormat),
	}
}

func ToSignupResponse(signup *models.WaitlistSignup) SignupResponse {
	if signup == nil {
		return SignupResponse{}
	}
	return SignupResponse{
		ID:        signup.ID,
		Email:     signup.Email,
		Name:      signup.Name,
		CreatedAt: signup.CreatedAt,
	}
}
