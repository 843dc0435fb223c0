package comments

import (
	"strings"
	"time"

	"github.com/akeren/landing-intake/internal/models"
	"github.com/akeren/landing-intake/pkg/constants"
)

// CreateCommentRequest carries the raw field set from the feedback form.
// Presence and format rules live in the domain validator so failures carry
// stable machine codes; binding tags only cap field sizes.
type CreateCommentRequest struct {
	Name    string `json:"name" binding:"omitempty,max=255"`
	Email   string `json:"email" binding:"omitempty,max=255"`
	Subject string `json:"subject" binding:"omitempty,max=255"`
	Comment string `json:"comment" binding:"omitempty,max=5000"`
}

type CommentResponse struct {
	ID        uint    `json:"id"`
	Name      *string `json:"name"`
	Email     string  `json:"email"`
	Subject   *string `json:"subject"`
	Comment   string  `json:"comment"`
	CreatedAt string  `json:"created_at"`
}

// ========================================
// Mappers
// ========================================

// ToCommentModel sanitizes a validated request into its persisted form:
// email trimmed and lowercased, blank optional fields stored as NULL, the
// comment body trimmed, and created_at stamped here.
func ToCommentModel(req *CreateCommentRequest) *models.Comment {
	if req == nil {
		return nil
	}

	return &models.Comment{
		Name:      optionalField(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Subject:   optionalField(req.Subject),
		Comment:   strings.TrimSpace(req.Comment),
		CreatedAt: time.Now().UTC().Format(constants.RFC3339DateTimeFormat),
	}
}

func optionalField(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func ToCommentResponse(comment *models.Comment) CommentResponse {
	if comment == nil {
		return CommentResponse{}
	}
	return CommentResponse{
		ID:        comment.ID,
		Name:      comment.Name,
		Email:     comment.Email,
		Subject:   comment.Subject,
		Comment:   comment.Comment,
		CreatedAt: comment.CreatedAt,
	}
}
