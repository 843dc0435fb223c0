package comments

import (
	"context"
	"strings"

	"github.com/akeren/landing-intake/internal/models"
	apperrors "github.com/akeren/landing-intake/pkg/errors"
	"gorm.io/gorm"
)

// ListFilter holds a sanitized page request. Limit and Offset are assumed to
// be clamped by the service before they reach the repository.
type ListFilter struct {
	Limit  int
	Offset int
	Search string
}

type CommentRepository interface {
	// CreateComment persists a new comment. There is no uniqueness constraint
	// on comments; absent a storage fault this always succeeds.
	CreateComment(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	// ListComments returns a page of comments ordered newest-first. When a
	// search term is set, a record matches if any of name, email, subject or
	// comment contains the term, case-insensitively.
	ListComments(ctx context.Context, filter ListFilter) ([]*models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (cr *commentRepository) CreateComment(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	if err := cr.db.WithContext(ctx).Create(comment).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to create comment", err)
	}

	return comment, nil
}

func (cr *commentRepository) ListComments(ctx context.Context, filter ListFilter) ([]*models.Comment, error) {
	query := cr.db.WithContext(ctx).
		Order("created_at desc").
		Limit(filter.Limit).
		Offset(filter.Offset)

	if filter.Search != "" {
		// Lowering both sides keeps the match case-insensitive on every
		// backend; LOWER(NULL) is NULL so optional fields simply never match.
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(subject) LIKE ? OR LOWER(comment) LIKE ?",
			term, term, term, term,
		)
	}

	var results []*models.Comment
	if err := query.Find(&results).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch comments", err)
	}

	return results, nil
}
