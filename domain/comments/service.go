package comments

import (
	"context"

	"github.com/akeren/landing-intake/internal/log"
	"github.com/akeren/landing-intake/pkg/constants"
	apperrors "github.com/akeren/landing-intake/pkg/errors"
)

type CommentService interface {
	// CreateComment validates and sanitizes the request, then persists it.
	// The stored record, including its assigned id and created_at, is
	// returned on success.
	CreateComment(ctx context.Context, req *CreateCommentRequest) (*CommentResponse, error)

	// ListComments returns a page of comments newest-first. The limit is
	// clamped to at most MaxCommentPageSize and defaults to
	// DefaultCommentPageSize; a negative offset is treated as zero.
	ListComments(ctx context.Context, limit, offset int, search string) ([]CommentResponse, error)
}

type commentService struct {
	logger     *log.Logger
	repository CommentRepository
}

func NewCommentService(logger *log.Logger, repository CommentRepository) CommentService {
	return &commentService{logger: logger, repository: repository}
}

func (s *commentService) CreateComment(ctx context.Context, req *CreateCommentRequest) (*CommentResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("CreateComment received empty request")
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	if validationErr := ValidateCreateComment(req); validationErr != nil {
		return nil, validationErr
	}

	comment, err := s.repository.CreateComment(ctx, ToCommentModel(req))
	if err != nil {
		logger.Error("Failed to create comment", "error", err)
		return nil, err
	}

	response := ToCommentResponse(comment)
	return &response, nil
}

func (s *commentService) ListComments(ctx context.Context, limit, offset int, search string) ([]CommentResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	filter := ListFilter{
		Limit:  clampLimit(limit),
		Offset: max(offset, 0),
		Search: search,
	}

	results, err := s.repository.ListComments(ctx, filter)
	if err != nil {
		logger.Error("Failed to list comments", "error", err)
		return nil, err
	}

	responses := make([]CommentResponse, 0, len(results))
	for _, comment := range results {
		responses = append(responses, ToCommentResponse(comment))
	}

	return responses, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return constants.DefaultCommentPageSize
	}
	if limit > constants.MaxCommentPageSize {
		return constants.MaxCommentPageSize
	}
	return limit
}
