package comments

import (
	"context"
	"testing"
	"time"

	"github.com/akeren/landing-intake/internal/log"
	"github.com/akeren/landing-intake/internal/models"
	"github.com/akeren/landing-intake/pkg/constants"
	apperrors "github.com/akeren/landing-intake/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCommentService_CreateComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockCommentRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewCommentService(logger, mockRepo)

	t.Run("successful creation normalizes all fields", func(t *testing.T) {
		req := &CreateCommentRequest{
			Name:    "  Jane Doe ",
			Email:   " X@Y.com ",
			Subject: "",
			Comment: "  Great product!  ",
		}

		mockRepo.EXPECT().
			CreateComment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, comment *models.Comment) (*models.Comment, error) {
				assert.Equal(t, "x@y.com", comment.Email)
				assert.Equal(t, "Great product!", comment.Comment)
				assert.NotNil(t, comment.Name)
				assert.Equal(t, "Jane Doe", *comment.Name)
				assert.Nil(t, comment.Subject)

				_, parseErr := time.Parse(constants.RFC3339DateTimeFormat, comment.CreatedAt)
				assert.NoError(t, parseErr)

				comment.ID = 1
				return comment, nil
			})

		result, err := service.CreateComment(context.Background(), req)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, uint(1), result.ID)
		assert.Nil(t, result.Subject)
	})

	t.Run("missing email", func(t *testing.T) {
		result, err := service.CreateComment(context.Background(), &CreateCommentRequest{Comment: "hello"})

		assert.Nil(t, result)
		assert.Equal(t, apperrors.CodeMissingEmail, apperrors.ErrorCode(err))
		assert.Equal(t, apperrors.StatusBadRequest, apperrors.HTTPStatusCode(err))
	})

	t.Run("missing comment", func(t *testing.T) {
		result, err := service.CreateComment(context.Background(), &CreateCommentRequest{Email: "a@b.com"})

		assert.Nil(t, result)
		assert.Equal(t, apperrors.CodeMissingComment, apperrors.ErrorCode(err))
	})

	t.Run("malformed email", func(t *testing.T) {
		result, err := service.CreateComment(context.Background(), &CreateCommentRequest{
			Email:   "not-an-email",
			Comment: "hello",
		})

		assert.Nil(t, result)
		assert.Equal(t, apperrors.CodeInvalidEmail, apperrors.ErrorCode(err))
	})

	t.Run("whitespace-only comment", func(t *testing.T) {
		result, err := service.CreateComment(context.Background(), &CreateCommentRequest{
			Email:   "a@b.com",
			Comment: "   ",
		})

		assert.Nil(t, result)
		assert.Equal(t, apperrors.CodeEmptyComment, apperrors.ErrorCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			CreateComment(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewDatabaseError("database error", nil))

		result, err := service.CreateComment(context.Background(), &CreateCommentRequest{
			Email:   "a@b.com",
			Comment: "hello",
		})

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, apperrors.StatusInternalServerError, apperrors.HTTPStatusCode(err))
	})
}

func TestCommentService_ListComments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockCommentRepository(ctrl)
	service := NewCommentService(log.NewLoggerWithJSONOutput(), mockRepo)

	t.Run("defaults applied when no paging supplied", func(t *testing.T) {
		mockRepo.EXPECT().
			ListComments(gomock.Any(), ListFilter{Limit: constants.DefaultCommentPageSize, Offset: 0}).
			Return([]*models.Comment{}, nil)

		_, err := service.ListComments(context.Background(), 0, 0, "")
		assert.NoError(t, err)
	})

	t.Run("oversized limit is clamped", func(t *testing.T) {
		mockRepo.EXPECT().
			ListComments(gomock.Any(), ListFilter{Limit: constants.MaxCommentPageSize, Offset: 0}).
			Return([]*models.Comment{}, nil)

		_, err := service.ListComments(context.Background(), 500, 0, "")
		assert.NoError(t, err)
	})

	t.Run("negative offset is zeroed", func(t *testing.T) {
		mockRepo.EXPECT().
			ListComments(gomock.Any(), ListFilter{Limit: 20, Offset: 0}).
			Return([]*models.Comment{}, nil)

		_, err := service.ListComments(context.Background(), 20, -5, "")
		assert.NoError(t, err)
	})

	t.Run("search term is passed through", func(t *testing.T) {
		subject := "refund request"
		mockRepo.EXPECT().
			ListComments(gomock.Any(), ListFilter{Limit: constants.DefaultCommentPageSize, Offset: 0, Search: "refund"}).
			Return([]*models.Comment{
				{ID: 3, Email: "a@b.com", Subject: &subject, Comment: "please advise"},
			}, nil)

		results, err := service.ListComments(context.Background(), 0, 0, "refund")

		assert.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Equal(t, uint(3), results[0].ID)
	})
}
