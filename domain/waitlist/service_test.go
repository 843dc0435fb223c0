package waitlist

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

func TestWaitlistService_CreateSignup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockWaitlistRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewWaitlistService(logger, mockRepo, nil)

	t.Run("successful signup normalizes the email", func(t *testing.T) {
		req := &CreateSignupRequest{
			Email: " Foo@Bar.COM ",
			Name:  "  Jane  ",
		}

		mockRepo.EXPECT().
			FindSignupByEmail(gomock.Any(), "foo@bar.com").
			Return(nil, nil)

		mockRepo.EXPECT().
			CreateSignup(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, signup *models.WaitlistSignup) (*models.WaitlistSignup, error) {
				assert.Equal(t, "foo@bar.com", signup.Email)
				assert.NotNil(t, signup.Name)
				assert.Equal(t, "Jane", *signup.Name)

				_, parseErr := time.Parse(constants.RFC3339DateTimeFormat, signup.CreatedAt)
				assert.NoError(t, parseErr)

				signup.ID = 1
				return signup, nil
			})

		result, err := service.CreateSignup(context.Background(), req)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, uint(1), result.ID)
		assert.Equal(t, "foo@bar.com", result.Email)
	})

	t.Run("blank name persists as null", func(t *testing.T) {
		req := &CreateSignupRequest{Email: "a@b.com", Name: "   "}

		mockRepo.EXPECT().
			FindSignupByEmail(gomock.Any(), "a@b.com").
			Return(nil, nil)

		mockRepo.EXPECT().
			CreateSignup(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, signup *models.WaitlistSignup) (*models.WaitlistSignup, error) {
				assert.Nil(t, signup.Name)
				signup.ID = 2
				return signup, nil
			})

		result, err := service.CreateSignup(context.Background(), req)

		assert.NoError(t, err)
		assert.Nil(t, result.Name)
	})

	t.Run("missing email", func(t *testing.T) {
		result, err := service.CreateSignup(context.Background(), &CreateSignupRequest{Email: "  "})

		assert.Nil(t, result)
		assert.Equal(t, apperrors.CodeMissingEmail, apperrors.ErrorCode(err))
		assert.Equal(t, apperrors.StatusBadRequest, apperrors.HTTPStatusCode(err))
	})

	t.Run("malformed email", func(t *testing.T) {
		result, err := service.CreateSignup(context.Background(), &CreateSignupRequest{Email: "not-an-email"})

		assert.Nil(t, result)
		assert.Equal(t, apperrors.CodeInvalidEmailFormat, apperrors.ErrorCode(err))
		assert.Equal(t, apperrors.StatusBadRequest, apperrors.HTTPStatusCode(err))
	})

	t.Run("duplicate email detected by pre-check", func(t *testing.T) {
		existing := &models.WaitlistSignup{ID: 1, Email: "taken@example.com"}

		mockRepo.EXPECT().
			FindSignupByEmail(gomock.Any(), "taken@example.com").
			Return(existing, nil)

		result, err := service.CreateSignup(context.Background(), &CreateSignupRequest{Email: "Taken@Example.com"})

		assert.Nil(t, result)
		assert.Equal(t, apperrors.CodeDuplicateEmail, apperrors.ErrorCode(err))
		assert.Equal(t, apperrors.StatusConflict, apperrors.HTTPStatusCode(err))
	})

	t.Run("duplicate email detected by unique constraint", func(t *testing.T) {
		// The pre-check can miss a concurrent insert; the storage-level
		// violation must surface as the same conflict.
		mockRepo.EXPECT().
			FindSignupByEmail(gomock.Any(), "raced@example.com").
			Return(nil, nil)

		mockRepo.EXPECT().
			CreateSignup(gomock.Any(), gomock.Any()).
			Return(nil, newDuplicateEmailError(nil))

		result, err := service.CreateSignup(context.Background(), &CreateSignupRequest{Email: "raced@example.com"})

		assert.Nil(t, result)
		assert.Equal(t, apperrors.CodeDuplicateEmail, apperrors.ErrorCode(err))
		assert.Equal(t, apperrors.StatusConflict, apperrors.HTTPStatusCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			FindSignupByEmail(gomock.Any(), "x@y.com").
			Return(nil, nil)

		mockRepo.EXPECT().
			CreateSignup(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewDatabaseError("database error", nil))

		result, err := service.CreateSignup(context.Background(), &CreateSignupRequest{Email: "x@y.com"})

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, apperrors.StatusInternalServerError, apperrors.HTTPStatusCode(err))
	})
}

func TestWaitlistService_GetAllSignups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockWaitlistRepository(ctrl)
	service := NewWaitlistService(log.NewLoggerWithJSONOutput(), mockRepo, nil)

	mockRepo.EXPECT().
		GetAllSignups(gomock.Any()).
		Return([]*models.WaitlistSignup{
			{ID: 1, Email: "first@example.com", CreatedAt: "2025-01-01T00:00:00Z"},
			{ID: 2, Email: "second@example.com", CreatedAt: "2025-01-02T00:00:00Z"},
		}, nil)

	result, err := service.GetAllSignups(context.Background())

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "first@example.com", result[0].Email)
}

type fakeCache struct {
	values map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string]string)}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	f.values[key] = value
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func TestWaitlistService_CountSignups(t *testing.T) {
	t.Run("without cache hits the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := NewMockWaitlistRepository(ctrl)
		service := NewWaitlistService(log.NewLoggerWithJSONOutput(), mockRepo, nil)

		mockRepo.EXPECT().CountSignups(gomock.Any()).Return(int64(7), nil)

		count, err := service.CountSignups(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(7), count)
	})

	t.Run("second read is served from cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := NewMockWaitlistRepository(ctrl)
		cache := newFakeCache()
		service := NewWaitlistService(log.NewLoggerWithJSONOutput(), mockRepo, cache)

		mockRepo.EXPECT().CountSignups(gomock.Any()).Return(int64(3), nil).Times(1)

		count, err := service.CountSignups(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)

		count, err = service.CountSignups(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("signup invalidates the cached count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := NewMockWaitlistRepository(ctrl)
		cache := newFakeCache()
		service := NewWaitlistService(log.NewLoggerWithJSONOutput(), mockRepo, cache)

		mockRepo.EXPECT().CountSignups(gomock.Any()).Return(int64(1), nil)

		_, err := service.CountSignups(context.Background())
		assert.NoError(t, err)
		assert.Contains(t, cache.values, countCacheKey)

		mockRepo.EXPECT().FindSignupByEmail(gomock.Any(), "new@example.com").Return(nil, nil)
		mockRepo.EXPECT().
			CreateSignup(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, signup *models.WaitlistSignup) (*models.WaitlistSignup, error) {
				signup.ID = 2
				return signup, nil
			})

		_, err = service.CreateSignup(context.Background(), &CreateSignupRequest{Email: "new@example.com"})
		assert.NoError(t, err)
		assert.NotContains(t, cache.values, countCacheKey)
	})
}
