package waitlist

import (
	"context"
	"strconv"
	"time"

	"github.com/akeren/landing-intake/internal/log"
	"github.com/akeren/landing-intake/pkg/circuitbreaker"
	apperrors "github.com/akeren/landing-intake/pkg/errors"
)

// Cache is the narrow cache surface the waitlist service needs. The signup
// counter is rendered on every page view, so a short-TTL cached count keeps
// that path off the database when Redis is configured.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

const (
	countCacheKey = "waitlist:count"
	countCacheTTL = 15 * time.Second
)

type WaitlistService interface {
	// CreateSignup validates and sanitizes the request, rejects an already
	// registered email, and persists the signup. The stored record, including
	// its assigned id and created_at, is returned on success.
	CreateSignup(ctx context.Context, req *CreateSignupRequest) (*SignupResponse, error)

	// GetAllSignups returns every signup, oldest first.
	GetAllSignups(ctx context.Context) ([]SignupResponse, error)

	// CountSignups returns the total signup count, served from the cache when
	// one is configured and healthy.
	CountSignups(ctx context.Context) (int64, error)
}

type waitlistService struct {
	logger     *log.Logger
	repository WaitlistRepository
	cache      Cache
	breaker    circuitbreaker.CircuitBreaker
}

func NewWaitlistService(logger *log.Logger, repository WaitlistRepository, cache Cache) WaitlistService {
	return &waitlistService{
		logger:     logger,
		repository: repository,
		cache:      cache,
		breaker:    circuitbreaker.NewCircuitBreaker(nil),
	}
}

func (s *waitlistService) CreateSignup(ctx context.Context, req *CreateSignupRequest) (*SignupResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("CreateSignup received empty request")
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	if validationErr := ValidateCreateSignup(req); validationErr != nil {
		return nil, validationErr
	}

	signupModel := ToSignupModel(req)

	// Pre-check keeps the common duplicate path cheap, but it is inherently
	// racy under concurrent submission: the unique index is the real guard,
	// and the repository reports its violation as the same conflict.
	existing, err := s.repository.FindSignupByEmail(ctx, signupModel.Email)
	if err != nil {
		logger.Error("Failed to check for existing signup", "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, newDuplicateEmailError(nil)
	}

	signup, err := s.repository.CreateSignup(ctx, signupModel)
	if err != nil {
		logger.Error("Failed to create waitlist signup", "error", err)
		return nil, err
	}

	s.invalidateCountCache(ctx, logger)

	response := ToSignupResponse(signup)
	return &response, nil
}

func (s *waitlistService) GetAllSignups(ctx context.Context) ([]SignupResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	signups, err := s.repository.GetAllSignups(ctx)
	if err != nil {
		logger.Error("Failed to get waitlist signups", "error", err)
		return nil, err
	}

	responses := make([]SignupResponse, 0, len(signups))
	for _, signup := range signups {
		responses = append(responses, ToSignupResponse(signup))
	}

	return responses, nil
}

func (s *waitlistService) CountSignups(ctx context.Context) (int64, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if cached, ok := s.cachedCount(ctx); ok {
		return cached, nil
	}

	count, err := s.repository.CountSignups(ctx)
	if err != nil {
		logger.Error("Failed to count waitlist signups", "error", err)
		return 0, err
	}

	s.storeCountInCache(ctx, logger, count)

	return count, nil
}

// cachedCount reads the counter through the circuit breaker so a flapping
// cache cannot slow the hot path; any failure falls through to the store.
func (s *waitlistService) cachedCount(ctx context.Context) (int64, bool) {
	if s.cache == nil {
		return 0, false
	}

	var raw string
	err := s.breaker.Call(func() error {
		var getErr error
		raw, getErr = s.cache.Get(ctx, countCacheKey)
		return getErr
	})
	if err != nil || raw == "" {
		return 0, false
	}

	count, parseErr := strconv.ParseInt(raw, 10, 64)
	if parseErr != nil {
		return 0, false
	}

	return count, true
}

func (s *waitlistService) storeCountInCache(ctx context.Context, logger *log.Logger, count int64) {
	if s.cache == nil {
		return
	}

	err := s.breaker.Call(func() error {
		return s.cache.Set(ctx, countCacheKey, strconv.FormatInt(count, 10), countCacheTTL)
	})
	if err != nil {
		logger.Warn("Failed to cache waitlist count", "error", err)
	}
}

func (s *waitlistService) invalidateCountCache(ctx context.Context, logger *log.Logger) {
	if s.cache == nil {
		return
	}

	err := s.breaker.Call(func() error {
		return s.cache.Delete(ctx, countCacheKey)
	})
	if err != nil {
		logger.Warn("Failed to invalidate waitlist count cache", "error", err)
	}
}
