package waitlist

import (
	"time"

	"github.com/akeren/landing-intake/config/router"
	"github.com/akeren/landing-intake/internal/log"
	apperrors "github.com/akeren/landing-intake/pkg/errors"
	"github.com/akeren/landing-intake/pkg/ratelimit"
	"gorm.io/gorm"
)

func NewWaitlistController(
	db *gorm.DB,
	logger *log.Logger,
	cache Cache,
) *router.RESTController {

	return router.NewVersionedRESTController(
		"WaitlistController",
		"v1",
		"/waitlist",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewWaitlistRepository(db)
			service := NewWaitlistService(logger, repository, cache)

			signupLimiter := createSignupRateLimiter(rs)

			rs.AddPostHandler(c, signupLimiter, "", createSignupHandler(service))
			rs.AddGetHandler(c, nil, "", getSignupsHandler(service))
		},
	)
}

func createSignupRateLimiter(routerService *router.RouterService) ratelimit.RateLimiter {
	// The signup form is public and abuse-prone; keep it tighter than the
	// service-wide default.
	const signupRequestsPerMinute = 30

	return routerService.EndpointRateLimiter(signupRequestsPerMinute, time.Minute)
}

func createSignupHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req CreateSignupRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		response, err := service.CreateSignup(ctx.Request.Context(), &req)
		if err != nil {
			return router.ErrorResultWithCode(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				apperrors.ErrorCode(err),
				nil,
			)
		}

		return router.CreatedResult(response, "Waitlist signup")
	}
}

// getSignupsHandler serves both read paths: ?count=true returns the signup
// counter only, anything else returns the full listing oldest-first.
func getSignupsHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		if ctx.Query("count") == "true" {
			count, err := service.CountSignups(ctx.Request.Context())
			if err != nil {
				return router.ErrorResultWithCode(
					apperrors.HTTPStatusCode(err),
					apperrors.GetHumanReadableMessage(err),
					apperrors.ErrorCode(err),
					nil,
				)
			}

			return router.OKResult(CountResponse{Count: count}, "Waitlist count retrieved successfully")
		}

		response, err := service.GetAllSignups(ctx.Request.Context())
		if err != nil {
			return router.ErrorResultWithCode(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				apperrors.ErrorCode(err),
				nil,
			)
		}

		return router.OKResult(response, "Waitlist signups retrieved successfully")
	}
}
