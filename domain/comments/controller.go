package comments

import (
	"strconv"
	"time"

	"github.com/akeren/landing-intake/config/router"
	"github.com/akeren/landing-intake/internal/log"
	apperrors "github.com/akeren/landing-intake/pkg/errors"
	"github.com/akeren/landing-intake/pkg/ratelimit"
	"gorm.io/gorm"
)

func NewCommentController(
	db *gorm.DB,
	logger *log.Logger,
) *router.RESTController {

	return router.NewVersionedRESTController(
		"CommentController",
		"v1",
		"/comments",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewCommentRepository(db)
			service := NewCommentService(logger, repository)

			submissionLimiter := createSubmissionRateLimiter(rs)

			rs.AddPostHandler(c, submissionLimiter, "", createCommentHandler(service))
			rs.AddGetHandler(c, nil, "", listCommentsHandler(service))
		},
	)
}

func createSubmissionRateLimiter(routerService *router.RouterService) ratelimit.RateLimiter {
	// Same posture as the signup form: public, abuse-prone.
	const submissionRequestsPerMinute = 30

	return routerService.EndpointRateLimiter(submissionRequestsPerMinute, time.Minute)
}

func createCommentHandler(service CommentService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req CreateCommentRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		response, err := service.CreateComment(ctx.Request.Context(), &req)
		if err != nil {
			return router.ErrorResultWithCode(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				apperrors.ErrorCode(err),
				nil,
			)
		}

		return router.CreatedResult(response, "Comment")
	}
}

func listCommentsHandler(service CommentService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		limit := parseIntQuery(ctx, "limit")
		offset := parseIntQuery(ctx, "offset")
		search := ctx.Query("search")

		response, err := service.ListComments(ctx.Request.Context(), limit, offset, search)
		if err != nil {
			return router.ErrorResultWithCode(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				apperrors.ErrorCode(err),
				nil,
			)
		}

		return router.OKResult(response, "Comments retrieved successfully")
	}
}

// parseIntQuery returns 0 for absent or unparseable values; the service
// substitutes its own defaults.
func parseIntQuery(ctx *router.RequestContext, name string) int {
	raw := ctx.Query(name)
	if raw == "" {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}

	return value
}
