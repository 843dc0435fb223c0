package domain

import (
	"github.com/akeren/landing-intake/config"
	"github.com/akeren/landing-intake/domain/comments"
	"github.com/akeren/landing-intake/domain/monitoring"
	"github.com/akeren/landing-intake/domain/waitlist"
)

func SetupCoreDomain(appConfig *config.ApplicationConfig) {
	appConfig.RouterService.MountController(monitoring.NewMonitoringController(appConfig.DB, appConfig.Logger, appConfig.Cache))
	appConfig.RouterService.MountController(waitlist.NewWaitlistController(appConfig.DB, appConfig.Logger, signupCountCache(appConfig)))
	appConfig.RouterService.MountController(comments.NewCommentController(appConfig.DB, appConfig.Logger))
}

// signupCountCache narrows the application cache to the surface the waitlist
// domain uses; a nil cache disables count caching.
func signupCountCache(appConfig *config.ApplicationConfig) waitlist.Cache {
	if appConfig.Cache == nil {
		return nil
	}
	return appConfig.Cache
}
