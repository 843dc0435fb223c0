package comments

import (
	"github.com/akeren/landing-intake/config/router"
	"github.com/akeren/landing-intake/internal/log"
	"gorm.io/gorm"
)

type CommentServiceFactory interface {
	CreateService() CommentService
	CreateController() *router.RESTController
}

type DefaultCommentServiceFactory struct {
	db     *gorm.DB
	logger *log.Logger
}

func NewCommentServiceFactory(db *gorm.DB, logger *log.Logger) CommentServiceFactory {
	return &DefaultCommentServiceFactory{
		db:     db,
		logger: logger,
	}
}

func (f *DefaultCommentServiceFactory) CreateService() CommentService {
	repository := NewCommentRepository(f.db)
	return NewCommentService(f.logger, repository)
}

func (f *DefaultCommentServiceFactory) CreateController() *router.RESTController {
	return NewCommentController(f.db, f.logger)
}
