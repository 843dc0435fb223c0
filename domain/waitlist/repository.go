package waitlist

import (
	"context"
	"errors"

	"github.com/akeren/landing-intake/internal/models"
	apperrors "github.com/akeren/landing-intake/pkg/errors"
	"gorm.io/gorm"
)

type WaitlistRepository interface {
	// CreateSignup persists a new signup. A unique-index violation on the
	// normalized email is reported as a typed conflict, not a storage fault.
	CreateSignup(ctx context.Context, signup *models.WaitlistSignup) (*models.WaitlistSignup, error)
	// FindSignupByEmail is a point lookup on the normalized email. It returns
	// (nil, nil) when no signup exists; the caller treats absence as ordinary.
	FindSignupByEmail(ctx context.Context, email string) (*models.WaitlistSignup, error)
	// GetAllSignups returns every signup ordered oldest-first.
	GetAllSignups(ctx context.Context) ([]*models.WaitlistSignup, error)
	// CountSignups returns the total number of signups.
	CountSignups(ctx context.Context) (int64, error)
}

type waitlistRepository struct {
	db *gorm.DB
}

func NewWaitlistRepository(db *gorm.DB) WaitlistRepository {
	return &waitlistRepository{db: db}
}

func (wr *waitlistRepository) CreateSignup(ctx context.Context, signup *models.WaitlistSignup) (*models.WaitlistSignup, error) {
	if err := wr.db.WithContext(ctx).Create(signup).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, newDuplicateEmailError(err)
		}
		return nil, apperrors.NewDatabaseError("unable to create waitlist signup", err)
	}

	return signup, nil
}

func (wr *waitlistRepository) FindSignupByEmail(ctx context.Context, email string) (*models.WaitlistSignup, error) {
	var signup models.WaitlistSignup

	if err := wr.db.WithContext(ctx).Where("email = ?", email).First(&signup).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewDatabaseError("failed to look up waitlist signup", err)
	}

	return &signup, nil
}

func (wr *waitlistRepository) GetAllSignups(ctx context.Context) ([]*models.WaitlistSignup, error) {
	var signups []*models.WaitlistSignup

	if err := wr.db.WithContext(ctx).Order("created_at asc").Find(&signups).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch waitlist signups", err)
	}

	return signups, nil
}

func (wr *waitlistRepository) CountSignups(ctx context.Context) (int64, error) {
	var count int64

	if err := wr.db.WithContext(ctx).Model(&models.WaitlistSignup{}).Count(&count).Error; err != nil {
		return 0, apperrors.NewDatabaseError("unable to count waitlist signups", err)
	}

	return count, nil
}

func newDuplicateEmailError(err error) *apperrors.AppError {
	return apperrors.NewConflictError("Email already registered for waitlist", err).
		WithCode(apperrors.CodeDuplicateEmail)
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || apperrors.IsDuplicateKeyError(err)
}
