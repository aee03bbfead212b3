package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/buddylink/buddylink-api/internal/metrics"
	"github.com/buddylink/buddylink-api/internal/model"
	"github.com/buddylink/buddylink-api/internal/repository"
	"github.com/buddylink/buddylink-api/internal/security"
	"github.com/buddylink/buddylink-api/internal/validate"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password.
// Callers must not be able to tell the two apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthUsecase defines the interface for authentication-related use cases.
type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (*model.User, error)
}

type authUsecase struct {
	userRepo repository.UserRepository
	metrics  *metrics.Metrics
}

// NewAuthUsecase creates a new instance of AuthUsecase.
func NewAuthUsecase(userRepo repository.UserRepository, m *metrics.Metrics) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		metrics:  m,
	}
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, validate.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if ok, err := security.VerifyPassword(password, user.PasswordHash); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrInvalidCredentials
	}

	u.metrics.IncLogins()

	return user, nil
}
