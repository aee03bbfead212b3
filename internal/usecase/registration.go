package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/buddylink/buddylink-api/internal/metrics"
	"github.com/buddylink/buddylink-api/internal/model"
	"github.com/buddylink/buddylink-api/internal/repository"
	"github.com/buddylink/buddylink-api/internal/security"
	"github.com/buddylink/buddylink-api/internal/validate"
)

// ErrEmailAlreadyRegistered is returned when the normalized email of a
// registration collides with an existing credential record.
var ErrEmailAlreadyRegistered = errors.New("email already registered")

// RegistrationUsecase defines the business logic for registering profiles.
type RegistrationUsecase interface {
	// RegisterSenior validates the payload, creates the senior profile and
	// then the linked credential record, undoing the profile if the
	// credential insert fails. Returns the new senior profile id.
	RegisterSenior(ctx context.Context, params RegisterSeniorParams) (string, error)

	// RegisterVolunteer runs the full field-rule set before any write and
	// creates the volunteer profile. Returns the new profile id.
	RegisterVolunteer(ctx context.Context, params RegisterVolunteerParams) (string, error)
}

// RegisterSeniorParams defines the parameters for senior registration.
// Age arrives raw because the wire format carries it as a string.
type RegisterSeniorParams struct {
	Firstname   string
	Lastname    string
	Age         string
	Phone       string
	Email       string
	City        string
	Address     string
	ContactPref string
	Language    string
	Notes       string
	Password    string
	RePassword  string
}

// RegisterVolunteerParams defines the parameters for volunteer registration.
// Availability must already be normalized to a flat list of slot labels.
type RegisterVolunteerParams struct {
	Firstname       string
	Lastname        string
	Phone           string
	Email           string
	City            string
	BackgroundCheck string
	Password        string
	Availability    []string
}

// WelcomeNotifier sends a post-registration notification. Failures are the
// notifier's problem; registration has already succeeded.
type WelcomeNotifier interface {
	SendWelcome(email string) error
}

type registrationUsecase struct {
	userRepo      repository.UserRepository
	seniorRepo    repository.SeniorRepository
	volunteerRepo repository.VolunteerRepository
	notifier      WelcomeNotifier
	metrics       *metrics.Metrics
	logger        *zerolog.Logger
}

// NewRegistrationUsecase creates a new instance of RegistrationUsecase.
// notifier may be nil when emails are disabled.
func NewRegistrationUsecase(
	userRepo repository.UserRepository,
	seniorRepo repository.SeniorRepository,
	volunteerRepo repository.VolunteerRepository,
	notifier WelcomeNotifier,
	m *metrics.Metrics,
	logger *zerolog.Logger,
) RegistrationUsecase {
	return &registrationUsecase{
		userRepo:      userRepo,
		seniorRepo:    seniorRepo,
		volunteerRepo: volunteerRepo,
		notifier:      notifier,
		metrics:       m,
		logger:        logger,
	}
}

// RegisterSenior is a two-step write without a cross-document transaction:
// profile first, credential second. The ordering means a failure only ever
// requires undoing the profile, never a credential.
func (u *registrationUsecase) RegisterSenior(
	ctx context.Context,
	params RegisterSeniorParams,
) (string, error) {
	if err := validate.PasswordsMatch(params.Password, params.RePassword); err != nil {
		return "", err
	}

	age, err := validate.Age(params.Age)
	if err != nil {
		return "", err
	}

	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return "", err
	}

	senior, err := u.seniorRepo.CreateSenior(ctx, &model.Senior{
		Firstname:   strings.TrimSpace(params.Firstname),
		Lastname:    strings.TrimSpace(params.Lastname),
		Age:         age,
		Phone:       strings.TrimSpace(params.Phone),
		City:        strings.TrimSpace(params.City),
		Address:     strings.TrimSpace(params.Address),
		ContactPref: strings.TrimSpace(params.ContactPref),
		Language:    strings.TrimSpace(params.Language),
		Notes:       strings.TrimSpace(params.Notes),
	})
	if err != nil {
		return "", fmt.Errorf("create senior: %w", err)
	}

	email := validate.NormalizeEmail(params.Email)
	_, err = u.userRepo.CreateUser(ctx, &model.User{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         model.RoleSenior,
		SeniorID:     senior.ID,
	})
	if err != nil {
		u.compensateSenior(ctx, senior.ID.Hex())

		if errors.Is(err, repository.ErrDuplicateEmail) {
			return "", ErrEmailAlreadyRegistered
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	u.metrics.IncSeniorsRegistered()
	u.sendWelcome(email)

	return senior.ID.Hex(), nil
}

// compensateSenior deletes the profile created by the first step of a failed
// registration. Its own failure is logged and swallowed: the request has
// already failed for another reason, and an orphaned profile with no
// credential is harmless.
func (u *registrationUsecase) compensateSenior(ctx context.Context, seniorID string) {
	if err := u.seniorRepo.DeleteSenior(ctx, seniorID); err != nil {
		u.logger.Error().
			Err(err).
			Str("senior_id", seniorID).
			Msg("failed to delete senior profile after credential creation failure")
	}
}

// RegisterVolunteer validates everything before the single profile write.
// Volunteer registration does not create a credential record: the legacy flow
// collects a password but never opens an account, so volunteers cannot log in.
func (u *registrationUsecase) RegisterVolunteer(
	ctx context.Context,
	params RegisterVolunteerParams,
) (string, error) {
	firstname := strings.TrimSpace(params.Firstname)
	lastname := strings.TrimSpace(params.Lastname)
	phone := strings.TrimSpace(params.Phone)
	backgroundCheck := strings.TrimSpace(params.BackgroundCheck)

	if err := validate.FirstName(firstname); err != nil {
		return "", err
	}
	if err := validate.LastName(lastname); err != nil {
		return "", err
	}
	if err := validate.Phone(phone); err != nil {
		return "", err
	}
	if err := validate.BackgroundCheck(backgroundCheck); err != nil {
		return "", err
	}
	if err := validate.Availability(params.Availability); err != nil {
		return "", err
	}

	volunteer, err := u.volunteerRepo.CreateVolunteer(ctx, &model.Volunteer{
		Firstname:       firstname,
		Lastname:        lastname,
		Phone:           phone,
		City:            strings.TrimSpace(params.City),
		BackgroundCheck: backgroundCheck,
		Availability:    params.Availability,
	})
	if err != nil {
		return "", fmt.Errorf("create volunteer: %w", err)
	}

	u.metrics.IncVolunteersRegistered()

	return volunteer.ID.Hex(), nil
}

func (u *registrationUsecase) sendWelcome(email string) {
	if u.notifier == nil {
		return
	}

	if err := u.notifier.SendWelcome(email); err != nil {
		u.logger.Error().Err(err).Str("email", email).Msg("failed to send welcome email")
	}
}
