package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/buddylink/buddylink-api/internal/model"
	"github.com/buddylink/buddylink-api/internal/payload"
	"github.com/buddylink/buddylink-api/internal/repository"
	"github.com/buddylink/buddylink-api/internal/session"
	"github.com/buddylink/buddylink-api/internal/usecase"
)

const testCookieName = "buddylink_session"

type fakeUserRepo struct {
	mu        sync.Mutex
	users     map[string]*model.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, exists := f.users[user.Email]; exists {
		return nil, repository.ErrDuplicateEmail
	}

	user.ID = bson.NewObjectID()
	f.users[user.Email] = user

	return user, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	return user, nil
}

type fakeSeniorRepo struct {
	mu      sync.Mutex
	seniors map[string]*model.Senior
}

func newFakeSeniorRepo() *fakeSeniorRepo {
	return &fakeSeniorRepo{seniors: make(map[string]*model.Senior)}
}

func (f *fakeSeniorRepo) CreateSenior(_ context.Context, senior *model.Senior) (*model.Senior, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	senior.ID = bson.NewObjectID()
	f.seniors[senior.ID.Hex()] = senior

	return senior, nil
}

func (f *fakeSeniorRepo) DeleteSenior(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.seniors, id)

	return nil
}

type fakeVolunteerRepo struct {
	mu         sync.Mutex
	volunteers map[string]*model.Volunteer
}

func newFakeVolunteerRepo() *fakeVolunteerRepo {
	return &fakeVolunteerRepo{volunteers: make(map[string]*model.Volunteer)}
}

func (f *fakeVolunteerRepo) CreateVolunteer(
	_ context.Context,
	volunteer *model.Volunteer,
) (*model.Volunteer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	volunteer.ID = bson.NewObjectID()
	f.volunteers[volunteer.ID.Hex()] = volunteer

	return volunteer, nil
}

// testServer wires real usecases and a memory session store behind the
// router, with fake repositories underneath.
type testServer struct {
	router        http.Handler
	userRepo      *fakeUserRepo
	seniorRepo    *fakeSeniorRepo
	volunteerRepo *fakeVolunteerRepo
	sessions      session.Store
}

func newTestServer() *testServer {
	logger := zerolog.Nop()

	s := &testServer{
		userRepo:      newFakeUserRepo(),
		seniorRepo:    newFakeSeniorRepo(),
		volunteerRepo: newFakeVolunteerRepo(),
		sessions:      session.NewMemoryStore(time.Hour),
	}

	registrationUsecase := usecase.NewRegistrationUsecase(
		s.userRepo, s.seniorRepo, s.volunteerRepo, nil, nil, &logger,
	)
	authUsecase := usecase.NewAuthUsecase(s.userRepo, nil)

	validator, err := payload.NewValidator()
	if err != nil {
		panic(err)
	}

	authHandler := NewAuthHandler(authUsecase, s.sessions, validator, testCookieName, &logger)
	registrationHandler := NewRegistrationHandler(registrationUsecase, &logger)
	healthHandler := NewHealthHandler(nil, nil, &logger)

	s.router = NewRouter(authHandler, registrationHandler, healthHandler, &logger)

	return s
}

// envelope mirrors the common response body for assertions.
type envelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
	ID      string         `json:"id"`
	OK      bool           `json:"ok"`
}
