package usecase

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/buddylink/buddylink-api/internal/model"
	"github.com/buddylink/buddylink-api/internal/repository"
)

// fakeUserRepo mimics the credential store, including the storage-level
// uniqueness constraint on email.
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

func (f *fakeUserRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users)
}

type fakeSeniorRepo struct {
	mu        sync.Mutex
	seniors   map[string]*model.Senior
	createErr error
	deleteErr error
}

func newFakeSeniorRepo() *fakeSeniorRepo {
	return &fakeSeniorRepo{seniors: make(map[string]*model.Senior)}
}

func (f *fakeSeniorRepo) CreateSenior(_ context.Context, senior *model.Senior) (*model.Senior, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return nil, f.createErr
	}

	senior.ID = bson.NewObjectID()
	f.seniors[senior.ID.Hex()] = senior

	return senior, nil
}

func (f *fakeSeniorRepo) DeleteSenior(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.seniors, id)

	return nil
}

func (f *fakeSeniorRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.seniors)
}

type fakeVolunteerRepo struct {
	mu         sync.Mutex
	volunteers map[string]*model.Volunteer
	createErr  error
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

	if f.createErr != nil {
		return nil, f.createErr
	}

	volunteer.ID = bson.NewObjectID()
	f.volunteers[volunteer.ID.Hex()] = volunteer

	return volunteer, nil
}

func (f *fakeVolunteerRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.volunteers)
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []string
	fail error
}

func (f *fakeNotifier) SendWelcome(email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fail != nil {
		return f.fail
	}
	f.sent = append(f.sent, email)

	return nil
}
