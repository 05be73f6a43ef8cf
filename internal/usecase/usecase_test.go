package usecase_test

import (
	"context"
	"testing"

	"go-jobseeker-backend/internal/domain"
	"go-jobseeker-backend/internal/usecase"
	"go-jobseeker-backend/pkg/apperror"
	"go-jobseeker-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockProfileRepo) Upsert(ctx context.Context, profile *domain.UserProfile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func newValidate() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func authedCtx(userID string) context.Context {
	return context.WithValue(context.Background(), domain.KeyUserID, userID)
}

func TestProfileIDOR(t *testing.T) {
	mockRepo := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(mockRepo, newValidate())

	t.Run("Should fail when context UserID does not match argument UserID", func(t *testing.T) {
		_, err := uc.GetProfile(authedCtx("user1"), "user2")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only view your own profile")
	})

	t.Run("Should fail safely when context UserID is missing", func(t *testing.T) {
		_, err := uc.GetProfile(context.Background(), "user1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not authenticated")
	})

	t.Run("Completion check enforces ownership too", func(t *testing.T) {
		_, err := uc.GetCompletion(authedCtx("user1"), "user2")
		assert.Error(t, err)
	})
}

func TestSaveProfile(t *testing.T) {
	t.Run("Should force UserID from context", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, newValidate())

		profile := &domain.UserProfile{
			UserID:          "hacker_try",
			PrimaryJobTitle: "Engineer",
		}

		mockRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.UserProfile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.UserProfile)
			assert.Equal(t, "user1", p.UserID)
		})

		err := uc.SaveProfile(authedCtx("user1"), profile)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should reject unknown enum values", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, newValidate())

		profile := &domain.UserProfile{SeniorityLevel: "wizard"}
		err := uc.SaveProfile(authedCtx("user1"), profile)
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Upsert")
	})

	t.Run("Empty profile is valid; every field is optional", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, newValidate())

		mockRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
		err := uc.SaveProfile(authedCtx("user1"), &domain.UserProfile{})
		assert.NoError(t, err)
	})
}

func TestGetCompletion(t *testing.T) {
	t.Run("Absent profile yields zero score and setup routing", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, newValidate())

		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(nil, nil)

		report, err := uc.GetCompletion(authedCtx("user1"), "user1")
		assert.NoError(t, err)
		assert.False(t, report.ProfileExists)
		assert.Equal(t, 0, report.Score)
		assert.Equal(t, "profile_setup", report.NextStep)
		assert.Equal(t, []string{domain.SectionsAll}, report.MissingSections)
	})

	t.Run("Existing profile is scored", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, newValidate())

		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(&domain.UserProfile{
			UserID:          "user1",
			PrimaryJobTitle: "Engineer",
		}, nil)

		report, err := uc.GetCompletion(authedCtx("user1"), "user1")
		assert.NoError(t, err)
		assert.True(t, report.ProfileExists)
		assert.Equal(t, 10, report.Score)
		assert.Equal(t, "dashboard", report.NextStep)
	})
}

func TestEnsureUserExists(t *testing.T) {
	t.Run("Creates unknown user", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo)

		mockRepo.On("GetByID", mock.Anything, "id1").Return(nil, nil)
		mockRepo.On("GetByEmail", mock.Anything, "a@b.com").Return(nil, nil)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

		err := uc.EnsureUserExists(context.Background(), &domain.User{ID: "id1", Email: "a@b.com"})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("No-op when user already in sync", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo)

		mockRepo.On("GetByID", mock.Anything, "id1").Return(&domain.User{ID: "id1", Email: "a@b.com"}, nil)

		err := uc.EnsureUserExists(context.Background(), &domain.User{ID: "id1", Email: "a@b.com"})
		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "Create")
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Conflict when email belongs to a different auth ID", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo)

		mockRepo.On("GetByID", mock.Anything, "new_id").Return(nil, nil)
		mockRepo.On("GetByEmail", mock.Anything, "a@b.com").Return(&domain.User{ID: "old_id", Email: "a@b.com"}, nil)

		err := uc.EnsureUserExists(context.Background(), &domain.User{ID: "new_id", Email: "a@b.com"})
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 409, appErr.Code)
	})
}

func TestCheckEmailExists(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(mockRepo)

	mockRepo.On("GetByEmail", mock.Anything, "known@b.com").Return(&domain.User{ID: "id1"}, nil)
	mockRepo.On("GetByEmail", mock.Anything, "unknown@b.com").Return(nil, nil)

	exists, err := uc.CheckEmailExists(context.Background(), "known@b.com")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = uc.CheckEmailExists(context.Background(), "unknown@b.com")
	assert.NoError(t, err)
	assert.False(t, exists)
}
