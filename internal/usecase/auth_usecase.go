package usecase

import (
	"context"
	"time"

	"go-jobseeker-backend/internal/domain"
	"go-jobseeker-backend/pkg/apperror"
)

type authUsecase struct {
	userRepo domain.UserRepository
}

func NewAuthUsecase(userRepo domain.UserRepository) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo}
}

// EnsureUserExists mirrors a Supabase auth user into the local users table.
// Idempotent: called after every successful sign-in.
func (u *authUsecase) EnsureUserExists(ctx context.Context, user *domain.User) error {
	existing, err := u.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		if user.Email != "" && existing.Email != user.Email {
			existing.Email = user.Email
			existing.UpdatedAt = time.Now()
			return u.userRepo.Update(ctx, existing)
		}
		return nil
	}

	// ID unknown; the email may still exist under an old Supabase UUID when
	// the account was re-registered. Re-linking is a backend concern we do
	// not handle here, so surface it as a conflict rather than failing on
	// the unique email constraint.
	byEmail, err := u.userRepo.GetByEmail(ctx, user.Email)
	if err != nil {
		return err
	}
	if byEmail != nil {
		return apperror.Conflict("An account with this email already exists")
	}

	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	return u.userRepo.Create(ctx, user)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func (u *authUsecase) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}
