package usecase

import (
	"context"
	"strings"

	"go-jobseeker-backend/internal/domain"
	"go-jobseeker-backend/pkg/apperror"
	"go-jobseeker-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	repo     domain.ProfileRepository
	validate *validator.Validate
}

func NewProfileUsecase(repo domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *profileUsecase) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	// Security: Ownership check
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only view your own profile")
	}

	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}
	return profile, nil
}

func (u *profileUsecase) SaveProfile(ctx context.Context, profile *domain.UserProfile) error {
	// Security: Force the UserID from context (IDOR prevention)
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	profile.UserID = ctxUserID

	if err := u.validate.Struct(profile); err != nil {
		msgs := validation.FormatValidationErrors(err)
		return apperror.BadRequest(strings.Join(msgs, "; "))
	}

	if err := u.validateEnums(profile); err != nil {
		return err
	}

	return u.repo.Upsert(ctx, profile)
}

// GetCompletion builds the completion view. Unlike GetProfile it does not
// error when the profile is absent: an absent profile is a valid state that
// scores 0 and routes the client to profile setup.
func (u *profileUsecase) GetCompletion(ctx context.Context, userID string) (*domain.CompletionReport, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only view your own profile completion")
	}

	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return domain.BuildCompletionReport(profile), nil
}

// validateEnums rejects unknown enum values. Empty values are fine; every
// field is optional.
func (u *profileUsecase) validateEnums(p *domain.UserProfile) error {
	if p.SeniorityLevel != "" && !p.SeniorityLevel.IsValid() {
		return apperror.BadRequest("Invalid seniority level: " + string(p.SeniorityLevel))
	}
	if p.WorkPreference != "" && !p.WorkPreference.IsValid() {
		return apperror.BadRequest("Invalid work preference: " + string(p.WorkPreference))
	}
	if p.WritingTone != "" && !p.WritingTone.IsValid() {
		return apperror.BadRequest("Invalid writing tone: " + string(p.WritingTone))
	}
	if p.EmailLength != "" && !p.EmailLength.IsValid() {
		return apperror.BadRequest("Invalid email length: " + string(p.EmailLength))
	}
	if p.AIPreferences != nil && p.AIPreferences.SpeedQuality != "" && !p.AIPreferences.SpeedQuality.IsValid() {
		return apperror.BadRequest("Invalid AI speed/quality preference: " + string(p.AIPreferences.SpeedQuality))
	}
	return nil
}
