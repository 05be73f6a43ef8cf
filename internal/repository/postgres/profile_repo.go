package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-jobseeker-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	query := `
		SELECT
			id, user_id,
			COALESCE(primary_job_title, ''), COALESCE(seniority_level, ''),
			industries, salary_range, contract_types, COALESCE(work_preference, ''),
			technical_skills, soft_skills, experience, job_preferences,
			COALESCE(writing_tone, ''), COALESCE(branding_summary, ''),
			use_first_person, COALESCE(email_length, ''),
			COALESCE(country, ''), COALESCE(city, ''),
			COALESCE(timezone, ''), COALESCE(language, ''),
			ai_preferences, created_at, updated_at
		FROM user_profiles WHERE user_id = $1`

	var (
		p                               domain.UserProfile
		industries, contracts, soft     []string
		salaryJSON, skillsJSON, expJSON []byte
		prefsJSON, aiJSON               []byte
	)

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID,
		&p.PrimaryJobTitle, &p.SeniorityLevel,
		pq.Array(&industries), &salaryJSON, pq.Array(&contracts), &p.WorkPreference,
		&skillsJSON, pq.Array(&soft), &expJSON, &prefsJSON,
		&p.WritingTone, &p.BrandingSummary,
		&p.UseFirstPerson, &p.EmailLength,
		&p.Country, &p.City,
		&p.Timezone, &p.Language,
		&aiJSON, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	p.Industries = industries
	p.ContractTypes = contracts
	p.SoftSkills = soft

	if err := unmarshalColumn(salaryJSON, &p.SalaryRange); err != nil {
		return nil, fmt.Errorf("failed to decode salary_range: %w", err)
	}
	if err := unmarshalColumn(skillsJSON, &p.TechnicalSkills); err != nil {
		return nil, fmt.Errorf("failed to decode technical_skills: %w", err)
	}
	if err := unmarshalColumn(expJSON, &p.Experience); err != nil {
		return nil, fmt.Errorf("failed to decode experience: %w", err)
	}
	if err := unmarshalColumn(prefsJSON, &p.JobPreferences); err != nil {
		return nil, fmt.Errorf("failed to decode job_preferences: %w", err)
	}
	if err := unmarshalColumn(aiJSON, &p.AIPreferences); err != nil {
		return nil, fmt.Errorf("failed to decode ai_preferences: %w", err)
	}

	return &p, nil
}

func (r *profileRepo) Upsert(ctx context.Context, profile *domain.UserProfile) error {
	salaryJSON, err := marshalColumn(profile.SalaryRange)
	if err != nil {
		return err
	}
	skillsJSON, err := marshalColumn(profile.TechnicalSkills)
	if err != nil {
		return err
	}
	expJSON, err := marshalColumn(profile.Experience)
	if err != nil {
		return err
	}
	prefsJSON, err := marshalColumn(profile.JobPreferences)
	if err != nil {
		return err
	}
	aiJSON, err := marshalColumn(profile.AIPreferences)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO user_profiles (
			user_id, primary_job_title, seniority_level, industries,
			salary_range, contract_types, work_preference,
			technical_skills, soft_skills, experience, job_preferences,
			writing_tone, branding_summary, use_first_person, email_length,
			country, city, timezone, language, ai_preferences
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		ON CONFLICT (user_id) DO UPDATE SET
			primary_job_title = EXCLUDED.primary_job_title,
			seniority_level = EXCLUDED.seniority_level,
			industries = EXCLUDED.industries,
			salary_range = EXCLUDED.salary_range,
			contract_types = EXCLUDED.contract_types,
			work_preference = EXCLUDED.work_preference,
			technical_skills = EXCLUDED.technical_skills,
			soft_skills = EXCLUDED.soft_skills,
			experience = EXCLUDED.experience,
			job_preferences = EXCLUDED.job_preferences,
			writing_tone = EXCLUDED.writing_tone,
			branding_summary = EXCLUDED.branding_summary,
			use_first_person = EXCLUDED.use_first_person,
			email_length = EXCLUDED.email_length,
			country = EXCLUDED.country,
			city = EXCLUDED.city,
			timezone = EXCLUDED.timezone,
			language = EXCLUDED.language,
			ai_preferences = EXCLUDED.ai_preferences,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		profile.UserID, profile.PrimaryJobTitle, profile.SeniorityLevel, pq.Array(profile.Industries),
		salaryJSON, pq.Array(profile.ContractTypes), profile.WorkPreference,
		skillsJSON, pq.Array(profile.SoftSkills), expJSON, prefsJSON,
		profile.WritingTone, profile.BrandingSummary, profile.UseFirstPerson, profile.EmailLength,
		profile.Country, profile.City, profile.Timezone, profile.Language, aiJSON,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

// unmarshalColumn decodes a nullable jsonb column; NULL leaves dst untouched
func unmarshalColumn(raw []byte, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

// marshalColumn encodes a value for a jsonb column; nil pointers and empty
// slices become SQL NULL
func marshalColumn(v any) ([]byte, error) {
	switch val := v.(type) {
	case *domain.SalaryRange:
		if val == nil {
			return nil, nil
		}
	case *domain.JobPreferences:
		if val == nil {
			return nil, nil
		}
	case *domain.AIPreferences:
		if val == nil {
			return nil, nil
		}
	case []domain.TechnicalSkill:
		if len(val) == 0 {
			return nil, nil
		}
	case []domain.ExperienceEntry:
		if len(val) == 0 {
			return nil, nil
		}
	}
	return json.Marshal(v)
}
