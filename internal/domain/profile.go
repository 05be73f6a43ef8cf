package domain

import (
	"context"
	"time"
)

// ============================================================================
// Enums
// ============================================================================

// SeniorityLevel represents the candidate's target seniority
type SeniorityLevel string

const (
	SeniorityJunior    SeniorityLevel = "junior"
	SeniorityMid       SeniorityLevel = "mid"
	SenioritySenior    SeniorityLevel = "senior"
	SeniorityLead      SeniorityLevel = "lead"
	SeniorityPrincipal SeniorityLevel = "principal"
)

func ValidSeniorityLevels() []SeniorityLevel {
	return []SeniorityLevel{SeniorityJunior, SeniorityMid, SenioritySenior, SeniorityLead, SeniorityPrincipal}
}

func (s SeniorityLevel) IsValid() bool {
	for _, valid := range ValidSeniorityLevels() {
		if s == valid {
			return true
		}
	}
	return false
}

// WorkPreference represents where the candidate wants to work from
type WorkPreference string

const (
	WorkRemote WorkPreference = "remote"
	WorkHybrid WorkPreference = "hybrid"
	WorkOnsite WorkPreference = "onsite"
)

func ValidWorkPreferences() []WorkPreference {
	return []WorkPreference{WorkRemote, WorkHybrid, WorkOnsite}
}

func (w WorkPreference) IsValid() bool {
	for _, valid := range ValidWorkPreferences() {
		if w == valid {
			return true
		}
	}
	return false
}

// WritingTone controls how generated application material reads
type WritingTone string

const (
	ToneFormal       WritingTone = "formal"
	ToneCasual       WritingTone = "casual"
	ToneEnthusiastic WritingTone = "enthusiastic"
	ToneConcise      WritingTone = "concise"
)

func ValidWritingTones() []WritingTone {
	return []WritingTone{ToneFormal, ToneCasual, ToneEnthusiastic, ToneConcise}
}

func (t WritingTone) IsValid() bool {
	for _, valid := range ValidWritingTones() {
		if t == valid {
			return true
		}
	}
	return false
}

// EmailLength controls the target length of generated outreach emails
type EmailLength string

const (
	EmailShort  EmailLength = "short"
	EmailMedium EmailLength = "medium"
	EmailLong   EmailLength = "long"
)

func (l EmailLength) IsValid() bool {
	return l == EmailShort || l == EmailMedium || l == EmailLong
}

// SpeedQuality is the AI speed-vs-quality tradeoff
type SpeedQuality string

const (
	PreferSpeed   SpeedQuality = "speed"
	PreferBalance SpeedQuality = "balanced"
	PreferQuality SpeedQuality = "quality"
)

func (s SpeedQuality) IsValid() bool {
	return s == PreferSpeed || s == PreferBalance || s == PreferQuality
}

// ============================================================================
// Profile record
// ============================================================================

// TechnicalSkill is one self-assessed skill entry
type TechnicalSkill struct {
	Name       string  `json:"name" validate:"required,max=100"`
	Years      float64 `json:"years" validate:"omitempty,min=0,max=60"`
	Confidence int     `json:"confidence" validate:"omitempty,min=1,max=5"`
}

// ExperienceEntry is one position in the candidate's work history.
// Role, Company and Duration together decide whether the entry counts as
// complete for completion scoring.
type ExperienceEntry struct {
	Role         string   `json:"role" validate:"omitempty,max=150"`
	Company      string   `json:"company" validate:"omitempty,max=150"`
	Duration     string   `json:"duration" validate:"omitempty,max=100"`
	Achievements []string `json:"achievements,omitempty" validate:"omitempty,dive,max=500"`
	Metrics      []string `json:"metrics,omitempty" validate:"omitempty,dive,max=200"`
}

// JobPreferences holds the job-feed filtering rules
type JobPreferences struct {
	IncludeKeywords      []string `json:"include_keywords,omitempty"`
	ExcludeKeywords      []string `json:"exclude_keywords,omitempty"`
	BlacklistedCompanies []string `json:"blacklisted_companies,omitempty"`
	BoardAllowlist       []string `json:"board_allowlist,omitempty"`
	BoardDenylist        []string `json:"board_denylist,omitempty"`
	FreshnessDays        *int     `json:"freshness_days,omitempty" validate:"omitempty,min=1,max=90"`
}

// AIPreferences holds per-feature AI behavior settings. SpeedQuality is the
// field that matters for completion; the parent object alone is not enough.
type AIPreferences struct {
	FeatureModes map[string]string `json:"feature_modes,omitempty"`
	SpeedQuality SpeedQuality      `json:"speed_quality,omitempty" validate:"omitempty,oneof=speed balanced quality"`
}

// SalaryRange is the desired compensation window
type SalaryRange struct {
	Min      *int   `json:"min,omitempty" validate:"omitempty,min=0"`
	Max      *int   `json:"max,omitempty" validate:"omitempty,min=0"`
	Currency string `json:"currency,omitempty" validate:"omitempty,currency_code"`
}

// UserProfile is the job-seeker profile record. Every field except ID, UserID
// and the timestamps is optional; the record is meaningful at any completion
// level. Timestamps are assigned by the database.
type UserProfile struct {
	ID     int64  `json:"id"`
	UserID string `json:"user_id" validate:"required"`

	// Career targeting
	PrimaryJobTitle string         `json:"primary_job_title,omitempty" validate:"omitempty,max=150,job_title"`
	SeniorityLevel  SeniorityLevel `json:"seniority_level,omitempty" validate:"omitempty,oneof=junior mid senior lead principal"`
	Industries      []string       `json:"industries,omitempty"`
	SalaryRange     *SalaryRange   `json:"salary_range,omitempty"`
	ContractTypes   []string       `json:"contract_types,omitempty"`
	WorkPreference  WorkPreference `json:"work_preference,omitempty" validate:"omitempty,oneof=remote hybrid onsite"`

	// Skills
	TechnicalSkills []TechnicalSkill `json:"technical_skills,omitempty" validate:"omitempty,dive"`
	SoftSkills      []string         `json:"soft_skills,omitempty"`

	// Work history
	Experience []ExperienceEntry `json:"experience,omitempty" validate:"omitempty,dive"`

	// Job feed filtering
	JobPreferences *JobPreferences `json:"job_preferences,omitempty"`

	// Application style
	WritingTone     WritingTone `json:"writing_tone,omitempty" validate:"omitempty,oneof=formal casual enthusiastic concise"`
	BrandingSummary string      `json:"branding_summary,omitempty" validate:"omitempty,max=2000,no_emoji"`
	UseFirstPerson  *bool       `json:"use_first_person,omitempty"`
	EmailLength     EmailLength `json:"email_length,omitempty" validate:"omitempty,oneof=short medium long"`

	// Localization
	Country  string `json:"country,omitempty" validate:"omitempty,max=100"`
	City     string `json:"city,omitempty" validate:"omitempty,max=100"`
	Timezone string `json:"timezone,omitempty" validate:"omitempty,max=64"`
	Language string `json:"language,omitempty" validate:"omitempty,max=32"`

	// AI behavior
	AIPreferences *AIPreferences `json:"ai_preferences,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ============================================================================
// Repository / Usecase interfaces
// ============================================================================

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*UserProfile, error)
	Upsert(ctx context.Context, profile *UserProfile) error
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*UserProfile, error)
	SaveProfile(ctx context.Context, profile *UserProfile) error
	GetCompletion(ctx context.Context, userID string) (*CompletionReport, error)
}
