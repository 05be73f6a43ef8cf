package domain_test

import (
	"testing"

	"go-jobseeker-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func fullProfile() *domain.UserProfile {
	return &domain.UserProfile{
		UserID:          "user1",
		PrimaryJobTitle: "Engineer",
		SeniorityLevel:  domain.SeniorityMid,
		WorkPreference:  domain.WorkRemote,
		TechnicalSkills: []domain.TechnicalSkill{{Name: "Go", Years: 3, Confidence: 4}},
		SoftSkills:      []string{"communication"},
		Experience: []domain.ExperienceEntry{
			{Role: "Backend Engineer", Company: "Acme", Duration: "2 years"},
		},
		WritingTone:   domain.ToneFormal,
		AIPreferences: &domain.AIPreferences{SpeedQuality: domain.PreferBalance},
	}
}

func TestCompletionScore(t *testing.T) {
	t.Run("nil profile scores zero", func(t *testing.T) {
		assert.Equal(t, 0, domain.CompletionScore(nil))
	})

	t.Run("empty profile scores zero", func(t *testing.T) {
		assert.Equal(t, 0, domain.CompletionScore(&domain.UserProfile{UserID: "user1"}))
	})

	t.Run("fully set profile scores exactly 100", func(t *testing.T) {
		assert.Equal(t, 100, domain.CompletionScore(fullProfile()))
	})

	t.Run("only job title scores exactly 10", func(t *testing.T) {
		p := &domain.UserProfile{UserID: "user1", PrimaryJobTitle: "Engineer"}
		assert.Equal(t, 10, domain.CompletionScore(p))
	})

	t.Run("blank strings do not count", func(t *testing.T) {
		p := &domain.UserProfile{UserID: "user1", PrimaryJobTitle: "   "}
		assert.Equal(t, 0, domain.CompletionScore(p))
	})

	t.Run("incomplete experience entry withholds the experience weight", func(t *testing.T) {
		p := fullProfile()
		p.Experience = []domain.ExperienceEntry{
			{Role: "Backend Engineer", Duration: "2 years"}, // no company
		}
		assert.Equal(t, 80, domain.CompletionScore(p))
	})

	t.Run("one complete entry among partial ones is enough", func(t *testing.T) {
		p := fullProfile()
		p.Experience = append([]domain.ExperienceEntry{{Role: "Intern"}}, p.Experience...)
		assert.Equal(t, 100, domain.CompletionScore(p))
	})

	t.Run("parent AI preferences object alone is insufficient", func(t *testing.T) {
		p := fullProfile()
		p.AIPreferences = &domain.AIPreferences{FeatureModes: map[string]string{"cover_letter": "auto"}}
		assert.Equal(t, 90, domain.CompletionScore(p))
	})

	t.Run("score is monotonically non-decreasing as fields fill in", func(t *testing.T) {
		steps := []func(p *domain.UserProfile){
			func(p *domain.UserProfile) { p.PrimaryJobTitle = "Engineer" },
			func(p *domain.UserProfile) { p.SeniorityLevel = domain.SeniorityMid },
			func(p *domain.UserProfile) { p.WorkPreference = domain.WorkRemote },
			func(p *domain.UserProfile) { p.TechnicalSkills = []domain.TechnicalSkill{{Name: "Go"}} },
			func(p *domain.UserProfile) { p.SoftSkills = []string{"teamwork"} },
			func(p *domain.UserProfile) {
				p.Experience = []domain.ExperienceEntry{{Role: "Dev", Company: "Acme", Duration: "1 year"}}
			},
			func(p *domain.UserProfile) { p.WritingTone = domain.ToneCasual },
			func(p *domain.UserProfile) {
				p.AIPreferences = &domain.AIPreferences{SpeedQuality: domain.PreferQuality}
			},
		}

		p := &domain.UserProfile{UserID: "user1"}
		prev := domain.CompletionScore(p)
		for _, step := range steps {
			step(p)
			score := domain.CompletionScore(p)
			assert.GreaterOrEqual(t, score, prev)
			assert.LessOrEqual(t, score, 100)
			prev = score
		}
		assert.Equal(t, 100, prev)
	})
}

func TestCompletionMessage(t *testing.T) {
	complete := domain.CompletionMessage(100)
	started := domain.CompletionMessage(0)

	t.Run("just-started message only at exactly zero", func(t *testing.T) {
		assert.NotEqual(t, started, domain.CompletionMessage(1))
	})

	t.Run("complete message only at exactly 100", func(t *testing.T) {
		assert.NotEqual(t, complete, domain.CompletionMessage(99))
	})

	t.Run("band boundaries", func(t *testing.T) {
		assert.Equal(t, domain.CompletionMessage(10), domain.CompletionMessage(29))
		assert.NotEqual(t, domain.CompletionMessage(29), domain.CompletionMessage(30))
		assert.Equal(t, domain.CompletionMessage(30), domain.CompletionMessage(49))
		assert.NotEqual(t, domain.CompletionMessage(49), domain.CompletionMessage(50))
		assert.Equal(t, domain.CompletionMessage(50), domain.CompletionMessage(79))
		assert.NotEqual(t, domain.CompletionMessage(79), domain.CompletionMessage(80))
		assert.Equal(t, domain.CompletionMessage(80), domain.CompletionMessage(99))
	})
}

func TestMissingSections(t *testing.T) {
	t.Run("nil profile returns the all-sections sentinel", func(t *testing.T) {
		assert.Equal(t, []string{domain.SectionsAll}, domain.MissingSections(nil))
	})

	t.Run("full profile has no missing sections", func(t *testing.T) {
		assert.Empty(t, domain.MissingSections(fullProfile()))
	})

	t.Run("empty profile misses every section", func(t *testing.T) {
		missing := domain.MissingSections(&domain.UserProfile{UserID: "user1"})
		assert.Equal(t, []string{
			domain.SectionCareerTargeting,
			domain.SectionTechnicalSkills,
			domain.SectionSoftSkills,
			domain.SectionWorkExperience,
			domain.SectionApplicationStyle,
			domain.SectionAIPreferences,
		}, missing)
	})

	t.Run("career targeting missing when any of its fields is unset", func(t *testing.T) {
		p := fullProfile()
		p.SeniorityLevel = ""
		assert.Contains(t, domain.MissingSections(p), domain.SectionCareerTargeting)
	})

	t.Run("non-empty experience list satisfies the section even when entries are partial", func(t *testing.T) {
		p := fullProfile()
		p.Experience = []domain.ExperienceEntry{{Role: "Dev"}} // incomplete entry
		assert.NotContains(t, domain.MissingSections(p), domain.SectionWorkExperience)
		// while the score still withholds the experience weight
		assert.Equal(t, 80, domain.CompletionScore(p))
	})
}

func TestBuildCompletionReport(t *testing.T) {
	t.Run("absent profile routes to profile setup", func(t *testing.T) {
		report := domain.BuildCompletionReport(nil)
		assert.False(t, report.ProfileExists)
		assert.Equal(t, 0, report.Score)
		assert.Equal(t, "profile_setup", report.NextStep)
		assert.Equal(t, []string{domain.SectionsAll}, report.MissingSections)
	})

	t.Run("existing profile routes to dashboard", func(t *testing.T) {
		report := domain.BuildCompletionReport(fullProfile())
		assert.True(t, report.ProfileExists)
		assert.Equal(t, 100, report.Score)
		assert.Equal(t, "dashboard", report.NextStep)
		assert.Empty(t, report.MissingSections)
	})
}
