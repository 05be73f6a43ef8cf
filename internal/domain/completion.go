package domain

import "strings"

// Section names shown to the user when parts of the profile are missing
const (
	SectionCareerTargeting  = "Career Targeting"
	SectionTechnicalSkills  = "Technical Skills"
	SectionSoftSkills       = "Soft Skills"
	SectionWorkExperience   = "Work Experience"
	SectionApplicationStyle = "Application Style"
	SectionAIPreferences    = "AI Preferences"

	// SectionsAll is the sentinel returned for a nil profile
	SectionsAll = "All sections"
)

// CompletionReport is what the dashboard and profile-setup views consume to
// decide where to send the user.
type CompletionReport struct {
	ProfileExists   bool     `json:"profile_exists"`
	Score           int      `json:"score"`
	Message         string   `json:"message"`
	MissingSections []string `json:"missing_sections"`
	NextStep        string   `json:"next_step"` // "dashboard" or "profile_setup"
}

// completionCheck is one weighted criterion. satisfied drives the score;
// present drives the missing-section report. They are the same predicate for
// every field except work experience, where the score demands at least one
// fully populated entry but the section report accepts any non-empty list.
type completionCheck struct {
	weight    int
	section   string
	satisfied func(p *UserProfile) bool
	present   func(p *UserProfile) bool
}

func filled(s string) bool {
	return strings.TrimSpace(s) != ""
}

// completeEntry reports whether an experience entry has role, company and
// duration all populated. Partial entries do not count toward the score.
func completeEntry(e ExperienceEntry) bool {
	return filled(e.Role) && filled(e.Company) && filled(e.Duration)
}

// completionChecks is the canonical weight table. Weights sum to 100.
var completionChecks = []completionCheck{
	{
		weight:    10,
		section:   SectionCareerTargeting,
		satisfied: func(p *UserProfile) bool { return filled(p.PrimaryJobTitle) },
	},
	{
		weight:    10,
		section:   SectionCareerTargeting,
		satisfied: func(p *UserProfile) bool { return filled(string(p.SeniorityLevel)) },
	},
	{
		weight:    10,
		section:   SectionCareerTargeting,
		satisfied: func(p *UserProfile) bool { return filled(string(p.WorkPreference)) },
	},
	{
		weight:    20,
		section:   SectionTechnicalSkills,
		satisfied: func(p *UserProfile) bool { return len(p.TechnicalSkills) > 0 },
	},
	{
		weight:    10,
		section:   SectionSoftSkills,
		satisfied: func(p *UserProfile) bool { return len(p.SoftSkills) > 0 },
	},
	{
		weight:  20,
		section: SectionWorkExperience,
		satisfied: func(p *UserProfile) bool {
			for _, e := range p.Experience {
				if completeEntry(e) {
					return true
				}
			}
			return false
		},
		present: func(p *UserProfile) bool { return len(p.Experience) > 0 },
	},
	{
		weight:    10,
		section:   SectionApplicationStyle,
		satisfied: func(p *UserProfile) bool { return filled(string(p.WritingTone)) },
	},
	{
		weight:  10,
		section: SectionAIPreferences,
		satisfied: func(p *UserProfile) bool {
			return p.AIPreferences != nil && filled(string(p.AIPreferences.SpeedQuality))
		},
	},
}

// CompletionScore returns the weighted completeness percentage in [0,100].
// A nil profile scores 0.
func CompletionScore(p *UserProfile) int {
	if p == nil {
		return 0
	}
	total := 0
	for _, check := range completionChecks {
		if check.satisfied(p) {
			total += check.weight
		}
	}
	if total > 100 {
		total = 100
	}
	return total
}

// CompletionMessage maps a score to one of six fixed status messages.
// 0 and 100 are exact matches; the bands in between are half-open.
func CompletionMessage(score int) string {
	switch {
	case score == 0:
		return "Let's get started! Fill in your profile to unlock personalized job matches."
	case score < 30:
		return "Great start! Keep going to sharpen your job matches."
	case score < 50:
		return "You're making progress! A few more sections to go."
	case score < 80:
		return "Almost there! Your profile is really taking shape."
	case score < 100:
		return "Final touches! Complete the remaining sections to hit 100%."
	default:
		return "Your profile is complete. You're all set for tailored job matches!"
	}
}

// MissingSections returns the named sections that still need attention, in a
// fixed display order. A section is missing when any of its checks is not
// present. A nil profile returns the "All sections" sentinel.
func MissingSections(p *UserProfile) []string {
	if p == nil {
		return []string{SectionsAll}
	}

	missing := []string{}
	seen := map[string]bool{}
	for _, check := range completionChecks {
		if seen[check.section] {
			continue
		}
		present := check.satisfied
		if check.present != nil {
			present = check.present
		}
		if !present(p) {
			missing = append(missing, check.section)
			seen[check.section] = true
		}
	}
	return missing
}

// BuildCompletionReport assembles the full completion view for a profile,
// which may be nil when the user has not finished profile setup yet.
func BuildCompletionReport(p *UserProfile) *CompletionReport {
	score := CompletionScore(p)
	report := &CompletionReport{
		ProfileExists:   p != nil,
		Score:           score,
		Message:         CompletionMessage(score),
		MissingSections: MissingSections(p),
		NextStep:        "dashboard",
	}
	if p == nil {
		report.NextStep = "profile_setup"
	}
	return report
}
