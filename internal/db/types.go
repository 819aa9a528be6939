package db

import (
	"time"

	"github.com/google/uuid"
)

// ProfileRowID is the identity of the single profile row. The site holds
// exactly one profile; reads and writes never address any other row.
const ProfileRowID = 1

// Skill category constants
const (
	CategoryStrong   = "strong"
	CategoryModerate = "moderate"
	CategoryGap      = "gap"
)

// Profile represents the resume_profile row
type Profile struct {
	ID                  int       `json:"id"`
	Name                string    `json:"name"`
	ShortName           string    `json:"short_name"`
	Tagline             string    `json:"tagline"`
	Email               string    `json:"email"`
	Title               string    `json:"title"`
	Subtitle            *string   `json:"subtitle,omitempty"`
	TargetTitles        []string  `json:"target_titles"`
	TargetCompanyStages []string  `json:"target_company_stages"`
	Location            *string   `json:"location,omitempty"`
	RemotePreference    *string   `json:"remote_preference,omitempty"`
	GithubURL           *string   `json:"github_url,omitempty"`
	LinkedinURL         *string   `json:"linkedin_url,omitempty"`
	TwitterURL          *string   `json:"twitter_url,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Experience represents a resume_experiences row. Dates are stored as text
// at month granularity ("2023-08"), matching what the admin forms submit.
type Experience struct {
	ID               uuid.UUID `json:"id"`
	CompanyName      string    `json:"company_name"`
	Title            string    `json:"title"`
	TitleProgression *string   `json:"title_progression,omitempty"`
	Team             *string   `json:"team,omitempty"`
	StartDate        string    `json:"start_date"`
	EndDate          *string   `json:"end_date,omitempty"`
	IsCurrent        bool      `json:"is_current"`
	BulletPoints     []string  `json:"bullet_points"`
	DisplayOrder     int       `json:"display_order"`
	OnHeroSection    bool      `json:"on_hero_section"`
	CreatedAt        time.Time `json:"created_at"`
}

// Skill represents a resume_skills row
type Skill struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	SelfRating      *int      `json:"self_rating,omitempty"`
	Evidence        *string   `json:"evidence,omitempty"`
	HonestNotes     *string   `json:"honest_notes,omitempty"`
	YearsExperience *float64  `json:"years_experience,omitempty"`
	InUse           bool      `json:"in_use"`
	LastUsed        *string   `json:"last_used,omitempty"`
	DisplayOrder    int       `json:"display_order"`
	CreatedAt       time.Time `json:"created_at"`
}

// FaqResponse represents a resume_faq_responses row
type FaqResponse struct {
	ID               uuid.UUID `json:"id"`
	Question         string    `json:"question"`
	Answer           string    `json:"answer"`
	IsCommonQuestion bool      `json:"is_common_question"`
	DisplayOrder     int       `json:"display_order"`
	CreatedAt        time.Time `json:"created_at"`
}

// Weakness represents a resume_weaknesses row (read-only; no admin actions)
type Weakness struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ValuesCulture represents a resume_values_culture row (read-only)
type ValuesCulture struct {
	ID           uuid.UUID `json:"id"`
	MustHaves    *string   `json:"must_haves,omitempty"`
	Dealbreakers *string   `json:"dealbreakers,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
