// Package view maps persisted resume rows into the public payload served to
// unauthenticated readers. Mapping is defensive: missing rows degrade to
// empty collections or null, never to an error.
package view

import (
	"sort"

	"github.com/google/uuid"
	"github.com/jonathan/resume-site/internal/db"
)

// Profile is the public projection of the profile row
type Profile struct {
	Name                string   `json:"name"`
	ShortName           string   `json:"shortName"`
	Tagline             string   `json:"tagline"`
	Title               string   `json:"title"`
	Subtitle            *string  `json:"subtitle,omitempty"`
	TargetTitles        []string `json:"targetTitles"`
	TargetCompanyStages []string `json:"targetCompanyStages"`
	Location            string   `json:"location"`
	RemotePreference    string   `json:"remotePreference"`
	GithubURL           *string  `json:"githubUrl,omitempty"`
	LinkedinURL         *string  `json:"linkedinUrl,omitempty"`
	TwitterURL          *string  `json:"twitterUrl,omitempty"`
}

// Experience is the public projection of an experience row.
// Bullets duplicates BulletPoints under the legacy field name; consumers
// should read bulletPoints, the bullets alias is kept for older clients.
type Experience struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Title            string    `json:"title"`
	TitleProgression *string   `json:"titleProgression,omitempty"`
	Team             *string   `json:"team,omitempty"`
	StartDate        string    `json:"startDate"`
	EndDate          *string   `json:"endDate,omitempty"`
	IsCurrent        bool      `json:"isCurrent"`
	BulletPoints     []string  `json:"bulletPoints"`
	Bullets          []string  `json:"bullets"`
	Order            int       `json:"order"`
	OnHeroSection    bool      `json:"onHeroSection"`
}

// SkillsMatrix buckets public skill names by category
type SkillsMatrix struct {
	Strong   []string `json:"strong"`
	Moderate []string `json:"moderate"`
	Gaps     []string `json:"gaps"`
}

// Page is the aggregate payload for the public landing page
type Page struct {
	Profile         *Profile     `json:"profile"`
	Experiences     []Experience `json:"experiences"`
	Skills          SkillsMatrix `json:"skills"`
	CommonQuestions []string     `json:"commonQuestions"`
}

// MapProfile converts the profile row to its public projection.
// A nil row maps to nil.
func MapProfile(p *db.Profile) *Profile {
	if p == nil {
		return nil
	}
	return &Profile{
		Name:                p.Name,
		ShortName:           p.ShortName,
		Tagline:             p.Tagline,
		Title:               p.Title,
		Subtitle:            p.Subtitle,
		TargetTitles:        orEmpty(p.TargetTitles),
		TargetCompanyStages: orEmpty(p.TargetCompanyStages),
		Location:            deref(p.Location),
		RemotePreference:    deref(p.RemotePreference),
		GithubURL:           p.GithubURL,
		LinkedinURL:         p.LinkedinURL,
		TwitterURL:          p.TwitterURL,
	}
}

// MapExperiences converts experience rows to their public projections,
// sorted ascending by display order. The sort is stable: rows sharing an
// order value keep their fetch order.
func MapExperiences(rows []db.Experience) []Experience {
	experiences := make([]Experience, 0, len(rows))
	for _, e := range rows {
		bullets := orEmpty(e.BulletPoints)
		experiences = append(experiences, Experience{
			ID:               e.ID,
			Name:             e.CompanyName,
			Title:            e.Title,
			TitleProgression: e.TitleProgression,
			Team:             e.Team,
			StartDate:        e.StartDate,
			EndDate:          e.EndDate,
			IsCurrent:        e.IsCurrent,
			BulletPoints:     bullets,
			Bullets:          bullets,
			Order:            e.DisplayOrder,
			OnHeroSection:    e.OnHeroSection,
		})
	}
	sort.SliceStable(experiences, func(i, j int) bool {
		return experiences[i].Order < experiences[j].Order
	})
	return experiences
}

// MapSkills partitions skill rows into the public category buckets, keeping
// only the names. Rows with an unrecognized category are excluded.
func MapSkills(rows []db.Skill) SkillsMatrix {
	matrix := SkillsMatrix{
		Strong:   []string{},
		Moderate: []string{},
		Gaps:     []string{},
	}
	for _, s := range rows {
		switch s.Category {
		case db.CategoryStrong:
			matrix.Strong = append(matrix.Strong, s.Name)
		case db.CategoryModerate:
			matrix.Moderate = append(matrix.Moderate, s.Name)
		case db.CategoryGap:
			matrix.Gaps = append(matrix.Gaps, s.Name)
		}
	}
	return matrix
}

// MapQuestions extracts the question text from every FAQ row, in order.
// The public payload carries only questions; answers stay behind the admin.
func MapQuestions(rows []db.FaqResponse) []string {
	questions := make([]string, 0, len(rows))
	for _, f := range rows {
		questions = append(questions, f.Question)
	}
	return questions
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
