package server

import (
	"context"

	"github.com/google/uuid"
	"github.com/jonathan/resume-site/internal/db"
)

// Store is the persistence surface the handlers depend on. *db.DB satisfies
// it in production; tests substitute a recording mock. The store is injected
// once at construction and shared across requests.
type Store interface {
	Ping(ctx context.Context) error

	GetProfile(ctx context.Context) (*db.Profile, error)
	UpdateProfile(ctx context.Context, p *db.Profile) error
	CountProfiles(ctx context.Context) (int, error)

	ListExperiences(ctx context.Context) ([]db.Experience, error)
	GetExperience(ctx context.Context, id uuid.UUID) (*db.Experience, error)
	InsertExperience(ctx context.Context, e *db.Experience) (uuid.UUID, error)
	UpdateExperience(ctx context.Context, e *db.Experience) error
	DeleteExperience(ctx context.Context, id uuid.UUID) error
	UpdateExperienceOrder(ctx context.Context, id uuid.UUID, order int) error
	CountExperiences(ctx context.Context) (int, error)

	ListSkills(ctx context.Context) ([]db.Skill, error)
	GetSkill(ctx context.Context, id uuid.UUID) (*db.Skill, error)
	InsertSkill(ctx context.Context, s *db.Skill) (uuid.UUID, error)
	UpdateSkill(ctx context.Context, s *db.Skill) error
	DeleteSkill(ctx context.Context, id uuid.UUID) error
	UpdateSkillOrder(ctx context.Context, id uuid.UUID, order int) error
	CountSkills(ctx context.Context) (int, error)

	ListFaqResponses(ctx context.Context) ([]db.FaqResponse, error)
	GetFaqResponse(ctx context.Context, id uuid.UUID) (*db.FaqResponse, error)
	InsertFaqResponse(ctx context.Context, f *db.FaqResponse) (uuid.UUID, error)
	UpdateFaqResponse(ctx context.Context, f *db.FaqResponse) error
	DeleteFaqResponse(ctx context.Context, id uuid.UUID) error
	UpdateFaqOrder(ctx context.Context, id uuid.UUID, order int) error
	CountFaqResponses(ctx context.Context) (int, error)

	ListWeaknesses(ctx context.Context) ([]db.Weakness, error)
	ListValuesCulture(ctx context.Context) ([]db.ValuesCulture, error)
}

var _ Store = (*db.DB)(nil)
