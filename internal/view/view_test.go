package view

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-site/internal/db"
)

func strPtr(s string) *string { return &s }

func TestMapProfile_Nil(t *testing.T) {
	assert.Nil(t, MapProfile(nil))
}

func TestMapProfile_Defaults(t *testing.T) {
	got := MapProfile(&db.Profile{
		Name:      "Ada Lovelace",
		ShortName: "Ada",
		Tagline:   "first programmer",
		Title:     "Engineer",
	})
	require.NotNil(t, got)

	// Absent nullable columns become empty collections or empty strings,
	// never nil slices.
	assert.Equal(t, []string{}, got.TargetTitles)
	assert.Equal(t, []string{}, got.TargetCompanyStages)
	assert.Equal(t, "", got.Location)
	assert.Equal(t, "", got.RemotePreference)
	assert.Nil(t, got.Subtitle)
	assert.Nil(t, got.GithubURL)
}

func TestMapProfile_PassesOptionalsThrough(t *testing.T) {
	got := MapProfile(&db.Profile{
		Name:             "Ada Lovelace",
		Subtitle:         strPtr("analytical engines"),
		TargetTitles:     []string{"Staff Engineer"},
		Location:         strPtr("London"),
		RemotePreference: strPtr("remote-first"),
		GithubURL:        strPtr("https://github.com/ada"),
	})
	require.NotNil(t, got)

	assert.Equal(t, []string{"Staff Engineer"}, got.TargetTitles)
	assert.Equal(t, "London", got.Location)
	assert.Equal(t, "remote-first", got.RemotePreference)
	require.NotNil(t, got.Subtitle)
	assert.Equal(t, "analytical engines", *got.Subtitle)
	require.NotNil(t, got.GithubURL)
	assert.Equal(t, "https://github.com/ada", *got.GithubURL)
}

func TestMapExperiences_RenamesAndDefaults(t *testing.T) {
	rows := []db.Experience{
		{ID: uuid.New(), CompanyName: "Initech", Title: "Engineer", DisplayOrder: 1},
	}

	got := MapExperiences(rows)
	require.Len(t, got, 1)

	assert.Equal(t, "Initech", got[0].Name)
	assert.Equal(t, []string{}, got[0].BulletPoints)
	assert.Equal(t, []string{}, got[0].Bullets)
}

func TestMapExperiences_BulletAlias(t *testing.T) {
	rows := []db.Experience{
		{CompanyName: "Initech", BulletPoints: []string{"shipped", "scaled"}},
	}

	got := MapExperiences(rows)
	require.Len(t, got, 1)

	// bullets is a legacy alias; both fields expose the same list
	assert.Equal(t, got[0].BulletPoints, got[0].Bullets)
	assert.Equal(t, []string{"shipped", "scaled"}, got[0].BulletPoints)
}

func TestMapExperiences_SortsByDisplayOrder(t *testing.T) {
	rows := []db.Experience{
		{CompanyName: "Third", DisplayOrder: 3},
		{CompanyName: "First", DisplayOrder: 1},
		{CompanyName: "Second", DisplayOrder: 2},
	}

	got := MapExperiences(rows)
	require.Len(t, got, 3)
	assert.Equal(t, "First", got[0].Name)
	assert.Equal(t, "Second", got[1].Name)
	assert.Equal(t, "Third", got[2].Name)
}

func TestMapExperiences_StableOnTies(t *testing.T) {
	rows := []db.Experience{
		{CompanyName: "A", DisplayOrder: 5},
		{CompanyName: "B", DisplayOrder: 5},
		{CompanyName: "C", DisplayOrder: 1},
		{CompanyName: "D", DisplayOrder: 5},
	}

	got := MapExperiences(rows)
	require.Len(t, got, 4)

	// Tied rows keep their fetch order after the sort
	assert.Equal(t, "C", got[0].Name)
	assert.Equal(t, "A", got[1].Name)
	assert.Equal(t, "B", got[2].Name)
	assert.Equal(t, "D", got[3].Name)
}

func TestMapExperiences_Empty(t *testing.T) {
	assert.Equal(t, []Experience{}, MapExperiences(nil))
}

func TestMapSkills_Partition(t *testing.T) {
	rows := []db.Skill{
		{Name: "Go", Category: db.CategoryStrong},
		{Name: "Rust", Category: db.CategoryModerate},
		{Name: "Haskell", Category: db.CategoryGap},
		{Name: "Python", Category: db.CategoryStrong},
		{Name: "Cobol", Category: "legacy"}, // unknown category is dropped
	}

	got := MapSkills(rows)

	assert.Equal(t, []string{"Go", "Python"}, got.Strong)
	assert.Equal(t, []string{"Rust"}, got.Moderate)
	assert.Equal(t, []string{"Haskell"}, got.Gaps)

	// Every input lands in exactly one bucket or is excluded
	excluded := len(rows) - len(got.Strong) - len(got.Moderate) - len(got.Gaps)
	assert.Equal(t, 1, excluded)
}

func TestMapSkills_EmptyBuckets(t *testing.T) {
	got := MapSkills(nil)
	assert.Equal(t, []string{}, got.Strong)
	assert.Equal(t, []string{}, got.Moderate)
	assert.Equal(t, []string{}, got.Gaps)
}

func TestMapQuestions(t *testing.T) {
	rows := []db.FaqResponse{
		{Question: "Why Go?", Answer: "hidden", IsCommonQuestion: true},
		{Question: "Remote only?", Answer: "hidden", IsCommonQuestion: false},
	}

	// All questions are included regardless of the common-question flag;
	// answers never reach the public payload.
	got := MapQuestions(rows)
	assert.Equal(t, []string{"Why Go?", "Remote only?"}, got)

	assert.Equal(t, []string{}, MapQuestions(nil))
}
