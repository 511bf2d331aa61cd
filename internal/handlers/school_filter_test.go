package handlers

import (
	"fmt"
	"testing"

	"github.com/Yofukashi625/fangyang-wiki-app/config"
	"github.com/Yofukashi625/fangyang-wiki-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func newSchool(name string, reqs models.SchoolRequirements) models.School {
	return models.School{
		Name:         name,
		Country:      "USA",
		Type:         models.SchoolTypeUniversity,
		Requirements: datatypes.NewJSONType(reqs),
	}
}

func TestParseRequirementValue(t *testing.T) {
	assert.Equal(t, 3.5, parseRequirementValue("3.5+"))
	assert.Equal(t, 92.0, parseRequirementValue("92 (min)"))
	assert.Equal(t, 6.5, parseRequirementValue("6.5"))
	assert.Equal(t, 0.0, parseRequirementValue(""))
	assert.Equal(t, 0.0, parseRequirementValue("TBD"))
	// First numeric token wins.
	assert.Equal(t, 80.0, parseRequirementValue("80-100 range"))
}

func TestCheckScoreRequirementBoundary(t *testing.T) {
	school := newSchool("UW", models.SchoolRequirements{Toefl: "92+"})

	assert.False(t, checkScoreRequirement(school, ScoreTypeTOEFL, 90))
	// Boundary is inclusive: userScore >= requirement.
	assert.True(t, checkScoreRequirement(school, ScoreTypeTOEFL, 92))
	assert.True(t, checkScoreRequirement(school, ScoreTypeTOEFL, 100))
}

func TestCheckScoreRequirementZeroAlwaysPasses(t *testing.T) {
	// A requirement text with no parseable number parses to 0 and passes.
	school := newSchool("X", models.SchoolRequirements{Gpa: "case by case"})
	assert.True(t, checkScoreRequirement(school, ScoreTypeGPA, 1.0))
}

func TestCheckScoreRequirementMissingPolicy(t *testing.T) {
	school := newSchool("X", models.SchoolRequirements{})

	original := config.MissingRequirementPolicy
	defer func() { config.MissingRequirementPolicy = original }()

	config.MissingRequirementPolicy = config.MissingRequirementPass
	assert.True(t, checkScoreRequirement(school, ScoreTypeIELTS, 6.0))

	config.MissingRequirementPolicy = config.MissingRequirementFail
	assert.False(t, checkScoreRequirement(school, ScoreTypeIELTS, 6.0))
}

func TestFilterSchoolsSearch(t *testing.T) {
	schools := []models.School{
		{Name: "UW", Tags: datatypes.NewJSONSlice([]string{"STEM", "Research"})},
		{Name: "Stemford Academy"},
		{Name: "Plain College", Programs: datatypes.NewJSONSlice([]string{"STEM Education"})},
		{Name: "Arts School", Description: "Focus on fine arts"},
	}

	got := FilterSchools(schools, SchoolFilter{SearchTerm: "STEM"})
	require.Len(t, got, 3)
	// Input order is preserved, no relevance re-sort.
	assert.Equal(t, "UW", got[0].Name)
	assert.Equal(t, "Stemford Academy", got[1].Name)
	assert.Equal(t, "Plain College", got[2].Name)
}

func TestFilterSchoolsCountryOthersBucket(t *testing.T) {
	schools := []models.School{
		{Name: "A", Country: "USA"},
		{Name: "B", Country: "Japan"},
		{Name: "C", Country: "UK"},
		{Name: "D", Country: "Singapore"},
	}

	others := FilterSchools(schools, SchoolFilter{Country: "Others"})
	require.Len(t, others, 2)
	assert.Equal(t, "B", others[0].Name)
	assert.Equal(t, "D", others[1].Name)

	usa := FilterSchools(schools, SchoolFilter{Country: "USA"})
	require.Len(t, usa, 1)
	assert.Equal(t, "A", usa[0].Name)

	all := FilterSchools(schools, SchoolFilter{Country: "All"})
	assert.Len(t, all, 4)
}

// Fifteen schools with GPA requirements cycling through 2.5 / 3.0 / 3.5 /
// none; user threshold 3.0 under the default PASS policy keeps everything
// except the 3.5 schools.
func TestFilterSchoolsEligibilityAndPaging(t *testing.T) {
	original := config.MissingRequirementPolicy
	defer func() { config.MissingRequirementPolicy = original }()
	config.MissingRequirementPolicy = config.MissingRequirementPass

	reqCycle := []string{"2.5", "3.0", "3.5", ""}
	var schools []models.School
	for i := 0; i < 15; i++ {
		schools = append(schools, newSchool(
			fmt.Sprintf("School %02d", i),
			models.SchoolRequirements{Gpa: reqCycle[i%len(reqCycle)]},
		))
	}

	filter := SchoolFilter{ScoreType: ScoreTypeGPA, ScoreValue: 3.0, HasScore: true}
	eligible := FilterSchools(schools, filter)

	// 15 schools, indices with req "3.5" (i%4==2) fail: that is 4 of them.
	require.Len(t, eligible, 11)
	for _, s := range eligible {
		assert.NotEqual(t, "3.5", s.Requirements.Data().Gpa)
	}

	pageItems, currentPage, totalPages := PaginateSlice(eligible, 1, DefaultPageSize)
	assert.Equal(t, 1, currentPage)
	assert.Equal(t, 1, totalPages)
	assert.Len(t, pageItems, 11)
	assert.Equal(t, "School 00", pageItems[0].Name)

	// Without the score filter all 15 survive and spill onto a second page.
	all := FilterSchools(schools, SchoolFilter{})
	require.Len(t, all, 15)

	page2, currentPage, totalPages := PaginateSlice(all, 2, DefaultPageSize)
	assert.Equal(t, 2, currentPage)
	assert.Equal(t, 2, totalPages)
	require.Len(t, page2, 3)
	assert.Equal(t, "School 12", page2[0].Name)
}

func TestFilterSchoolsTypeFilter(t *testing.T) {
	schools := []models.School{
		{Name: "A", Type: models.SchoolTypeUniversity},
		{Name: "B", Type: models.SchoolTypeHighSchool},
		{Name: "C", Type: models.SchoolTypeGraduate},
	}

	got := FilterSchools(schools, SchoolFilter{Type: models.SchoolTypeHighSchool})
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].Name)
}
