package handlers

import (
	"testing"

	"github.com/Yofukashi625/fangyang-wiki-app/models"

	"github.com/stretchr/testify/assert"
)

func TestShouldCalculate(t *testing.T) {
	cases := []struct {
		name     string
		course   models.TranscriptCourse
		included bool
	}{
		{"numeric grade", models.TranscriptCourse{Name: "微積分", OriginalGrade: "85"}, true},
		{"transfer credit", models.TranscriptCourse{Name: "英文", OriginalGrade: "抵免"}, false},
		{"withdrawal", models.TranscriptCourse{Name: "統計", OriginalGrade: "退選"}, false},
		{"stop enrollment", models.TranscriptCourse{Name: "會計", OriginalGrade: "停修"}, false},
		{"pass token", models.TranscriptCourse{Name: "服務學習", OriginalGrade: "P"}, false},
		{"withdraw token", models.TranscriptCourse{Name: "選修", OriginalGrade: "W"}, false},
		{"pass word", models.TranscriptCourse{Name: "實習", OriginalGrade: "Pass"}, false},
		// Letter grades containing P or W as a substring still count.
		{"letter grade A+", models.TranscriptCourse{Name: "經濟學", OriginalGrade: "A+"}, true},
		{"P inside larger token", models.TranscriptCourse{Name: "程式設計", OriginalGrade: "TOP"}, true},
		{"PE course by name", models.TranscriptCourse{Name: "體育(一)", OriginalGrade: "92"}, false},
		{"PE token in name", models.TranscriptCourse{Name: "PE Basketball", OriginalGrade: "88"}, false},
		// "Spelling" contains "pe" but not as a whole token.
		{"pe substring in name", models.TranscriptCourse{Name: "Spelling", OriginalGrade: "75"}, true},
		{"unrecognized grade", models.TranscriptCourse{Name: "專題", OriginalGrade: "優"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.included, shouldCalculate(tc.course))
		})
	}
}

func TestCalculateSummary(t *testing.T) {
	courses := []models.TranscriptCourse{
		{Name: "微積分", Credits: 3, OriginalGrade: "85", Gpa4: 4.0, Percentage: 85},
		{Name: "英文", Credits: 2, OriginalGrade: "抵免", Gpa4: 2.0, Percentage: 65},
	}

	summary := calculateSummary(courses)
	// Only the first course counts: the excluded row must not drag the mean.
	assert.Equal(t, 3.0, summary.TotalCredits)
	assert.Equal(t, 4.0, summary.OverallGpa4)
	assert.Equal(t, 85.0, summary.OverallPercentage)

	// Recomputing over the unchanged list is idempotent.
	again := calculateSummary(courses)
	assert.Equal(t, summary, again)
}

func TestCalculateSummaryAllExcluded(t *testing.T) {
	courses := []models.TranscriptCourse{
		{Name: "體育(一)", Credits: 1, OriginalGrade: "90", Gpa4: 4.0, Percentage: 90},
		{Name: "服務學習", Credits: 0, OriginalGrade: "P"},
	}

	summary := calculateSummary(courses)
	assert.Equal(t, 0.0, summary.TotalCredits)
	assert.Equal(t, 0.0, summary.OverallGpa4)
	assert.Equal(t, 0.0, summary.OverallPercentage)
}

func TestCalculateSummaryWeighting(t *testing.T) {
	courses := []models.TranscriptCourse{
		{Name: "A", Credits: 3, OriginalGrade: "82", Gpa4: 4.0, Percentage: 82},
		{Name: "B", Credits: 1, OriginalGrade: "62", Gpa4: 2.0, Percentage: 62},
	}

	summary := calculateSummary(courses)
	assert.Equal(t, 4.0, summary.TotalCredits)
	assert.InDelta(t, 3.5, summary.OverallGpa4, 1e-9)
	assert.InDelta(t, 77.0, summary.OverallPercentage, 1e-9)
}

func TestGradeToGpa4(t *testing.T) {
	assert.Equal(t, 4.0, gradeToGpa4(100))
	assert.Equal(t, 4.0, gradeToGpa4(80))
	assert.Equal(t, 3.0, gradeToGpa4(79.9))
	assert.Equal(t, 3.0, gradeToGpa4(70))
	assert.Equal(t, 2.0, gradeToGpa4(69))
	assert.Equal(t, 2.0, gradeToGpa4(60))
	assert.Equal(t, 0.0, gradeToGpa4(59.9))
	assert.Equal(t, 0.0, gradeToGpa4(0))
}

func TestNormalizeCourses(t *testing.T) {
	courses := normalizeCourses([]models.TranscriptCourse{
		{Name: "微積分", Credits: 3, OriginalGrade: "85"},
		{Name: "專題", Credits: 2, OriginalGrade: "優"},
		{Name: "統計", Credits: 3, OriginalGrade: "72", Gpa4: 3.0, Percentage: 72},
	})

	assert.Equal(t, 85.0, courses[0].Percentage)
	assert.Equal(t, 4.0, courses[0].Gpa4)
	// Non-numeric grades stay untouched for the consultant to fill in.
	assert.Equal(t, 0.0, courses[1].Percentage)
	assert.Equal(t, 0.0, courses[1].Gpa4)
	// Already-filled rows are not overwritten.
	assert.Equal(t, 3.0, courses[2].Gpa4)
}
