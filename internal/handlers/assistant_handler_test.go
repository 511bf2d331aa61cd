package handlers

import (
	"testing"

	"github.com/Yofukashi625/fangyang-wiki-app/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestBuildKnowledgeContext(t *testing.T) {
	schools := []models.School{
		{
			Model:        gorm.Model{ID: 7},
			Name:         "University of Washington",
			Country:      "USA",
			Location:     "Seattle, WA",
			Programs:     datatypes.NewJSONSlice([]string{"CS", "Business"}),
			TuitionRange: "$40k-$60k",
			Requirements: datatypes.NewJSONType(models.SchoolRequirements{Gpa: "3.5+", Toefl: "92"}),
			Tags:         datatypes.NewJSONSlice([]string{"STEM"}),
		},
	}
	articles := []models.WikiArticle{
		{
			Model:    gorm.Model{ID: 3},
			Title:    "I-20 申請流程",
			Category: models.WikiCategoryProcess,
			Content:  "第一步\n準備財力證明",
		},
	}
	announcements := []models.Announcement{
		{
			Model:    gorm.Model{ID: 5},
			Title:    "新合作學校",
			Category: models.AnnouncementCategoryPartner,
			Content:  "本月新增三所合作學校",
		},
	}

	ctx := buildKnowledgeContext(schools, articles, announcements)

	assert.Contains(t, ctx, "=== SCHOOL DATABASE ===")
	assert.Contains(t, ctx, "[ID: 7, Type: SCHOOL] Name: University of Washington")
	assert.Contains(t, ctx, "Programs: CS, Business")
	assert.Contains(t, ctx, `"gpa":"3.5+"`)

	assert.Contains(t, ctx, "=== WIKI ARTICLES ===")
	assert.Contains(t, ctx, "[ID: 3, Type: WIKI] Title: I-20 申請流程")
	// Newlines inside article bodies are flattened so one line stays one source.
	assert.Contains(t, ctx, "第一步 準備財力證明")

	assert.Contains(t, ctx, "=== ANNOUNCEMENTS ===")
	assert.Contains(t, ctx, "[ID: 5, Type: ANNOUNCEMENT] Title: 新合作學校")
}

func TestBuildKnowledgeContextEmpty(t *testing.T) {
	ctx := buildKnowledgeContext(nil, nil, nil)
	// Section headers survive so the model sees an explicitly empty base.
	assert.Contains(t, ctx, "=== SCHOOL DATABASE ===")
	assert.Contains(t, ctx, "=== WIKI ARTICLES ===")
	assert.Contains(t, ctx, "=== ANNOUNCEMENTS ===")
}
