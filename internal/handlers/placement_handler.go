package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Yofukashi625/fangyang-wiki-app/config"
	"github.com/Yofukashi625/fangyang-wiki-app/models"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
)

// PlacementInput is the student profile submitted for school placement
// analysis.
type PlacementInput struct {
	Gpa         string `json:"gpa" binding:"required"`
	TestScores  string `json:"testScores"`
	Major       string `json:"major" binding:"required"`
	Preferences string `json:"preferences"`
	SchoolCount int    `json:"schoolCount"`
}

// PlacementResponse buckets the selected schools by risk level.
type PlacementResponse struct {
	Dream     []models.School `json:"dream"`
	Match     []models.School `json:"match"`
	Safety    []models.School `json:"safety"`
	Reasoning string          `json:"reasoning"`
}

type placementResult struct {
	DreamIds  []string `json:"dreamIds"`
	MatchIds  []string `json:"matchIds"`
	SafetyIds []string `json:"safetyIds"`
	Reasoning string   `json:"reasoning"`
}

var placementResponseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"dreamIds":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"matchIds":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"safetyIds": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"reasoning": {Type: genai.TypeString},
	},
}

// placementSchoolContext is the trimmed school view handed to the model.
type placementSchoolContext struct {
	ID       string                    `json:"id"`
	Name     string                    `json:"name"`
	Qs       *int                      `json:"qs"`
	Usnews   *int                      `json:"usnews"`
	Reqs     models.SchoolRequirements `json:"reqs"`
	Programs []string                  `json:"programs"`
}

// AnalyzePlacementHandler asks Gemini to pick dream/match/safety schools for
// a student profile out of the partner database. Returned ids are resolved
// against the database; unknown ids are silently dropped.
func AnalyzePlacementHandler(c *gin.Context) {
	var input PlacementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if input.SchoolCount <= 0 {
		input.SchoolCount = 3
	}

	var schools []models.School
	if err := config.DB.Order("created_at DESC").Find(&schools).Error; err != nil {
		slog.Error("Failed to fetch schools for placement", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch schools"})
		return
	}
	if len(schools) == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "School database is empty"})
		return
	}

	schoolContext := make([]placementSchoolContext, 0, len(schools))
	for _, s := range schools {
		schoolContext = append(schoolContext, placementSchoolContext{
			ID:       strconv.FormatUint(uint64(s.ID), 10),
			Name:     s.Name,
			Qs:       s.QsRanking,
			Usnews:   s.UsNewsRanking,
			Reqs:     s.Requirements.Data(),
			Programs: s.Programs,
		})
	}
	contextJSON, err := json.Marshal(schoolContext)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build school context"})
		return
	}

	prompt := fmt.Sprintf(`Student Profile:
- GPA: %s
- Tests: %s
- Target Major: %s
- Prefs: %s

Available Schools Database:
%s

Task:
Select EXACTLY %d schools from the database that fit the student.
Categorize them into 3 lists: Dream (Reach), Match (Target), Safety (Likely).

Rules:
1. The total number of schools across dreamIds, matchIds, and safetyIds MUST be exactly %d.
2. Only pick schools that actually exist in the provided database.
3. Distribute them logically based on the student profile.

Return JSON with dreamIds, matchIds, safetyIds and a brief reasoning in Traditional Chinese explaining the strategy.`,
		input.Gpa, input.TestScores, input.Major, input.Preferences, contextJSON, input.SchoolCount, input.SchoolCount)

	jsonResponse, err := generateJSON(c.Request.Context(), placementResponseSchema, genai.Text(prompt))
	if err != nil {
		slog.Error("Gemini placement analysis failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Placement analysis error: " + err.Error()})
		return
	}

	var result placementResult
	if err := json.Unmarshal(jsonResponse, &result); err != nil {
		slog.Error("Gemini returned malformed placement JSON", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to parse placement result"})
		return
	}

	byID := make(map[string]models.School, len(schools))
	for _, s := range schools {
		byID[strconv.FormatUint(uint64(s.ID), 10)] = s
	}

	response := PlacementResponse{
		Dream:     resolveSchoolIDs(byID, result.DreamIds),
		Match:     resolveSchoolIDs(byID, result.MatchIds),
		Safety:    resolveSchoolIDs(byID, result.SafetyIds),
		Reasoning: result.Reasoning,
	}
	if response.Reasoning == "" {
		response.Reasoning = "無法產生分析報告。"
	}

	c.JSON(http.StatusOK, response)
}

func resolveSchoolIDs(byID map[string]models.School, ids []string) []models.School {
	resolved := make([]models.School, 0, len(ids))
	for _, id := range ids {
		if school, ok := byID[id]; ok {
			resolved = append(resolved, school)
		}
	}
	return resolved
}
