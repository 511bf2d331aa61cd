package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Yofukashi625/fangyang-wiki-app/config"
	"github.com/Yofukashi625/fangyang-wiki-app/models"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// A sheet carries between one and five school entries.
const maxRecommendationEntries = 5

// RecommendationSheetInput is the payload for creating or updating a
// recommendation sheet.
type RecommendationSheetInput struct {
	StudentName  string                       `json:"studentName" binding:"required"`
	Gpa          string                       `json:"gpa"`
	Language     string                       `json:"language"`
	Standardized string                       `json:"standardized"`
	Entries      []models.RecommendationEntry `json:"entries" binding:"required"`
}

func validateEntries(entries []models.RecommendationEntry) string {
	if len(entries) == 0 {
		return "A sheet must have at least one school entry"
	}
	if len(entries) > maxRecommendationEntries {
		return "A sheet can hold at most 5 school entries"
	}
	for _, e := range entries {
		switch e.RiskLevel {
		case models.RiskLevelDream, models.RiskLevelMatch, models.RiskLevelSafety:
		default:
			return "Entry risk level must be DREAM, MATCH or SAFETY"
		}
	}
	return ""
}

// ListRecommendationSheetsHandler returns saved sheets, newest first.
func ListRecommendationSheetsHandler(c *gin.Context) {
	var sheets []models.RecommendationSheet
	if err := config.DB.Order("created_at DESC").Find(&sheets).Error; err != nil {
		slog.Error("Failed to fetch recommendation sheets", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch sheets"})
		return
	}
	if sheets == nil {
		sheets = make([]models.RecommendationSheet, 0)
	}
	c.JSON(http.StatusOK, sheets)
}

// GetRecommendationSheetHandler returns one sheet.
func GetRecommendationSheetHandler(c *gin.Context) {
	var sheet models.RecommendationSheet
	if err := config.DB.First(&sheet, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sheet not found"})
		return
	}
	c.JSON(http.StatusOK, sheet)
}

// CreateRecommendationSheetHandler saves a new sheet.
func CreateRecommendationSheetHandler(c *gin.Context) {
	var input RecommendationSheetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if msg := validateEntries(input.Entries); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	sheet := models.RecommendationSheet{
		StudentName:  input.StudentName,
		Gpa:          input.Gpa,
		Language:     input.Language,
		Standardized: input.Standardized,
		Entries:      datatypes.NewJSONSlice(input.Entries),
	}
	if err := config.DB.Create(&sheet).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save sheet: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sheet)
}

// UpdateRecommendationSheetHandler replaces the fields of a sheet.
func UpdateRecommendationSheetHandler(c *gin.Context) {
	var sheet models.RecommendationSheet
	if err := config.DB.First(&sheet, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sheet not found"})
		return
	}

	var input RecommendationSheetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if msg := validateEntries(input.Entries); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	sheet.StudentName = input.StudentName
	sheet.Gpa = input.Gpa
	sheet.Language = input.Language
	sheet.Standardized = input.Standardized
	sheet.Entries = datatypes.NewJSONSlice(input.Entries)
	if err := config.DB.Save(&sheet).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sheet"})
		return
	}
	c.JSON(http.StatusOK, sheet)
}

// DeleteRecommendationSheetHandler removes a sheet.
func DeleteRecommendationSheetHandler(c *gin.Context) {
	var sheet models.RecommendationSheet
	if err := config.DB.First(&sheet, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sheet not found"})
		return
	}
	if err := config.DB.Delete(&sheet).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sheet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sheet deleted successfully"})
}
