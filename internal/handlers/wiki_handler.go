package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Yofukashi625/fangyang-wiki-app/config"
	"github.com/Yofukashi625/fangyang-wiki-app/models"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// WikiArticleInput is the payload for creating or updating an article.
// Title and content are the only save-time invariants.
type WikiArticleInput struct {
	Title    string   `json:"title" binding:"required"`
	Category string   `json:"category"`
	Content  string   `json:"content" binding:"required"`
	Tags     []string `json:"tags"`
}

// ListWikiArticlesHandler returns articles newest first, optionally filtered
// by category and a case-insensitive search over title, content and tags.
func ListWikiArticlesHandler(c *gin.Context) {
	var articles []models.WikiArticle
	query := config.DB.Order("updated_at DESC")
	if category := c.Query("category"); category != "" && category != "ALL" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&articles).Error; err != nil {
		slog.Error("Failed to fetch wiki articles from DB", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch wiki articles"})
		return
	}

	if term := strings.ToLower(c.Query("q")); term != "" {
		filtered := make([]models.WikiArticle, 0, len(articles))
		for _, a := range articles {
			if wikiMatches(a, term) {
				filtered = append(filtered, a)
			}
		}
		articles = filtered
	}

	if articles == nil {
		articles = make([]models.WikiArticle, 0)
	}
	c.JSON(http.StatusOK, articles)
}

func wikiMatches(a models.WikiArticle, term string) bool {
	if strings.Contains(strings.ToLower(a.Title), term) ||
		strings.Contains(strings.ToLower(a.Content), term) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// GetWikiArticleHandler returns one article by id.
func GetWikiArticleHandler(c *gin.Context) {
	var article models.WikiArticle
	if err := config.DB.First(&article, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}
	c.JSON(http.StatusOK, article)
}

// CreateWikiArticleHandler adds a knowledge-base article.
func CreateWikiArticleHandler(c *gin.Context) {
	var input WikiArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	category := input.Category
	if category == "" {
		category = models.WikiCategoryProcess
	}
	article := models.WikiArticle{
		Title:    input.Title,
		Category: category,
		Content:  input.Content,
		Tags:     datatypes.NewJSONSlice(input.Tags),
	}
	if err := config.DB.Create(&article).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create article: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, article)
}

// UpdateWikiArticleHandler replaces the editable fields of an article.
func UpdateWikiArticleHandler(c *gin.Context) {
	var article models.WikiArticle
	if err := config.DB.First(&article, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	var input WikiArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	article.Title = input.Title
	if input.Category != "" {
		article.Category = input.Category
	}
	article.Content = input.Content
	article.Tags = datatypes.NewJSONSlice(input.Tags)
	if err := config.DB.Save(&article).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update article"})
		return
	}
	c.JSON(http.StatusOK, article)
}

// DeleteWikiArticleHandler removes an article.
func DeleteWikiArticleHandler(c *gin.Context) {
	var article models.WikiArticle
	if err := config.DB.First(&article, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}
	if err := config.DB.Delete(&article).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete article"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Article deleted successfully"})
}
