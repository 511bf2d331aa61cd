package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/Yofukashi625/fangyang-wiki-app/config"
	"github.com/Yofukashi625/fangyang-wiki-app/models"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// AnnouncementInput is the payload for creating or updating an announcement.
type AnnouncementInput struct {
	Title    string   `json:"title" binding:"required"`
	Category string   `json:"category"`
	Content  string   `json:"content" binding:"required"`
	ImageUrl string   `json:"imageUrl"`
	Tags     []string `json:"tags"`
}

// ListAnnouncementsHandler returns announcements newest first, optionally
// filtered by category and a search term over title, content and tags.
func ListAnnouncementsHandler(c *gin.Context) {
	var announcements []models.Announcement
	query := config.DB.Order("created_at DESC")
	if category := c.Query("category"); category != "" && category != "ALL" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&announcements).Error; err != nil {
		slog.Error("Failed to fetch announcements from DB", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch announcements"})
		return
	}

	if term := strings.ToLower(c.Query("q")); term != "" {
		filtered := make([]models.Announcement, 0, len(announcements))
		for _, a := range announcements {
			if announcementMatches(a, term) {
				filtered = append(filtered, a)
			}
		}
		announcements = filtered
	}

	if announcements == nil {
		announcements = make([]models.Announcement, 0)
	}
	c.JSON(http.StatusOK, announcements)
}

func announcementMatches(a models.Announcement, term string) bool {
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

// CreateAnnouncementHandler adds a board post and fires the best-effort
// outbound notification.
func CreateAnnouncementHandler(c *gin.Context) {
	var input AnnouncementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	author, _ := c.Get("userName")
	authorName, _ := author.(string)

	category := input.Category
	if category == "" {
		category = models.AnnouncementCategoryInternal
	}
	announcement := models.Announcement{
		Title:    input.Title,
		Category: category,
		Content:  input.Content,
		Author:   authorName,
		ImageUrl: input.ImageUrl,
		Tags:     datatypes.NewJSONSlice(input.Tags),
	}
	if err := config.DB.Create(&announcement).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create announcement: " + err.Error()})
		return
	}

	// Notification is fire-and-forget: failure is logged and swallowed,
	// never retried, and never blocks the response.
	go notifyAnnouncement(announcement)

	c.JSON(http.StatusCreated, announcement)
}

// UpdateAnnouncementHandler replaces the editable fields of a post.
func UpdateAnnouncementHandler(c *gin.Context) {
	var announcement models.Announcement
	if err := config.DB.First(&announcement, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Announcement not found"})
		return
	}

	var input AnnouncementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	announcement.Title = input.Title
	if input.Category != "" {
		announcement.Category = input.Category
	}
	announcement.Content = input.Content
	announcement.ImageUrl = input.ImageUrl
	announcement.Tags = datatypes.NewJSONSlice(input.Tags)
	if err := config.DB.Save(&announcement).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update announcement"})
		return
	}
	c.JSON(http.StatusOK, announcement)
}

// DeleteAnnouncementHandler removes a post.
func DeleteAnnouncementHandler(c *gin.Context) {
	var announcement models.Announcement
	if err := config.DB.First(&announcement, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Announcement not found"})
		return
	}
	if err := config.DB.Delete(&announcement).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete announcement"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Announcement deleted successfully"})
}

// announcementWebhookPayload is the JSON contract of the outbound LINE
// notification endpoint (a Google Apps Script web app).
type announcementWebhookPayload struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
}

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]*>?`)
	htmlEntityRe = regexp.MustCompile(`&[a-z0-9]+;`)
)

// cleanPreview strips HTML tags and entities from rich-text content and
// truncates to the given rune count.
func cleanPreview(html string, limit int) string {
	text := htmlTagRe.ReplaceAllString(html, "")
	text = strings.ReplaceAll(text, "&nbsp;", " ")
	text = htmlEntityRe.ReplaceAllString(text, "")
	runes := []rune(strings.TrimSpace(text))
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return string(runes)
}

// notifyAnnouncement posts the new announcement to the configured webhook.
func notifyAnnouncement(a models.Announcement) {
	webhookURL := os.Getenv("ANNOUNCEMENT_WEBHOOK_URL")
	if webhookURL == "" {
		return
	}

	categoryLabel, ok := models.AnnouncementCategoryLabels[a.Category]
	if !ok {
		categoryLabel = "一般公告"
	}

	payload := announcementWebhookPayload{
		Title:    a.Title,
		Category: categoryLabel,
		Summary:  cleanPreview(a.Content, 30) + "...",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal announcement webhook payload", "error", err)
		return
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post(webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		slog.Error("Announcement webhook delivery failed", "error", err, "announcement_id", a.ID)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		slog.Error("Announcement webhook rejected", "status", resp.StatusCode, "announcement_id", a.ID)
	}
}
