package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Yofukashi625/fangyang-wiki-app/config"
	"github.com/Yofukashi625/fangyang-wiki-app/models"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"gorm.io/datatypes"
)

// fallbackAnswer is returned whenever the model output cannot be used.
const fallbackAnswer = "系統暫時無法處理您的請求，請稍後再試。"

type ChatInput struct {
	Question string `json:"question" binding:"required"`
}

// chatResult mirrors the JSON response schema of the knowledge-base call.
type chatResult struct {
	Answer     string            `json:"answer"`
	Sources    []models.Citation `json:"sources"`
	Confidence string            `json:"confidence"`
}

var chatResponseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"answer": {Type: genai.TypeString},
		"sources": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"id":    {Type: genai.TypeString},
					"title": {Type: genai.TypeString},
					"type": {
						Type: genai.TypeString,
						Enum: []string{models.CitationTypeSchool, models.CitationTypeWiki, models.CitationTypeAnnouncement},
					},
				},
			},
		},
		"confidence": {
			Type: genai.TypeString,
			Enum: []string{models.ConfidenceHigh, models.ConfidenceMedium, models.ConfidenceLow},
		},
	},
}

const assistantSystemInstruction = `You are "FangYang Nexus AI", an advanced assistant for study abroad consultants.
Your users are consultants.

Your Role:
1. Answer questions about schools, application processes (US/UK/CA/AU), terminology, and sales scripts.
2. Use the provided CONTEXT strictly to answer.
3. If the answer is found in the CONTEXT, you MUST cite the source ID and Title.
4. Tone: Professional, helpful, encouraging. Use Traditional Chinese (Taiwan).`

// buildKnowledgeContext flattens the school, wiki and announcement
// collections into the context blob the model answers from.
func buildKnowledgeContext(schools []models.School, articles []models.WikiArticle, announcements []models.Announcement) string {
	var b strings.Builder

	b.WriteString("=== SCHOOL DATABASE ===\n")
	for _, s := range schools {
		reqs, _ := json.Marshal(s.Requirements.Data())
		fmt.Fprintf(&b, "[ID: %d, Type: SCHOOL] Name: %s, Country: %s, Location: %s, Programs: %s, Tuition: %s, Req: %s, Tags: %s\n",
			s.ID, s.Name, s.Country, s.Location, strings.Join(s.Programs, ", "), s.TuitionRange, reqs, strings.Join(s.Tags, ", "))
	}

	b.WriteString("\n=== WIKI ARTICLES ===\n")
	collapseNewlines := strings.NewReplacer("\r", " ", "\n", " ")
	for _, w := range articles {
		fmt.Fprintf(&b, "[ID: %d, Type: WIKI] Title: %s, Category: %s, Content: %s\n",
			w.ID, w.Title, w.Category, collapseNewlines.Replace(w.Content))
	}

	b.WriteString("\n=== ANNOUNCEMENTS ===\n")
	for _, a := range announcements {
		fmt.Fprintf(&b, "[ID: %d, Type: ANNOUNCEMENT] Title: %s, Category: %s, Content: %s\n",
			a.ID, a.Title, a.Category, collapseNewlines.Replace(a.Content))
	}

	return b.String()
}

// ChatHandler answers one consultant question from the knowledge base. The
// user turn and the model turn are both persisted. A malformed or failed
// model response degrades to a fixed low-confidence answer, never an error.
func ChatHandler(c *gin.Context) {
	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	userID, _ := c.Get("user_id")
	currentUserID, _ := userID.(uint)

	userMsg := models.AssistantMessage{
		UserID: currentUserID,
		Role:   "user",
		Text:   input.Question,
	}
	if err := config.DB.Create(&userMsg).Error; err != nil {
		slog.Error("Failed to save user chat message", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
		return
	}

	var schools []models.School
	var articles []models.WikiArticle
	var announcements []models.Announcement
	// Read failures degrade to an empty context rather than aborting the
	// chat; the model will simply answer with low confidence.
	if err := config.DB.Find(&schools).Error; err != nil {
		slog.Error("Failed to load school context for chat", "error", err)
	}
	if err := config.DB.Find(&articles).Error; err != nil {
		slog.Error("Failed to load wiki context for chat", "error", err)
	}
	if err := config.DB.Find(&announcements).Error; err != nil {
		slog.Error("Failed to load announcement context for chat", "error", err)
	}

	prompt := fmt.Sprintf("%s\n\nCONTEXT DATABASE:\n%s\n\nUSER QUESTION:\n%s\n\nOutput JSON with: answer (the response text), sources (array of {id, title, type} used to answer) and confidence (HIGH, MEDIUM or LOW).",
		assistantSystemInstruction,
		buildKnowledgeContext(schools, articles, announcements),
		input.Question)

	result := chatResult{Answer: fallbackAnswer, Sources: []models.Citation{}, Confidence: models.ConfidenceLow}
	jsonResponse, err := generateJSON(c.Request.Context(), chatResponseSchema, genai.Text(prompt))
	if err != nil {
		slog.Error("Gemini chat call failed", "error", err, "user_id", currentUserID)
	} else if err := json.Unmarshal(jsonResponse, &result); err != nil {
		slog.Error("Gemini returned malformed chat JSON", "error", err)
		result = chatResult{Answer: fallbackAnswer, Sources: []models.Citation{}, Confidence: models.ConfidenceLow}
	}
	if result.Answer == "" {
		result.Answer = fallbackAnswer
		result.Confidence = models.ConfidenceLow
	}

	modelMsg := models.AssistantMessage{
		UserID:     currentUserID,
		Role:       "model",
		Text:       result.Answer,
		Citations:  datatypes.NewJSONSlice(result.Sources),
		Confidence: result.Confidence,
	}
	if err := config.DB.Create(&modelMsg).Error; err != nil {
		slog.Error("Failed to save model chat message", "error", err)
	}

	c.JSON(http.StatusOK, modelMsg)
}

// ListMessagesHandler returns the chat history of the current user with
// pagination, oldest first within the page.
func ListMessagesHandler(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var total int64
	config.DB.Model(&models.AssistantMessage{}).Where("user_id = ?", userID).Count(&total)

	page, pageSize := pageParams(c)
	totalPages := 1
	if total > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	page = clampPage(page, totalPages)

	var messages []models.AssistantMessage
	err := config.DB.Where("user_id = ?", userID).
		Order("created_at ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&messages).Error
	if err != nil {
		slog.Error("Failed to fetch chat messages", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}
	if messages == nil {
		messages = make([]models.AssistantMessage, 0)
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(messages, total, page, totalPages, pageSize))
}

type FeedbackInput struct {
	Feedback string `json:"feedback" binding:"required,oneof=positive negative"`
}

// MessageFeedbackHandler records a thumbs up / down vote on a model answer.
func MessageFeedbackHandler(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var input FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var msg models.AssistantMessage
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&msg).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	if msg.Role != "model" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Feedback applies to model messages only"})
		return
	}

	msg.Feedback = input.Feedback
	if err := config.DB.Save(&msg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save feedback"})
		return
	}
	c.JSON(http.StatusOK, msg)
}

// ResolveCitationHandler looks up the entity behind a citation. The id
// lookup is tried first; when it fails and a title is supplied, an exact
// title match is accepted as a fallback. The response names which key
// matched so broken ids stay observable.
func ResolveCitationHandler(c *gin.Context) {
	citationType := strings.ToUpper(c.Param("type"))
	id := c.Param("id")
	title := c.Query("title")

	var entity interface{}
	matchedBy := "id"

	switch citationType {
	case models.CitationTypeSchool:
		var school models.School
		if err := config.DB.First(&school, "id = ?", id).Error; err == nil {
			entity = school
		} else if title != "" {
			if err := config.DB.Where("name = ?", title).First(&school).Error; err == nil {
				entity = school
				matchedBy = "title"
			}
		}
	case models.CitationTypeWiki:
		var article models.WikiArticle
		if err := config.DB.First(&article, "id = ?", id).Error; err == nil {
			entity = article
		} else if title != "" {
			if err := config.DB.Where("title = ?", title).First(&article).Error; err == nil {
				entity = article
				matchedBy = "title"
			}
		}
	case models.CitationTypeAnnouncement:
		var announcement models.Announcement
		if err := config.DB.First(&announcement, "id = ?", id).Error; err == nil {
			entity = announcement
		} else if title != "" {
			if err := config.DB.Where("title = ?", title).First(&announcement).Error; err == nil {
				entity = announcement
				matchedBy = "title"
			}
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown citation type"})
		return
	}

	if entity == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cited source not found"})
		return
	}
	if matchedBy == "title" {
		slog.Warn("Citation resolved by title fallback", "type", citationType, "id", id, "title", title)
	}
	c.JSON(http.StatusOK, gin.H{"matchedBy": matchedBy, "data": entity})
}
