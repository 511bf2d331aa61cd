package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Citation source types.
const (
	CitationTypeSchool       = "SCHOOL"
	CitationTypeWiki         = "WIKI"
	CitationTypeAnnouncement = "ANNOUNCEMENT"
)

// Assistant confidence levels.
const (
	ConfidenceHigh   = "HIGH"
	ConfidenceMedium = "MEDIUM"
	ConfidenceLow    = "LOW"
)

// Citation is a weak reference into the school / wiki / announcement
// collections. The id is whatever the model echoed back from the context
// blob; resolution happens by lookup at click time and may fail.
type Citation struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

// AssistantMessage is one persisted turn of the knowledge-base chat.
type AssistantMessage struct {
	gorm.Model
	UserID     uint                          `json:"userId"`
	Role       string                        `json:"role" gorm:"type:varchar(10);not null"` // 'user' or 'model'
	Text       string                        `json:"text" gorm:"type:text"`
	Citations  datatypes.JSONSlice[Citation] `json:"sources,omitempty"`
	Confidence string                        `json:"confidence,omitempty" gorm:"type:varchar(10)"`
	Feedback   string                        `json:"feedback,omitempty" gorm:"type:varchar(10)"` // 'positive' or 'negative'
}
