package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Announcement categories.
const (
	AnnouncementCategoryPartner    = "PARTNER"    // partner vendor information
	AnnouncementCategoryInternal   = "INTERNAL"   // internal company notice
	AnnouncementCategoryRules      = "RULES"      // application rule changes
	AnnouncementCategoryActivities = "ACTIVITIES" // latest agency activities
)

// AnnouncementCategoryLabels maps category codes to the display labels used
// in the outbound webhook notification.
var AnnouncementCategoryLabels = map[string]string{
	AnnouncementCategoryPartner:    "合作廠商資訊",
	AnnouncementCategoryInternal:   "公司內部公告",
	AnnouncementCategoryRules:      "申請規則異動",
	AnnouncementCategoryActivities: "放洋最新活動",
}

// Announcement is one board post.
type Announcement struct {
	gorm.Model
	Title    string                      `json:"title" gorm:"not null"`
	Category string                      `json:"category" gorm:"type:varchar(50);default:'INTERNAL'"`
	Content  string                      `json:"content" gorm:"type:text;not null"`
	Author   string                      `json:"author,omitempty"`
	ImageUrl string                      `json:"imageUrl,omitempty"`
	Tags     datatypes.JSONSlice[string] `json:"tags"`
}
