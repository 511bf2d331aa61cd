package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// School institution types.
const (
	SchoolTypeGraduate   = "Graduate School"
	SchoolTypeUniversity = "University"
	SchoolTypeHighSchool = "High School"
	SchoolTypeLanguage   = "Language School"
)

// SchoolRequirements holds the free-text admission requirements as they
// appear in partner material, e.g. "3.5+" or "92 (min)". No numeric
// validation happens at write time; values are parsed at read time by the
// score filter.
type SchoolRequirements struct {
	Gpa   string `json:"gpa,omitempty"`
	Toefl string `json:"toefl,omitempty"`
	Ielts string `json:"ielts,omitempty"`
	Sat   string `json:"sat,omitempty"`
	Other string `json:"other,omitempty"`
}

// School represents one institution in the partner database.
type School struct {
	gorm.Model
	Name          string                                   `json:"name" gorm:"not null"`
	Location      string                                   `json:"location"`
	Country       string                                   `json:"country"`
	Type          string                                   `json:"type" gorm:"type:varchar(50);default:'University'"`
	Programs      datatypes.JSONSlice[string]              `json:"programs"`
	Department    string                                   `json:"department,omitempty"`
	QsRanking     *int                                     `json:"qsRanking,omitempty"`
	UsNewsRanking *int                                     `json:"usNewsRanking,omitempty"`
	TuitionRange  string                                   `json:"tuitionRange"`
	Requirements  datatypes.JSONType[SchoolRequirements]   `json:"requirements"`
	Tags          datatypes.JSONSlice[string]              `json:"tags"`
	Description   string                                   `json:"description,omitempty" gorm:"type:text"`
	IsPartner     bool                                     `json:"isPartner"`
}
