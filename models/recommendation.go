package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Recommendation risk levels.
const (
	RiskLevelDream  = "DREAM"
	RiskLevelMatch  = "MATCH"
	RiskLevelSafety = "SAFETY"
)

// RecommendationEntry is one school row on a recommendation sheet.
type RecommendationEntry struct {
	RiskLevel             string `json:"riskLevel"`
	NameCN                string `json:"nameCN"`
	NameEN                string `json:"nameEN"`
	DeptEN                string `json:"deptEN"`
	Ranking               string `json:"ranking"`
	Location              string `json:"location"`
	IsSTEM                bool   `json:"isSTEM"`
	ReqGPA                string `json:"reqGPA"`
	ReqLanguage           string `json:"reqLanguage"`
	ReqStandard           string `json:"reqStandard"`
	IsStandardNotRequired bool   `json:"isStandardNotRequired"`
	Description           string `json:"description"`
}

// RecommendationSheet is a saved school-selection proposal for one student.
// The rendered image is produced on the client; only the data lives here.
type RecommendationSheet struct {
	gorm.Model
	StudentName  string                                   `json:"studentName"`
	Gpa          string                                   `json:"gpa"`
	Language     string                                   `json:"language"`
	Standardized string                                   `json:"standardized"`
	Entries      datatypes.JSONSlice[RecommendationEntry] `json:"entries"`
}
