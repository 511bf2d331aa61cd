package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TranscriptCourse is one recognized course row. All fields stay freely
// editable after recognition; the report totals are recomputed from the full
// course list on every change.
type TranscriptCourse struct {
	Name          string  `json:"name"`
	Credits       float64 `json:"credits"`
	OriginalGrade string  `json:"originalGrade"`
	Gpa4          float64 `json:"gpa4"`
	Percentage    float64 `json:"percentage"`
}

// TranscriptSummary holds the credit-weighted aggregates over the included
// courses of a report.
type TranscriptSummary struct {
	TotalCredits      float64 `json:"totalCredits"`
	OverallGpa4       float64 `json:"overallGpa4"`
	OverallPercentage float64 `json:"overallPercentage"`
}

// TranscriptReport is a saved conversion result for one student.
type TranscriptReport struct {
	gorm.Model
	StudentName       string                                `json:"studentName"`
	University        string                                `json:"university"`
	Courses           datatypes.JSONSlice[TranscriptCourse] `json:"courses"`
	TotalCredits      float64                               `json:"totalCredits"`
	OverallGpa4       float64                               `json:"overallGpa4"`
	OverallPercentage float64                               `json:"overallPercentage"`
}
