package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Wiki article categories.
const (
	WikiCategoryProcess  = "PROCESS"
	WikiCategoryFaq      = "FAQ"
	WikiCategoryGlossary = "GLOSSARY"
	WikiCategorySales    = "SALES"
	WikiCategoryContract = "CONTRACT"
	WikiCategoryPartner  = "PARTNER"
)

// WikiArticle is one knowledge-base entry. Content is an opaque rich-text
// HTML/markdown string produced by the editor on the client.
type WikiArticle struct {
	gorm.Model
	Title    string                      `json:"title" gorm:"not null"`
	Category string                      `json:"category" gorm:"type:varchar(50);default:'PROCESS'"`
	Content  string                      `json:"content" gorm:"type:text;not null"`
	Tags     datatypes.JSONSlice[string] `json:"tags"`
}
