package models

import "gorm.io/gorm"

// User represents a consultancy staff account.
type User struct {
	gorm.Model
	Login    string `json:"login" gorm:"unique;not null"`
	Password string `json:"-" gorm:"not null"`
	FullName string `json:"fullName"`
	PhotoURL string `json:"photoUrl"`
	Role     string `json:"role" gorm:"type:varchar(50);default:'consultant'"` // 'admin' or 'consultant'
}

// UserResponse is the trimmed user representation returned by the API.
type UserResponse struct {
	ID       uint   `json:"ID"`
	Login    string `json:"login"`
	FullName string `json:"fullName"`
	PhotoURL string `json:"photoUrl"`
	Role     string `json:"role"`
}
