package models

import "gorm.io/gorm"

// OnboardingTask is one task card in the day-1..10 training plan. The UI
// renders a single task per day slot but uniqueness is not enforced here.
type OnboardingTask struct {
	gorm.Model
	Day         int    `json:"day" gorm:"not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	Role        string `json:"role,omitempty" gorm:"type:varchar(20)"` // 'SALES' or 'ADMIN'
	IsCompleted bool   `json:"isCompleted"`
}
