package model

import "time"

type SkillCategory struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;not null"`
	Icon        string
	Description string
	Items       []string `gorm:"serializer:json"`
	SortOrder   int      `gorm:"not null"`
	UpdatedAt   time.Time
}

func (SkillCategory) TableName() string {
	return "skill_categories"
}
