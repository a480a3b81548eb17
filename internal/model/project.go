package model

import "time"

type Project struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Description string
	// Category mirrors the first entry of Categories for older readers
	// of the table. Categories is authoritative.
	Category   string
	Categories []string `gorm:"serializer:json"`
	Tags       []string `gorm:"serializer:json"`
	ImageURL   *string
	GithubURL  *string
	DemoURL    *string
	Featured   bool
	SortOrder  int `gorm:"not null"`
	UpdatedAt  time.Time
}

func (Project) TableName() string {
	return "projects"
}
