package model

import "time"

type SiteMetadata struct {
	ID                uint   `gorm:"primaryKey"`
	Title             string `gorm:"not null"`
	Description       string
	URL               string
	Image             *string
	Keywords          []string `gorm:"serializer:json"`
	ProjectCategories []string `gorm:"serializer:json"`
	UpdatedAt         time.Time
}

func (SiteMetadata) TableName() string {
	return "site_metadata"
}
