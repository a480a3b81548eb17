package model

import "time"

type SocialLinks struct {
	ID        uint `gorm:"primaryKey"`
	Linkedin  *string
	Github    *string
	Email     *string
	UpdatedAt time.Time
}

func (SocialLinks) TableName() string {
	return "social_links"
}
