package model

import "time"

type Education struct {
	ID          uint   `gorm:"primaryKey"`
	Institution string `gorm:"not null"`
	Degree      string
	Period      string
	Status      string
	Description string
	Skills      []string `gorm:"serializer:json"`
	SortOrder   int      `gorm:"not null"`
	UpdatedAt   time.Time
}

func (Education) TableName() string {
	return "education"
}
