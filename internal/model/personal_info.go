package model

import "time"

// SingletonID is the fixed primary key shared by all single-row tables.
// Upserts always target this id so the table can never grow past one row.
const SingletonID = 1

type PersonalInfo struct {
	ID               uint   `gorm:"primaryKey"`
	Name             string `gorm:"not null"`
	Role             string
	Tagline          string
	Description      string
	AboutDescription string
	Email            string
	Location         string
	Availability     string
	ImageURL         *string
	ResumeURL        *string
	UpdatedAt        time.Time
}

func (PersonalInfo) TableName() string {
	return "personal_info"
}
