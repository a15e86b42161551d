package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SocialLinks holds the profile's external social accounts
type SocialLinks struct {
	Github   string `json:"github"`
	Linkedin string `json:"linkedin"`
	Twitter  string `json:"twitter"`
}

// Profile represents the site owner. The store holds at most one row;
// admin writes replace the whole collection.
type Profile struct {
	ID       uuid.UUID                       `json:"id" gorm:"type:uuid;primaryKey;not null"`
	Name     string                          `json:"name" gorm:"type:text;not null"`
	Title    string                          `json:"title" gorm:"type:text"`
	Bio      string                          `json:"bio" gorm:"type:text"`
	Email    string                          `json:"email" gorm:"type:text"`
	Phone    string                          `json:"phone" gorm:"type:text"`
	Location string                          `json:"location" gorm:"type:text"`
	Image    string                          `json:"image" gorm:"type:text"`
	Social   datatypes.JSONType[SocialLinks] `json:"social"`
}
