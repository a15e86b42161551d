package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project represents a portfolio project with metadata
type Project struct {
	ID           uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey;not null"`
	Title        string                      `json:"title" gorm:"type:text;not null"`
	Description  string                      `json:"description" gorm:"type:text"`
	Category     string                      `json:"category" gorm:"type:text"`
	Image        string                      `json:"image" gorm:"type:text"`
	Technologies datatypes.JSONSlice[string] `json:"technologies"`
	Link         string                      `json:"link" gorm:"type:text"`
	Github       string                      `json:"github" gorm:"type:text"`
	Featured     bool                        `json:"featured" gorm:"not null;default:false"`
}
