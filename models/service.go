package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Service is an offered service with a display price (free-form string,
// e.g. "from $500") and a list of included features.
type Service struct {
	ID          uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey;not null"`
	Title       string                      `json:"title" gorm:"type:text;not null"`
	Description string                      `json:"description" gorm:"type:text"`
	Price       string                      `json:"price" gorm:"type:text"`
	Features    datatypes.JSONSlice[string] `json:"features"`
}
