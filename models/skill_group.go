package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SkillGroup is a named category with an ordered list of skill names.
// Ordering within a group is preserved; ordering across groups is not.
type SkillGroup struct {
	ID       uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey;not null"`
	Category string                      `json:"category" gorm:"type:text;not null"`
	Items    datatypes.JSONSlice[string] `json:"items"`
}
