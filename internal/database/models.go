package database

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StateSnapshot is the single-row home of the persisted state tree when the
// gorm state driver is selected. Key is the storage key; Data holds the
// whole serialized tree, replaced wholesale on every mutation.
type StateSnapshot struct {
	gorm.Model
	Key  string         `gorm:"uniqueIndex;size:64"`
	Data datatypes.JSON `gorm:"type:jsonb"`
}
