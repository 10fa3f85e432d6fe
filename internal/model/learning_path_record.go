package model

import (
	"time"

	"gorm.io/datatypes"
)

// LearningPathRecord is the SQL row for a persisted LearningPath. The full
// path is kept in Document; the other columns exist for listing and ops queries.
type LearningPathRecord struct {
	ID         string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	PathTitle  string         `gorm:"size:255" json:"pathTitle"`
	TotalWeeks int            `json:"totalWeeks"`
	TotalHours float64        `json:"totalHours"`
	Document   datatypes.JSON `gorm:"not null" json:"document"`
	CreatedAt  time.Time      `gorm:"index" json:"createdAt"`
}

func (LearningPathRecord) TableName() string {
	return "learning_paths"
}
