package model

import (
	"time"

	"gorm.io/datatypes"
)

// LeaderboardSnapshot is an immutable point-in-time copy of the ranked league
// standings. Loading the leaderboard always returns the newest snapshot
// verbatim; staff must re-publish to refresh it.
type LeaderboardSnapshot struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	Data          datatypes.JSON `json:"data" gorm:"not null"`
	PublishedByID *uint          `json:"published_by"`
	PublishedBy   *Staff         `json:"-" gorm:"foreignKey:PublishedByID;constraint:OnDelete:SET NULL"`
	CreatedAt     time.Time      `json:"created_at" gorm:"index"`
}
