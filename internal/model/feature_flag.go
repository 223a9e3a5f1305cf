package model

import "time"

// Feature flag keys used across the service.
const (
	FlagLeaderboardOpen           = "leaderboard_open"
	FlagCandidateRegistrationOpen = "candidate_registration_open"
	FlagStaffRegistrationOpen     = "staff_registration_open"
)

// FeatureFlag is a persisted boolean switch. Reads always hit the store so
// that toggles take effect across processes without a redeploy.
type FeatureFlag struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Key       string    `json:"key" gorm:"size:64;not null;uniqueIndex"`
	Value     bool      `json:"value" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at"`
}
