package model

import "time"

// Candidate roles double as competition stages: a candidate may only take
// exams whose stage matches their current role.
const (
	CandidateRoleScreening = "screening"
	CandidateRoleLeague    = "league"
	CandidateRoleFinal     = "final"
	CandidateRoleWinner    = "winner"
)

var CandidateRoles = []string{
	CandidateRoleScreening,
	CandidateRoleLeague,
	CandidateRoleFinal,
	CandidateRoleWinner,
}

type Candidate struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex"`
	User       User      `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Phone      string    `json:"phone" gorm:"size:20"`
	School     string    `json:"school" gorm:"size:150"`
	Role       string    `json:"role" gorm:"size:15;default:'screening';index"`
	IsVerified bool      `json:"is_verified" gorm:"default:false"`
	IsActive   bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt  time.Time `json:"date_created"`
	UpdatedAt  time.Time `json:"date_updated"`

	Scores []CandidateScore `json:"scores,omitempty" gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE"`
}

func ValidCandidateRole(role string) bool {
	for _, r := range CandidateRoles {
		if r == role {
			return true
		}
	}
	return false
}
