package model

import "time"

const (
	StaffRoleOwner     = "owner"
	StaffRoleAdmin     = "admin"
	StaffRoleModerator = "moderator"
	StaffRoleSponsor   = "sponsor"
	StaffRoleVolunteer = "volunteer"
)

var StaffRoles = []string{
	StaffRoleOwner,
	StaffRoleAdmin,
	StaffRoleModerator,
	StaffRoleSponsor,
	StaffRoleVolunteer,
}

type Staff struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex"`
	User       User      `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Phone      string    `json:"phone" gorm:"size:20"`
	Occupation string    `json:"occupation" gorm:"size:50"`
	Role       string    `json:"role" gorm:"size:20;default:'volunteer';index"`
	IsVerified bool      `json:"is_verified" gorm:"default:false"`
	IsActive   bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt  time.Time `json:"date_created"`
	UpdatedAt  time.Time `json:"date_updated"`
}

// HasRole reports whether the staff member holds one of the given roles.
func (s *Staff) HasRole(roles ...string) bool {
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}

func ValidStaffRole(role string) bool {
	for _, r := range StaffRoles {
		if r == role {
			return true
		}
	}
	return false
}
