package auth

import "github.com/joseph-ezekiel/verboheit-mlc/internal/model"

// Principal is the resolved caller of a request: always a user, plus at most
// one of the two profiles. Handlers read roles from here instead of hitting
// the database again.
type Principal struct {
	User      *model.User
	Candidate *model.Candidate
	Staff     *model.Staff
}

func (p *Principal) IsCandidate() bool {
	return p.Candidate != nil && p.Candidate.IsActive
}

func (p *Principal) IsStaff() bool {
	return p.Staff != nil && p.Staff.IsActive
}

func (p *Principal) HasStaffRole(roles ...string) bool {
	return p.IsStaff() && p.Staff.HasRole(roles...)
}

// IsLeagueCandidateOrStaff gates the leaderboard read: league candidates and
// moderator-or-above staff may see it.
func (p *Principal) IsLeagueCandidateOrStaff() bool {
	if p.IsCandidate() && p.Candidate.Role == model.CandidateRoleLeague {
		return true
	}
	return p.HasStaffRole(model.StaffRoleModerator, model.StaffRoleAdmin, model.StaffRoleOwner)
}
