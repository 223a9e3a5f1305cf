package auth

import (
	"testing"

	"github.com/joseph-ezekiel/verboheit-mlc/internal/model"
)

func TestPrincipalRoleGates(t *testing.T) {
	tests := []struct {
		name            string
		principal       Principal
		candidate       bool
		staff           bool
		leagueOrStaff   bool
		adminRoleChecks bool
	}{
		{
			name:      "plain user with no profile",
			principal: Principal{User: &model.User{ID: 1}},
		},
		{
			name: "screening candidate",
			principal: Principal{
				User:      &model.User{ID: 1},
				Candidate: &model.Candidate{Role: model.CandidateRoleScreening, IsActive: true},
			},
			candidate: true,
		},
		{
			name: "league candidate",
			principal: Principal{
				User:      &model.User{ID: 1},
				Candidate: &model.Candidate{Role: model.CandidateRoleLeague, IsActive: true},
			},
			candidate:     true,
			leagueOrStaff: true,
		},
		{
			name: "deactivated candidate",
			principal: Principal{
				User:      &model.User{ID: 1},
				Candidate: &model.Candidate{Role: model.CandidateRoleLeague, IsActive: false},
			},
		},
		{
			name: "volunteer staff",
			principal: Principal{
				User:  &model.User{ID: 2},
				Staff: &model.Staff{Role: model.StaffRoleVolunteer, IsActive: true},
			},
			staff: true,
		},
		{
			name: "admin staff",
			principal: Principal{
				User:  &model.User{ID: 2},
				Staff: &model.Staff{Role: model.StaffRoleAdmin, IsActive: true},
			},
			staff:           true,
			leagueOrStaff:   true,
			adminRoleChecks: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.principal.IsCandidate(); got != tt.candidate {
				t.Errorf("IsCandidate() = %v, want %v", got, tt.candidate)
			}
			if got := tt.principal.IsStaff(); got != tt.staff {
				t.Errorf("IsStaff() = %v, want %v", got, tt.staff)
			}
			if got := tt.principal.IsLeagueCandidateOrStaff(); got != tt.leagueOrStaff {
				t.Errorf("IsLeagueCandidateOrStaff() = %v, want %v", got, tt.leagueOrStaff)
			}
			if got := tt.principal.HasStaffRole(model.StaffRoleAdmin, model.StaffRoleOwner); got != tt.adminRoleChecks {
				t.Errorf("HasStaffRole(admin, owner) = %v, want %v", got, tt.adminRoleChecks)
			}
		})
	}
}
