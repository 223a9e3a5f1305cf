package service

import (
	"errors"
	"testing"
	"time"

	"github.com/joseph-ezekiel/verboheit-mlc/internal/auth"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/dto"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/model"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/repository"
	"gorm.io/gorm"
)

func newAccountService(db *gorm.DB) (AccountService, FlagService) {
	flags := NewFlagService(repository.NewFlagRepository(db))
	svc := NewAccountService(
		repository.NewUserRepository(db),
		repository.NewCandidateRepository(db),
		repository.NewStaffRepository(db),
		auth.NewTokenService("test-secret", 15*time.Minute, 24*time.Hour),
		flags,
		db,
	)
	return svc, flags
}

func registration(username string) dto.CandidateRegisterDTO {
	return dto.CandidateRegisterDTO{
		Username:  username,
		Email:     username + "@example.com",
		FirstName: "Ada",
		LastName:  "Obi",
		Password:  "correct-horse",
		School:    "Test High",
	}
}

func TestRegisterCandidateAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newAccountService(db)

	candidate, err := svc.RegisterCandidate(registration("ada"))
	if err != nil {
		t.Fatalf("RegisterCandidate: %v", err)
	}
	if candidate.Role != model.CandidateRoleScreening {
		t.Errorf("new candidate role = %q, want screening", candidate.Role)
	}

	pair, err := svc.Login(dto.LoginDTO{Username: "ada", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if pair.Access == "" || pair.Refresh == "" {
		t.Error("login returned an incomplete token pair")
	}

	refreshed, err := svc.Refresh(pair.Refresh)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if refreshed.Access == "" {
		t.Error("refresh returned an empty access token")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newAccountService(db)
	if _, err := svc.RegisterCandidate(registration("bisi")); err != nil {
		t.Fatalf("RegisterCandidate: %v", err)
	}

	_, err := svc.Login(dto.LoginDTO{Username: "bisi", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterCandidateClosed(t *testing.T) {
	db := newTestDB(t)
	svc, flags := newAccountService(db)
	if _, err := flags.Set(model.FlagCandidateRegistrationOpen, false); err != nil {
		t.Fatalf("Set flag: %v", err)
	}

	_, err := svc.RegisterCandidate(registration("chika"))
	if !errors.Is(err, ErrRegistrationClosed) {
		t.Fatalf("err = %v, want ErrRegistrationClosed", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newAccountService(db)
	if _, err := svc.RegisterCandidate(registration("dupe")); err != nil {
		t.Fatalf("first RegisterCandidate: %v", err)
	}

	_, err := svc.RegisterCandidate(registration("dupe"))
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("err = %v, want ErrUsernameTaken", err)
	}

	// The failed registration must not leave a half-created profile behind.
	var users int64
	db.Model(&model.User{}).Where("username = ?", "dupe").Count(&users)
	if users != 1 {
		t.Errorf("users named dupe = %d, want 1", users)
	}
}

func TestAssignCandidateRole(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newAccountService(db)
	created, err := svc.RegisterCandidate(registration("efe"))
	if err != nil {
		t.Fatalf("RegisterCandidate: %v", err)
	}

	updated, err := svc.AssignCandidateRole(created.ID, model.CandidateRoleLeague)
	if err != nil {
		t.Fatalf("AssignCandidateRole: %v", err)
	}
	if updated.Role != model.CandidateRoleLeague {
		t.Errorf("role = %q, want league", updated.Role)
	}

	if _, err := svc.AssignCandidateRole(created.ID, "champion"); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("bogus role err = %v, want ErrInvalidRole", err)
	}
}
