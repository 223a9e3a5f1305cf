package service

import (
	"testing"

	"github.com/joseph-ezekiel/verboheit-mlc/internal/model"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/repository"
)

func TestFlagDefaultsBeforeFirstWrite(t *testing.T) {
	db := newTestDB(t)
	svc := NewFlagService(repository.NewFlagRepository(db))

	if !svc.GetBool(model.FlagLeaderboardOpen, true) {
		t.Error("unset flag with true fallback reported false")
	}
	if svc.GetBool("some_other_switch", false) {
		t.Error("unset flag with false fallback reported true")
	}
}

func TestFlagSetAndToggle(t *testing.T) {
	db := newTestDB(t)
	svc := NewFlagService(repository.NewFlagRepository(db))

	value, err := svc.Set(model.FlagCandidateRegistrationOpen, false)
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if value {
		t.Error("Set(false) returned true")
	}
	if svc.GetBool(model.FlagCandidateRegistrationOpen, true) {
		t.Error("flag still reads true after Set(false)")
	}

	value, err = svc.Toggle(model.FlagCandidateRegistrationOpen, true)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !value {
		t.Error("toggle of a false flag returned false")
	}

	// Only one row per key regardless of how often it is written.
	var rows int64
	db.Model(&model.FeatureFlag{}).Where("key = ?", model.FlagCandidateRegistrationOpen).Count(&rows)
	if rows != 1 {
		t.Errorf("flag rows = %d, want 1", rows)
	}
}
