package service

import (
	"testing"
	"time"

	"github.com/joseph-ezekiel/verboheit-mlc/internal/model"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/repository"
)

func TestStaffDashboardCounters(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(
		repository.NewCandidateRepository(db),
		repository.NewExamRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewScoreRepository(db),
	)

	league := seedCandidate(t, db, "dash1", model.CandidateRoleLeague)
	seedCandidate(t, db, "dash2", model.CandidateRoleScreening)
	exam := seedExam(t, db, model.StageLeague, "A", "B", "C")
	seedScore(t, db, league.ID, exam.ID, 66.5)

	nextWeek := time.Now().Add(7 * 24 * time.Hour)
	scheduled := model.Exam{
		Stage:    model.StageScreening,
		Title:    "scheduled screening",
		IsActive: true,
		ExamDate: &nextWeek,
	}
	if err := db.Create(&scheduled).Error; err != nil {
		t.Fatalf("seeding scheduled exam: %v", err)
	}

	out, err := svc.StaffDashboard()
	if err != nil {
		t.Fatalf("StaffDashboard: %v", err)
	}
	if out.Candidates.Total != 2 {
		t.Errorf("candidates total = %d, want 2", out.Candidates.Total)
	}
	if out.Candidates.ByRole[model.CandidateRoleLeague] != 1 {
		t.Errorf("league candidates = %d, want 1", out.Candidates.ByRole[model.CandidateRoleLeague])
	}
	if out.Exams.Total != 2 || out.Exams.Active != 2 {
		t.Errorf("exams = %+v, want 2 total 2 active", out.Exams)
	}
	if out.Questions.Total != 3 {
		t.Errorf("questions total = %d, want 3", out.Questions.Total)
	}
	if out.Scores.Total != 1 || out.Scores.Highest != 66.5 {
		t.Errorf("scores = %+v, want 1 total highest 66.5", out.Scores)
	}
	if len(out.RecentActivity) != 1 {
		t.Errorf("recent activity entries = %d, want 1", len(out.RecentActivity))
	}
	if len(out.UpcomingExams) != 1 || out.UpcomingExams[0].ID != scheduled.ID {
		t.Errorf("upcoming exams = %+v, want only the scheduled one", out.UpcomingExams)
	}
}

func TestCandidateDashboardLeagueRanking(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(
		repository.NewCandidateRepository(db),
		repository.NewExamRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewScoreRepository(db),
	)

	leader := seedCandidate(t, db, "dash3", model.CandidateRoleLeague)
	runner := seedCandidate(t, db, "dash4", model.CandidateRoleLeague)
	exam := seedExam(t, db, model.StageLeague, "A")
	seedScore(t, db, leader.ID, exam.ID, 90)
	seedScore(t, db, runner.ID, exam.ID, 55)

	out, err := svc.CandidateDashboard(runner)
	if err != nil {
		t.Fatalf("CandidateDashboard: %v", err)
	}
	if out.LeagueRanking == nil {
		t.Fatal("league candidate without ranking")
	}
	if out.LeagueRanking.Position != 2 || out.LeagueRanking.TotalScore != 55 {
		t.Errorf("ranking = %+v, want position 2 with 55", out.LeagueRanking)
	}
	if out.ExamStats.ExamsTaken != 1 || out.ExamStats.HighestScore != 55 {
		t.Errorf("exam stats = %+v, want 1 taken highest 55", out.ExamStats)
	}
	if len(out.AvailableExams) != 1 {
		t.Errorf("available exams = %d, want 1 open league exam", len(out.AvailableExams))
	}
}
