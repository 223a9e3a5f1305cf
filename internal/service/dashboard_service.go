package service

import (
	"fmt"
	"time"

	"github.com/joseph-ezekiel/verboheit-mlc/internal/dto"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/model"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/repository"
	"github.com/rs/zerolog/log"
)

const recentLimit = 5

// DashboardService assembles the candidate and staff overview payloads.
type DashboardService interface {
	CandidateDashboard(candidate *model.Candidate) (*dto.CandidateDashboardDTO, error)
	StaffDashboard() (*dto.StaffDashboardDTO, error)
}

type dashboardService struct {
	candidateRepo repository.CandidateRepository
	examRepo      repository.ExamRepository
	questionRepo  repository.QuestionRepository
	scoreRepo     repository.ScoreRepository
	now           func() time.Time
}

func NewDashboardService(candidateRepo repository.CandidateRepository, examRepo repository.ExamRepository, questionRepo repository.QuestionRepository, scoreRepo repository.ScoreRepository) DashboardService {
	return &dashboardService{
		candidateRepo: candidateRepo,
		examRepo:      examRepo,
		questionRepo:  questionRepo,
		scoreRepo:     scoreRepo,
		now:           time.Now,
	}
}

func (s *dashboardService) CandidateDashboard(candidate *model.Candidate) (*dto.CandidateDashboardDTO, error) {
	out := dto.CandidateDashboardDTO{
		Profile: dto.MinimalCandidateDTO{
			ID:     candidate.ID,
			Name:   candidate.User.FullName(),
			School: candidate.School,
		},
		Role: candidate.Role,
	}

	agg, err := s.scoreRepo.CandidateAggregates(candidate.ID)
	if err != nil {
		return nil, fmt.Errorf("aggregating candidate scores: %w", err)
	}
	out.ExamStats = dto.ExamStatsDTO{
		ExamsTaken:   agg.Total,
		AverageScore: round2(agg.Average),
		HighestScore: round2(agg.Highest),
	}

	exams, err := s.examRepo.FindByStage(candidate.Role, true)
	if err != nil {
		return nil, fmt.Errorf("listing stage exams: %w", err)
	}
	now := s.now()
	out.AvailableExams = make([]dto.ExamListDTO, 0)
	for _, e := range exams {
		if !e.OpenAt(now) {
			continue
		}
		out.AvailableExams = append(out.AvailableExams, dto.ExamListDTO{
			ID:                e.ID,
			Title:             e.Title,
			Stage:             e.Stage,
			Description:       e.Description,
			ExamDate:          e.ExamDate,
			CountdownMinutes:  e.CountdownMinutes,
			OpenDurationHours: e.OpenDurationHours,
			IsActive:          e.IsActive,
			IsCurrentlyOpen:   true,
			DateCreated:       e.CreatedAt,
		})
	}

	recent, err := s.scoreRepo.RecentByCandidate(candidate.ID, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("listing recent scores: %w", err)
	}
	out.RecentScores = make([]dto.ScoreDTO, 0, len(recent))
	for i := range recent {
		out.RecentScores = append(out.RecentScores, scoreToDTO(&recent[i]))
	}

	if candidate.Role == model.CandidateRoleLeague {
		rank, total, err := LeagueRank(s.candidateRepo, candidate.ID)
		if err != nil {
			log.Error().Err(err).Uint("candidateID", candidate.ID).Msg("Failed to compute league rank")
		} else if rank > 0 {
			out.LeagueRanking = &dto.LeagueRankingDTO{Position: rank, TotalScore: total}
		}
	}
	return &out, nil
}

func (s *dashboardService) StaffDashboard() (*dto.StaffDashboardDTO, error) {
	var out dto.StaffDashboardDTO

	totalCandidates, err := s.candidateRepo.CountAll()
	if err != nil {
		return nil, fmt.Errorf("counting candidates: %w", err)
	}
	out.Candidates.Total = totalCandidates
	out.Candidates.ByRole = make(map[string]int64, len(model.CandidateRoles))
	for _, role := range model.CandidateRoles {
		n, err := s.candidateRepo.CountByRole(role)
		if err != nil {
			return nil, fmt.Errorf("counting %s candidates: %w", role, err)
		}
		out.Candidates.ByRole[role] = n
	}

	out.Exams.Total, err = s.examRepo.CountAll()
	if err != nil {
		return nil, fmt.Errorf("counting exams: %w", err)
	}
	out.Exams.Active, err = s.examRepo.CountActive()
	if err != nil {
		return nil, fmt.Errorf("counting active exams: %w", err)
	}

	out.Questions.Total, err = s.questionRepo.CountAll()
	if err != nil {
		return nil, fmt.Errorf("counting questions: %w", err)
	}
	out.Questions.ByDifficulty = make(map[string]int64, 3)
	for _, difficulty := range []string{"easy", "medium", "hard"} {
		n, err := s.questionRepo.CountByDifficulty(difficulty)
		if err != nil {
			return nil, fmt.Errorf("counting %s questions: %w", difficulty, err)
		}
		out.Questions.ByDifficulty[difficulty] = n
	}

	agg, err := s.scoreRepo.Aggregates()
	if err != nil {
		return nil, fmt.Errorf("aggregating scores: %w", err)
	}
	out.Scores = dto.ScoreStatsDTO{
		Total:   agg.Total,
		Average: round2(agg.Average),
		Highest: round2(agg.Highest),
		Lowest:  round2(agg.Lowest),
	}

	recent, err := s.scoreRepo.RecentActivity(recentLimit)
	if err != nil {
		return nil, fmt.Errorf("listing recent activity: %w", err)
	}
	out.RecentActivity = make([]dto.ScoreDTO, 0, len(recent))
	for i := range recent {
		out.RecentActivity = append(out.RecentActivity, scoreToDTO(&recent[i]))
	}

	now := s.now()
	upcoming, err := s.examRepo.FindUpcoming(now, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("listing upcoming exams: %w", err)
	}
	out.UpcomingExams = make([]dto.ExamListDTO, 0, len(upcoming))
	for _, e := range upcoming {
		out.UpcomingExams = append(out.UpcomingExams, dto.ExamListDTO{
			ID:                e.ID,
			Title:             e.Title,
			Stage:             e.Stage,
			Description:       e.Description,
			ExamDate:          e.ExamDate,
			CountdownMinutes:  e.CountdownMinutes,
			OpenDurationHours: e.OpenDurationHours,
			IsActive:          e.IsActive,
			IsCurrentlyOpen:   e.OpenAt(now),
			DateCreated:       e.CreatedAt,
		})
	}
	return &out, nil
}
