package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/joseph-ezekiel/verboheit-mlc/internal/dto"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/model"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LeaderboardService publishes league standings as immutable snapshots and
// serves the most recent one.
type LeaderboardService interface {
	// Publish aggregates the current league totals and persists them as a
	// new snapshot. Later score changes never touch published snapshots.
	Publish(staffID uint) (*dto.LeaderboardPublishDTO, error)
	// Load returns the newest snapshot verbatim. ErrLeaderboardClosed when
	// the leaderboard flag is off, ErrNotPublished when nothing was ever
	// published.
	Load() (*dto.LeaderboardDTO, error)
}

type leaderboardService struct {
	candidateRepo repository.CandidateRepository
	snapshotRepo  repository.SnapshotRepository
	flags         FlagService
}

func NewLeaderboardService(candidateRepo repository.CandidateRepository, snapshotRepo repository.SnapshotRepository, flags FlagService) LeaderboardService {
	return &leaderboardService{candidateRepo: candidateRepo, snapshotRepo: snapshotRepo, flags: flags}
}

func (s *leaderboardService) Publish(staffID uint) (*dto.LeaderboardPublishDTO, error) {
	totals, err := s.candidateRepo.LeagueTotals()
	if err != nil {
		return nil, fmt.Errorf("aggregating league totals: %w", err)
	}

	entries := make([]dto.LeaderboardEntryDTO, 0, len(totals))
	for _, t := range totals {
		entries = append(entries, dto.LeaderboardEntryDTO{
			Candidate: dto.MinimalCandidateDTO{
				ID:     t.CandidateID,
				Name:   t.FirstName + " " + t.LastName,
				School: t.School,
			},
			TotalScore: round2(t.TotalScore),
		})
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("serializing leaderboard: %w", err)
	}
	snapshot := model.LeaderboardSnapshot{
		Data:          datatypes.JSON(data),
		PublishedByID: &staffID,
	}
	if err := s.snapshotRepo.Create(&snapshot); err != nil {
		log.Error().Err(err).Msg("Failed to persist leaderboard snapshot")
		return nil, fmt.Errorf("persisting leaderboard snapshot: %w", err)
	}

	log.Info().
		Int("entries", len(entries)).
		Uint("staffID", staffID).
		Msg("Leaderboard published")
	return &dto.LeaderboardPublishDTO{
		Message:     "Leaderboard published!",
		PublishedAt: snapshot.CreatedAt,
		Entries:     len(entries),
	}, nil
}

func (s *leaderboardService) Load() (*dto.LeaderboardDTO, error) {
	if !s.flags.GetBool(model.FlagLeaderboardOpen, true) {
		return nil, ErrLeaderboardClosed
	}

	snapshot, err := s.snapshotRepo.FindLatest()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotPublished
		}
		return nil, fmt.Errorf("loading leaderboard snapshot: %w", err)
	}

	var entries []dto.LeaderboardEntryDTO
	if err := json.Unmarshal(snapshot.Data, &entries); err != nil {
		return nil, fmt.Errorf("decoding leaderboard snapshot %d: %w", snapshot.ID, err)
	}
	return &dto.LeaderboardDTO{
		PublishedAt: snapshot.CreatedAt,
		Leaderboard: entries,
	}, nil
}

// LeagueRank returns a candidate's 1-based position in the live league
// totals, 0 when the candidate is not ranked. Used by the candidate
// dashboard; publishing is not required.
func LeagueRank(candidateRepo repository.CandidateRepository, candidateID uint) (int, float64, error) {
	totals, err := candidateRepo.LeagueTotals()
	if err != nil {
		return 0, 0, fmt.Errorf("aggregating league totals: %w", err)
	}
	for i, t := range totals {
		if t.CandidateID == candidateID {
			return i + 1, round2(t.TotalScore), nil
		}
	}
	return 0, 0, nil
}
