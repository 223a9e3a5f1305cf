package repository

import (
	"github.com/joseph-ezekiel/verboheit-mlc/internal/model"
	"gorm.io/gorm"
)

// ScoreAggregates summarizes all recorded scores for dashboards.
type ScoreAggregates struct {
	Total   int64
	Average float64
	Highest float64
	Lowest  float64
}

type ScoreRepository interface {
	FindByCandidate(candidateID uint) ([]model.CandidateScore, error)
	FindByCandidateAndExam(candidateID, examID uint) (*model.CandidateScore, error)
	RecentByCandidate(candidateID uint, limit int) ([]model.CandidateScore, error)
	RecentActivity(limit int) ([]model.CandidateScore, error)
	CountByCandidate(candidateID uint) (int64, error)
	Aggregates() (*ScoreAggregates, error)
	CandidateAggregates(candidateID uint) (*ScoreAggregates, error)
	Update(score *model.CandidateScore) error
}

type scoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) FindByCandidate(candidateID uint) ([]model.CandidateScore, error) {
	var scores []model.CandidateScore
	err := r.db.Preload("Exam").
		Where("candidate_id = ?", candidateID).
		Order("date_recorded desc").
		Find(&scores).Error
	if err != nil {
		return nil, err
	}
	return scores, nil
}

func (r *scoreRepository) FindByCandidateAndExam(candidateID, examID uint) (*model.CandidateScore, error) {
	var score model.CandidateScore
	err := r.db.Where("candidate_id = ? AND exam_id = ?", candidateID, examID).First(&score).Error
	if err != nil {
		return nil, err
	}
	return &score, nil
}

func (r *scoreRepository) RecentByCandidate(candidateID uint, limit int) ([]model.CandidateScore, error) {
	var scores []model.CandidateScore
	err := r.db.Preload("Exam").
		Where("candidate_id = ?", candidateID).
		Order("date_recorded desc").
		Limit(limit).
		Find(&scores).Error
	return scores, err
}

func (r *scoreRepository) RecentActivity(limit int) ([]model.CandidateScore, error) {
	var scores []model.CandidateScore
	err := r.db.Preload("Exam").
		Preload("Candidate").Preload("Candidate.User").
		Order("date_recorded desc").
		Limit(limit).
		Find(&scores).Error
	return scores, err
}

func (r *scoreRepository) CountByCandidate(candidateID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.CandidateScore{}).Where("candidate_id = ?", candidateID).Count(&count).Error
	return count, err
}

func (r *scoreRepository) Aggregates() (*ScoreAggregates, error) {
	return r.aggregates(r.db.Model(&model.CandidateScore{}))
}

func (r *scoreRepository) CandidateAggregates(candidateID uint) (*ScoreAggregates, error) {
	return r.aggregates(r.db.Model(&model.CandidateScore{}).Where("candidate_id = ?", candidateID))
}

func (r *scoreRepository) aggregates(query *gorm.DB) (*ScoreAggregates, error) {
	var agg ScoreAggregates
	err := query.
		Select("COUNT(*) AS total, COALESCE(AVG(score), 0) AS average, COALESCE(MAX(score), 0) AS highest, COALESCE(MIN(score), 0) AS lowest").
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	return &agg, nil
}

func (r *scoreRepository) Update(score *model.CandidateScore) error {
	return r.db.Save(score).Error
}
