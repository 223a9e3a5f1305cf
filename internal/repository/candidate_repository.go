package repository

import (
	"github.com/joseph-ezekiel/verboheit-mlc/internal/model"
	"gorm.io/gorm"
)

// LeagueTotal is one row of the leaderboard aggregation: a league candidate
// with their summed score across all exams. Candidates without any score rows
// appear with a zero total, not omitted.
type LeagueTotal struct {
	CandidateID uint
	FirstName   string
	LastName    string
	School      string
	TotalScore  float64
}

type CandidateRepository interface {
	Create(candidate *model.Candidate) error
	FindByID(id uint) (*model.Candidate, error)
	FindByUserID(userID uint) (*model.Candidate, error)
	FindAll() ([]model.Candidate, error)
	Update(candidate *model.Candidate) error
	CountByRole(role string) (int64, error)
	CountAll() (int64, error)
	LeagueTotals() ([]LeagueTotal, error)
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Create(candidate *model.Candidate) error {
	return r.db.Create(candidate).Error
}

func (r *candidateRepository) FindByID(id uint) (*model.Candidate, error) {
	var candidate model.Candidate
	if err := r.db.Preload("User").First(&candidate, id).Error; err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepository) FindByUserID(userID uint) (*model.Candidate, error) {
	var candidate model.Candidate
	if err := r.db.Preload("User").Where("user_id = ?", userID).First(&candidate).Error; err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepository) FindAll() ([]model.Candidate, error) {
	var candidates []model.Candidate
	if err := r.db.Preload("User").Order("created_at desc").Find(&candidates).Error; err != nil {
		return nil, err
	}
	return candidates, nil
}

func (r *candidateRepository) Update(candidate *model.Candidate) error {
	return r.db.Save(candidate).Error
}

func (r *candidateRepository) CountByRole(role string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Candidate{}).Where("role = ? AND is_active = ?", role, true).Count(&count).Error
	return count, err
}

func (r *candidateRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&model.Candidate{}).Count(&count).Error
	return count, err
}

// LeagueTotals sums every active league candidate's scores. The LEFT JOIN
// keeps candidates with no CandidateScore rows in the result with a 0 total.
func (r *candidateRepository) LeagueTotals() ([]LeagueTotal, error) {
	var totals []LeagueTotal
	err := r.db.Table("candidates").
		Select("candidates.id AS candidate_id, users.first_name, users.last_name, candidates.school, COALESCE(SUM(candidate_scores.score), 0) AS total_score").
		Joins("JOIN users ON users.id = candidates.user_id").
		Joins("LEFT JOIN candidate_scores ON candidate_scores.candidate_id = candidates.id").
		Where("candidates.role = ? AND candidates.is_active = ?", model.CandidateRoleLeague, true).
		Group("candidates.id, users.first_name, users.last_name, candidates.school").
		Order("total_score DESC").
		Scan(&totals).Error
	return totals, err
}
