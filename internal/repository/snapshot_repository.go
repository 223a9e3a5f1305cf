package repository

import (
	"github.com/joseph-ezekiel/verboheit-mlc/internal/model"
	"gorm.io/gorm"
)

type SnapshotRepository interface {
	Create(snapshot *model.LeaderboardSnapshot) error
	FindLatest() (*model.LeaderboardSnapshot, error)
}

type snapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) Create(snapshot *model.LeaderboardSnapshot) error {
	return r.db.Create(snapshot).Error
}

func (r *snapshotRepository) FindLatest() (*model.LeaderboardSnapshot, error) {
	var snapshot model.LeaderboardSnapshot
	if err := r.db.Order("created_at desc").First(&snapshot).Error; err != nil {
		return nil, err
	}
	return &snapshot, nil
}
