package repository

import (
	"github.com/joseph-ezekiel/verboheit-mlc/internal/model"
	"gorm.io/gorm"
)

type FlagRepository interface {
	Find(key string) (*model.FeatureFlag, error)
	Upsert(key string, value bool) (*model.FeatureFlag, error)
}

type flagRepository struct {
	db *gorm.DB
}

func NewFlagRepository(db *gorm.DB) FlagRepository {
	return &flagRepository{db: db}
}

func (r *flagRepository) Find(key string) (*model.FeatureFlag, error) {
	var flag model.FeatureFlag
	if err := r.db.Where("key = ?", key).First(&flag).Error; err != nil {
		return nil, err
	}
	return &flag, nil
}

func (r *flagRepository) Upsert(key string, value bool) (*model.FeatureFlag, error) {
	var flag model.FeatureFlag
	err := r.db.Where(model.FeatureFlag{Key: key}).
		Assign(map[string]interface{}{"value": value}).
		FirstOrCreate(&flag).Error
	if err != nil {
		return nil, err
	}
	flag.Value = value
	return &flag, nil
}
