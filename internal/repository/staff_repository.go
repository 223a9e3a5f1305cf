package repository

import (
	"github.com/joseph-ezekiel/verboheit-mlc/internal/model"
	"gorm.io/gorm"
)

type StaffRepository interface {
	Create(staff *model.Staff) error
	FindByID(id uint) (*model.Staff, error)
	FindByUserID(userID uint) (*model.Staff, error)
	FindAll() ([]model.Staff, error)
	Update(staff *model.Staff) error
}

type staffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) Create(staff *model.Staff) error {
	return r.db.Create(staff).Error
}

func (r *staffRepository) FindByID(id uint) (*model.Staff, error) {
	var staff model.Staff
	if err := r.db.Preload("User").First(&staff, id).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) FindByUserID(userID uint) (*model.Staff, error) {
	var staff model.Staff
	if err := r.db.Preload("User").Where("user_id = ?", userID).First(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) FindAll() ([]model.Staff, error) {
	var staff []model.Staff
	if err := r.db.Preload("User").Order("created_at desc").Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *staffRepository) Update(staff *model.Staff) error {
	return r.db.Save(staff).Error
}
