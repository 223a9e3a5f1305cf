package repository

import (
	"time"

	"github.com/joseph-ezekiel/verboheit-mlc/internal/model"
	"gorm.io/gorm"
)

type ExamRepository interface {
	Create(exam *model.Exam) error
	FindByID(id uint) (*model.Exam, error)
	FindByIDWithQuestions(id uint) (*model.Exam, error)
	FindAllWithQuestionCount() ([]ExamWithCount, error)
	FindByStage(stage string, activeOnly bool) ([]model.Exam, error)
	FindUpcoming(after time.Time, limit int) ([]model.Exam, error)
	Update(exam *model.Exam) error
	ReplaceQuestions(exam *model.Exam, questions []model.Question) error
	Delete(id uint) error
	CountQuestions(examID uint) (int64, error)
	CountAll() (int64, error)
	CountActive() (int64, error)
}

type ExamWithCount struct {
	model.Exam
	QuestionCount int64
}

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) Create(exam *model.Exam) error {
	return r.db.Create(exam).Error
}

func (r *examRepository) FindByID(id uint) (*model.Exam, error) {
	var exam model.Exam
	if err := r.db.First(&exam, id).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindByIDWithQuestions(id uint) (*model.Exam, error) {
	var exam model.Exam
	if err := r.db.Preload("Questions").First(&exam, id).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindAllWithQuestionCount() ([]ExamWithCount, error) {
	var results []ExamWithCount
	err := r.db.Model(&model.Exam{}).
		Select("exams.*, (SELECT COUNT(*) FROM exam_questions JOIN questions ON questions.id = exam_questions.question_id WHERE exam_questions.exam_id = exams.id AND questions.deleted_at IS NULL) AS question_count").
		Order("exams.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *examRepository) FindByStage(stage string, activeOnly bool) ([]model.Exam, error) {
	query := r.db.Where("stage = ?", stage)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var exams []model.Exam
	if err := query.Order("exam_date ASC").Find(&exams).Error; err != nil {
		return nil, err
	}
	return exams, nil
}

func (r *examRepository) FindUpcoming(after time.Time, limit int) ([]model.Exam, error) {
	var exams []model.Exam
	err := r.db.
		Where("is_active = ? AND exam_date >= ?", true, after).
		Order("exam_date ASC").
		Limit(limit).
		Find(&exams).Error
	return exams, err
}

func (r *examRepository) Update(exam *model.Exam) error {
	return r.db.Save(exam).Error
}

// ReplaceQuestions swaps the exam's question set. Membership is mutable
// independently of the questions' own lifecycle.
func (r *examRepository) ReplaceQuestions(exam *model.Exam, questions []model.Question) error {
	return r.db.Model(exam).Association("Questions").Replace(questions)
}

func (r *examRepository) Delete(id uint) error {
	return r.db.Delete(&model.Exam{}, id).Error
}

func (r *examRepository) CountQuestions(examID uint) (int64, error) {
	return r.db.Model(&model.Exam{ID: examID}).Association("Questions").Count(), nil
}

func (r *examRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&model.Exam{}).Count(&count).Error
	return count, err
}

func (r *examRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&model.Exam{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
