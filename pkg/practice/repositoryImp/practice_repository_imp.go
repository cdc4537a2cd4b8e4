package repositoryImp

import (
	"gorm.io/gorm"

	"studypal/entities"
	"studypal/pkg/practice/repository"
)

type practiceRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PracticeRepository { return &practiceRepo{db} }

func (r *practiceRepo) Create(a *entities.PracticeAttempt) error { return r.db.Create(a).Error }

func (r *practiceRepo) ListByUser(uid string, limit int) ([]entities.PracticeAttempt, error) {
	var out []entities.PracticeAttempt
	q := r.db.Where("user_id = ?", uid).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
