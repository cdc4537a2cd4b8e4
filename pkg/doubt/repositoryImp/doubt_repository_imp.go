package repositoryImp

import (
	"gorm.io/gorm"

	"studypal/entities"
	"studypal/pkg/doubt/repository"
)

type doubtRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.DoubtRepository { return &doubtRepo{db} }

func (r *doubtRepo) Create(d *entities.DoubtLog) error { return r.db.Create(d).Error }

func (r *doubtRepo) ListByUser(uid string, limit int) ([]entities.DoubtLog, error) {
	var out []entities.DoubtLog
	q := r.db.Where("user_id = ?", uid).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
