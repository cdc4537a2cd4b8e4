package repositoryImp

import (
	"gorm.io/gorm"

	"studypal/entities"
	"studypal/pkg/tasks/repository"
)

type taskRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TaskRepository { return &taskRepo{db} }

func (r *taskRepo) Create(t *entities.CustomTask) error { return r.db.Create(t).Error }

func (r *taskRepo) ListByUser(uid string) ([]entities.CustomTask, error) {
	var out []entities.CustomTask
	if err := r.db.Where("user_id = ?", uid).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *taskRepo) SetCompleted(id, uid string, completed bool) error {
	return r.db.Model(&entities.CustomTask{}).
		Where("id = ? AND user_id = ?", id, uid).
		Update("completed", completed).Error
}

func (r *taskRepo) Delete(id, uid string) error {
	return r.db.Where("id = ? AND user_id = ?", id, uid).Delete(&entities.CustomTask{}).Error
}
