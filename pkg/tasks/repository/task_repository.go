package repository

import "studypal/entities"

type TaskRepository interface {
	Create(t *entities.CustomTask) error
	ListByUser(uid string) ([]entities.CustomTask, error)
	SetCompleted(id, uid string, completed bool) error
	Delete(id, uid string) error
}
