package repository

import "studypal/entities"

type PracticeRepository interface {
	Create(a *entities.PracticeAttempt) error
	ListByUser(uid string, limit int) ([]entities.PracticeAttempt, error)
}
