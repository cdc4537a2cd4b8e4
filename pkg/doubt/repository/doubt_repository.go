package repository

import "studypal/entities"

type DoubtRepository interface {
	Create(d *entities.DoubtLog) error
	ListByUser(uid string, limit int) ([]entities.DoubtLog, error)
}
