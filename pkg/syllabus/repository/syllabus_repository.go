package repository

import "studypal/entities"

type SyllabusRepository interface {
	UpsertSubject(name, sourceURL string) (*entities.SyllabusSubject, error)
	ReplaceChapters(subjectID uint, titles []string) error
	ListSubjects() ([]entities.SyllabusSubject, error)
	ListChapters(subjectID uint) ([]entities.SyllabusChapter, error)
}
