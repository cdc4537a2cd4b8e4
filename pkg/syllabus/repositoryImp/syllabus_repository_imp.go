package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"studypal/entities"
	"studypal/pkg/syllabus/repository"
)

type syllabusRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SyllabusRepository { return &syllabusRepo{db} }

func (r *syllabusRepo) UpsertSubject(name, sourceURL string) (*entities.SyllabusSubject, error) {
	var s entities.SyllabusSubject
	err := r.db.Where("name = ?", name).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = entities.SyllabusSubject{Name: name, SourceURL: sourceURL}
		if err := r.db.Create(&s).Error; err != nil {
			return nil, err
		}
		return &s, nil
	}
	if err != nil {
		return nil, err
	}
	if sourceURL != "" && sourceURL != s.SourceURL {
		s.SourceURL = sourceURL
		if err := r.db.Save(&s).Error; err != nil {
			return nil, err
		}
	}
	return &s, nil
}

func (r *syllabusRepo) ReplaceChapters(subjectID uint, titles []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subject_id = ?", subjectID).Delete(&entities.SyllabusChapter{}).Error; err != nil {
			return err
		}
		rows := make([]entities.SyllabusChapter, 0, len(titles))
		for i, t := range titles {
			rows = append(rows, entities.SyllabusChapter{SubjectID: subjectID, Ord: i, Title: t})
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (r *syllabusRepo) ListSubjects() ([]entities.SyllabusSubject, error) {
	var out []entities.SyllabusSubject
	if err := r.db.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *syllabusRepo) ListChapters(subjectID uint) ([]entities.SyllabusChapter, error) {
	var out []entities.SyllabusChapter
	if err := r.db.Where("subject_id = ?", subjectID).Order("ord ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
