package entities

import "time"

type SyllabusSubject struct {
	SubjectID uint   `gorm:"primaryKey" json:"subject_id"`
	Name      string `gorm:"index" json:"name"` // canonical form, see pkg/subject
	SourceURL string `json:"source_url"`
	CreatedAt time.Time
}

type SyllabusChapter struct {
	ChapterID uint   `gorm:"primaryKey" json:"chapter_id"`
	SubjectID uint   `gorm:"index" json:"subject_id"`
	Ord       int    `json:"ord"`
	Title     string `json:"title"`
	CreatedAt time.Time
}
