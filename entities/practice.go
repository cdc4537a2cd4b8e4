package entities

import "time"

// PracticeAttempt is the stored summary of one graded batch of answers.
type PracticeAttempt struct {
	AttemptID    uint      `gorm:"primaryKey" json:"attempt_id"`
	UserID       string    `gorm:"index" json:"user_id"`
	Subject      string    `json:"subject"`
	Chapter      string    `json:"chapter"`
	Questions    int       `json:"questions"`
	Correct      int       `json:"correct"`
	MarksAwarded float64   `json:"marks_awarded"`
	MarksTotal   float64   `json:"marks_total"`
	CreatedAt    time.Time `json:"created_at"`
}
