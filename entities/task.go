package entities

import "time"

// CustomTask is an ad-hoc task not tied to the generated plan. Created by
// explicit user action, deleted explicitly, never auto-expires.
type CustomTask struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	UserID          string    `gorm:"index" json:"user_id"`
	Title           string    `json:"title"`
	DurationMinutes int       `json:"duration_minutes"`
	Completed       bool      `json:"completed"`
	CreatedAt       time.Time `json:"created_at"`
}
