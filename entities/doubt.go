package entities

import "time"

type DoubtLog struct {
	DoubtID   uint      `gorm:"primaryKey" json:"doubt_id"`
	UserID    string    `gorm:"index" json:"user_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}
