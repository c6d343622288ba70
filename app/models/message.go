package models

import "time"

// Message is a note left through the public contact form.
type Message struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name"`
	Email     string    `json:"email" validate:"required,email"`
	Body      string    `json:"body" gorm:"type:text" validate:"required"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
