package models

import "time"

// User is a login account. Admins manage the organization; every
// non-admin user owns exactly one Employee record.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex" validate:"required,email"`
	Password  string    `json:"-" gorm:"not null"`
	FirstName string    `json:"first_name" gorm:"not null" validate:"required"`
	LastName  string    `json:"last_name"`
	IsAdmin   bool      `json:"is_admin" gorm:"not null;default:false"`
	IsActive  bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// FullName returns "First Last", falling back to the email local part
// so summaries never store an empty name snapshot.
func (u *User) FullName() string {
	name := u.FirstName
	if u.LastName != "" {
		name += " " + u.LastName
	}
	if name == "" {
		return u.Email
	}
	return name
}

// AllowedEmail gates self-registration: only listed addresses may sign up.
type AllowedEmail struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex" validate:"required,email"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
