package models

import "time"

// Position is a job title (e.g. "Engineer"). Names are unique.
type Position struct {
	ID   string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name string `json:"name" gorm:"not null;uniqueIndex" validate:"required"`
}

// Sector is an organizational unit (e.g. "Operations"). Names are unique.
type Sector struct {
	ID   string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name string `json:"name" gorm:"not null;uniqueIndex" validate:"required"`
}

// Employee is the staff record behind a user account. Deleting an
// employee removes this row and the user, but never the month
// summaries that reference the employee by ID.
type Employee struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID     string    `json:"user_id" gorm:"not null;uniqueIndex;type:uuid" validate:"required,uuid"`
	SectorID   *string   `json:"sector_id,omitempty" gorm:"type:uuid"`
	PositionID *string   `json:"position_id,omitempty" gorm:"type:uuid"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Sector   *Sector   `json:"sector,omitempty" gorm:"foreignKey:SectorID;references:ID"`
	Position *Position `json:"position,omitempty" gorm:"foreignKey:PositionID;references:ID"`
}
