package database

import (
	"database/sql"
	"stafflog/app/models"
)

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, is_admin, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsAdmin, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, is_admin, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsAdmin, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser inserts a user with an already-hashed password and returns the new ID.
func CreateUser(db *sql.DB, user *models.User) error {
	query := `INSERT INTO users (email, password, first_name, last_name, is_admin)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, user.Email, user.Password, user.FirstName, user.LastName, user.IsAdmin).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func UpdateUserProfile(db *sql.DB, userID, email, firstName, lastName string) error {
	query := `UPDATE users SET email = $2, first_name = $3, last_name = $4, updated_at = NOW()
			  WHERE id = $1`
	_, err := db.Exec(query, userID, email, firstName, lastName)
	return err
}

func UpdateUserPassword(db *sql.DB, userID, hashedPassword string) error {
	query := `UPDATE users SET password = $2, updated_at = NOW() WHERE id = $1`
	_, err := db.Exec(query, userID, hashedPassword)
	return err
}

func DeleteUser(db *sql.DB, userID string) error {
	_, err := db.Exec(`DELETE FROM users WHERE id = $1`, userID)
	return err
}

// IsEmailAllowed checks the registration allow-list.
func IsEmailAllowed(db *sql.DB, email string) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM allowed_emails WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

func CreateAllowedEmail(db *sql.DB, email string) error {
	query := `INSERT INTO allowed_emails (email) VALUES ($1) ON CONFLICT (email) DO NOTHING`
	_, err := db.Exec(query, email)
	return err
}

func GetAllAllowedEmails(db *sql.DB) ([]*models.AllowedEmail, error) {
	rows, err := db.Query(`SELECT id, email, created_at FROM allowed_emails ORDER BY email`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	emails := make([]*models.AllowedEmail, 0)
	for rows.Next() {
		e := &models.AllowedEmail{}
		if err := rows.Scan(&e.ID, &e.Email, &e.CreatedAt); err != nil {
			return nil, err
		}
		emails = append(emails, e)
	}
	return emails, rows.Err()
}

func DeleteAllowedEmailByID(db *sql.DB, id string) (int64, error) {
	res, err := db.Exec(`DELETE FROM allowed_emails WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func DeleteAllowedEmailByAddress(db *sql.DB, email string) error {
	_, err := db.Exec(`DELETE FROM allowed_emails WHERE email = $1`, email)
	return err
}
