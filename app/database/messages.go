package database

import (
	"database/sql"

	"stafflog/app/models"
)

func CreateMessage(db *sql.DB, m *models.Message) error {
	query := `INSERT INTO messages (name, email, body) VALUES ($1, $2, $3)
			  RETURNING id, created_at`
	return db.QueryRow(query, m.Name, m.Email, m.Body).Scan(&m.ID, &m.CreatedAt)
}

func GetAllMessages(db *sql.DB) ([]*models.Message, error) {
	rows, err := db.Query(`SELECT id, name, email, body, created_at FROM messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]*models.Message, 0)
	for rows.Next() {
		m := &models.Message{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func DeleteMessage(db *sql.DB, id string) (int64, error) {
	res, err := db.Exec(`DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
