package database

import (
	"database/sql"

	"stafflog/app/models"
)

// GetSystemState reads the singleton reset marker. A missing row reads
// as "never reset".
func GetSystemState(db *sql.DB) (models.SystemState, error) {
	var s models.SystemState
	err := db.QueryRow(
		`SELECT last_processed_month, last_processed_year FROM system_state WHERE id = 1`,
	).Scan(&s.LastProcessedMonth, &s.LastProcessedYear)
	if err == sql.ErrNoRows {
		return models.SystemState{}, nil
	}
	return s, err
}

func SetSystemState(db *sql.DB, month string, year int) error {
	query := `INSERT INTO system_state (id, last_processed_month, last_processed_year)
			  VALUES (1, $1, $2)
			  ON CONFLICT (id) DO UPDATE
			  SET last_processed_month = EXCLUDED.last_processed_month,
			      last_processed_year = EXCLUDED.last_processed_year`
	_, err := db.Exec(query, month, year)
	return err
}
