package database

import (
	"database/sql"
	"stafflog/app/models"
)

// EmployeeFilters narrows the employee list on the admin dashboard.
type EmployeeFilters struct {
	SectorID   string
	PositionID string
}

func CreateEmployee(db *sql.DB, emp *models.Employee) error {
	query := `INSERT INTO employees (user_id, sector_id, position_id)
			  VALUES ($1, $2, $3)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, emp.UserID, emp.SectorID, emp.PositionID).
		Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
}

func scanEmployeeRows(rows *sql.Rows) ([]*models.Employee, error) {
	employees := make([]*models.Employee, 0)
	for rows.Next() {
		emp := &models.Employee{User: &models.User{}}
		var sectorName, positionName sql.NullString
		err := rows.Scan(
			&emp.ID, &emp.UserID, &emp.SectorID, &emp.PositionID, &emp.CreatedAt, &emp.UpdatedAt,
			&emp.User.ID, &emp.User.Email, &emp.User.FirstName, &emp.User.LastName, &emp.User.IsAdmin,
			&sectorName, &positionName,
		)
		if err != nil {
			return nil, err
		}
		if sectorName.Valid {
			emp.Sector = &models.Sector{Name: sectorName.String}
			if emp.SectorID != nil {
				emp.Sector.ID = *emp.SectorID
			}
		}
		if positionName.Valid {
			emp.Position = &models.Position{Name: positionName.String}
			if emp.PositionID != nil {
				emp.Position.ID = *emp.PositionID
			}
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

const employeeSelect = `
	SELECT e.id, e.user_id, e.sector_id, e.position_id, e.created_at, e.updated_at,
		   u.id, u.email, u.first_name, u.last_name, u.is_admin,
		   s.name, p.name
	FROM employees e
	JOIN users u ON e.user_id = u.id
	LEFT JOIN sectors s ON e.sector_id = s.id
	LEFT JOIN positions p ON e.position_id = p.id`

func GetAllEmployees(db *sql.DB, filters EmployeeFilters) ([]*models.Employee, error) {
	query := employeeSelect + ` WHERE u.is_active = true`
	args := []interface{}{}

	if filters.SectorID != "" {
		args = append(args, filters.SectorID)
		query += ` AND e.sector_id = $1`
	}
	if filters.PositionID != "" {
		args = append(args, filters.PositionID)
		if len(args) == 1 {
			query += ` AND e.position_id = $1`
		} else {
			query += ` AND e.position_id = $2`
		}
	}
	query += ` ORDER BY u.first_name, u.last_name`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEmployeeRows(rows)
}

func getOneEmployee(db *sql.DB, where string, arg interface{}) (*models.Employee, error) {
	rows, err := db.Query(employeeSelect+where, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees, err := scanEmployeeRows(rows)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, sql.ErrNoRows
	}
	return employees[0], nil
}

func GetEmployeeByID(db *sql.DB, employeeID string) (*models.Employee, error) {
	return getOneEmployee(db, ` WHERE e.id = $1`, employeeID)
}

func GetEmployeeByUserID(db *sql.DB, userID string) (*models.Employee, error) {
	return getOneEmployee(db, ` WHERE e.user_id = $1`, userID)
}

func UpdateEmployee(db *sql.DB, employeeID string, sectorID, positionID *string) error {
	query := `UPDATE employees SET sector_id = $2, position_id = $3, updated_at = NOW()
			  WHERE id = $1`
	_, err := db.Exec(query, employeeID, sectorID, positionID)
	return err
}

func DeleteEmployee(db *sql.DB, employeeID string) error {
	_, err := db.Exec(`DELETE FROM employees WHERE id = $1`, employeeID)
	return err
}

// Positions and sectors.

func CreatePosition(db *sql.DB, p *models.Position) error {
	return db.QueryRow(`INSERT INTO positions (name) VALUES ($1) RETURNING id`, p.Name).Scan(&p.ID)
}

func GetAllPositions(db *sql.DB) ([]*models.Position, error) {
	rows, err := db.Query(`SELECT id, name FROM positions ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	positions := make([]*models.Position, 0)
	for rows.Next() {
		p := &models.Position{}
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	return positions, rows.Err()
}

func DeletePosition(db *sql.DB, id string) (int64, error) {
	res, err := db.Exec(`DELETE FROM positions WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func CreateSector(db *sql.DB, s *models.Sector) error {
	return db.QueryRow(`INSERT INTO sectors (name) VALUES ($1) RETURNING id`, s.Name).Scan(&s.ID)
}

func GetAllSectors(db *sql.DB) ([]*models.Sector, error) {
	rows, err := db.Query(`SELECT id, name FROM sectors ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sectors := make([]*models.Sector, 0)
	for rows.Next() {
		s := &models.Sector{}
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		sectors = append(sectors, s)
	}
	return sectors, rows.Err()
}

func DeleteSector(db *sql.DB, id string) (int64, error) {
	res, err := db.Exec(`DELETE FROM sectors WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
