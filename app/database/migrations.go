package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema and seeds the singleton settings rows.
// Every statement is idempotent so this runs on each startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL DEFAULT '',
			is_admin BOOLEAN NOT NULL DEFAULT false,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS allowed_emails (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS positions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(50) NOT NULL UNIQUE
		)`,

		`CREATE TABLE IF NOT EXISTS sectors (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(50) NOT NULL UNIQUE
		)`,

		`CREATE TABLE IF NOT EXISTS employees (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
			sector_id UUID REFERENCES sectors(id) ON DELETE SET NULL,
			position_id UUID REFERENCES positions(id) ON DELETE SET NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		// The UNIQUE pair makes the check-then-create race harmless: the
		// second concurrent check-in fails with a unique violation, which
		// the service reports as "already marked".
		`CREATE TABLE IF NOT EXISTS attendances (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			employee_id UUID NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
			date DATE NOT NULL,
			check_in_at TIMESTAMPTZ NOT NULL,
			quit_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (employee_id, date)
		)`,

		`CREATE TABLE IF NOT EXISTS attendance_time_settings (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			start_time VARCHAR(5) NOT NULL,
			end_time VARCHAR(5) NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS default_holiday (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			day VARCHAR(10) NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS occasional_holidays (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			date DATE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS employee_holidays (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			employee_id UUID NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
			date DATE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS tasks (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			employee_id UUID NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			extended_date DATE,
			revision_count INTEGER NOT NULL DEFAULT 0,
			rejected_count INTEGER NOT NULL DEFAULT 0,
			is_completed BOOLEAN NOT NULL DEFAULT false,
			is_delivered BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		// Deliberately has no foreign keys: history must survive both task
		// and employee deletion.
		`CREATE TABLE IF NOT EXISTS task_history (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			task_id UUID NOT NULL,
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			assigned_to VARCHAR(100) NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			extended_date DATE,
			revision_count INTEGER NOT NULL DEFAULT 0,
			rejected_count INTEGER NOT NULL DEFAULT 0,
			status VARCHAR(50) NOT NULL,
			action_taken VARCHAR(20) NOT NULL,
			action_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		// employee_id is a weak reference by design, not a foreign key.
		`CREATE TABLE IF NOT EXISTS month_summaries (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			month VARCHAR(10) NOT NULL,
			year INTEGER NOT NULL,
			employee_id UUID NOT NULL,
			employee_name VARCHAR(100) NOT NULL,
			total_workdays INTEGER NOT NULL DEFAULT 0,
			total_present_days INTEGER NOT NULL DEFAULT 0,
			total_holidays_taken INTEGER NOT NULL DEFAULT 0,
			total_occasional_holidays INTEGER NOT NULL DEFAULT 0,
			total_task_assigned INTEGER NOT NULL DEFAULT 0,
			assigned_tasks TEXT NOT NULL DEFAULT '',
			total_task_completed INTEGER NOT NULL DEFAULT 0,
			completed_tasks TEXT NOT NULL DEFAULT '',
			joining_date TIMESTAMPTZ,
			leaving_date TIMESTAMPTZ,
			employee_present_status VARCHAR(20) NOT NULL DEFAULT 'Running',
			UNIQUE (employee_id, month, year)
		)`,

		`CREATE TABLE IF NOT EXISTS system_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			last_processed_month VARCHAR(10) NOT NULL DEFAULT '',
			last_processed_year INTEGER NOT NULL DEFAULT 0
		)`,

		`CREATE TABLE IF NOT EXISTS messages (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(100) NOT NULL DEFAULT '',
			email VARCHAR(255) NOT NULL,
			body TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		// Singleton seeds. Friday and a 09:00-17:00 window are the
		// documented initialization defaults.
		`INSERT INTO default_holiday (id, day) VALUES (1, 'friday')
			ON CONFLICT (id) DO NOTHING`,
		`INSERT INTO attendance_time_settings (id, start_time, end_time) VALUES (1, '09:00', '17:00')
			ON CONFLICT (id) DO NOTHING`,
		`INSERT INTO system_state (id) VALUES (1)
			ON CONFLICT (id) DO NOTHING`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
