package db

import "database/sql"

// EnsureSchema creates the tables this service needs. Safe to run on
// every boot.
func EnsureSchema(database *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS pricing_config (
			config_key VARCHAR(255) PRIMARY KEY,
			config_value TEXT NOT NULL,
			updated_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS cities_config (
			id SERIAL PRIMARY KEY,
			city_name VARCHAR(255) UNIQUE NOT NULL,
			city_icon VARCHAR(16) DEFAULT '🏙️',
			is_active BOOLEAN DEFAULT true,
			updated_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS system_settings (
			setting_key VARCHAR(255) PRIMARY KEY,
			setting_value TEXT NOT NULL,
			updated_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS admins (
			id SERIAL PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS quote_leads (
			id SERIAL PRIMARY KEY,
			code VARCHAR(16) UNIQUE NOT NULL,
			service_type VARCHAR(32) NOT NULL,
			user_name VARCHAR(255) NOT NULL,
			user_email VARCHAR(255) NOT NULL,
			user_phone VARCHAR(64) DEFAULT '',
			language VARCHAR(8) DEFAULT 'zh',
			request_json TEXT NOT NULL,
			subtotal NUMERIC(12,2) NOT NULL,
			tax NUMERIC(12,2) NOT NULL,
			total NUMERIC(12,2) NOT NULL,
			needs_deposit BOOLEAN DEFAULT false,
			deposit_status VARCHAR(16) DEFAULT 'none',
			stripe_session_id VARCHAR(255) DEFAULT '',
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := database.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
