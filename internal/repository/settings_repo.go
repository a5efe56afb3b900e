package repository

import (
	"database/sql"
	"fmt"
)

// SettingsRepository persists system settings as flattened dotted keys
// (e.g. "taxAndFees.gstRate"). Nesting and type coercion happen in the
// service layer.
type SettingsRepository struct {
	DB *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

func (r *SettingsRepository) GetAll() (map[string]string, error) {
	rows, err := r.DB.Query(`SELECT setting_key, setting_value FROM system_settings`)
	if err != nil {
		return nil, fmt.Errorf("error querying system settings: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("error scanning setting row: %w", err)
		}
		settings[key] = value
	}
	return settings, rows.Err()
}

func (r *SettingsRepository) UpsertMany(settings map[string]string) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for key, value := range settings {
		if _, err := tx.Exec(`
			INSERT INTO system_settings (setting_key, setting_value, updated_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (setting_key)
			DO UPDATE SET setting_value = EXCLUDED.setting_value, updated_at = NOW()`,
			key, value); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *SettingsRepository) Count() (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM system_settings`).Scan(&count)
	return count, err
}

func (r *SettingsRepository) Replace(settings map[string]string) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM system_settings`); err != nil {
		return err
	}
	for key, value := range settings {
		if _, err := tx.Exec(
			`INSERT INTO system_settings (setting_key, setting_value) VALUES ($1, $2)`,
			key, value); err != nil {
			return err
		}
	}
	return tx.Commit()
}
