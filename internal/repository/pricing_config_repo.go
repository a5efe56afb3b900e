package repository

import (
	"database/sql"
	"fmt"
)

// PricingConfigRepository persists the key-value pricing configuration.
// Values are JSON documents or plain scalars, the repository does not
// interpret them.
type PricingConfigRepository struct {
	DB *sql.DB
}

func NewPricingConfigRepository(db *sql.DB) *PricingConfigRepository {
	return &PricingConfigRepository{DB: db}
}

func (r *PricingConfigRepository) GetAll() (map[string]string, error) {
	rows, err := r.DB.Query(`SELECT config_key, config_value FROM pricing_config`)
	if err != nil {
		return nil, fmt.Errorf("error querying pricing config: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("error scanning pricing config row: %w", err)
		}
		values[key] = value
	}
	return values, rows.Err()
}

func (r *PricingConfigRepository) Upsert(key, value string) error {
	_, err := r.DB.Exec(`
		INSERT INTO pricing_config (config_key, config_value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (config_key)
		DO UPDATE SET config_value = EXCLUDED.config_value, updated_at = NOW()`,
		key, value)
	return err
}

func (r *PricingConfigRepository) Count() (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM pricing_config`).Scan(&count)
	return count, err
}

// Replace wipes the table and writes the given values, used by the
// reset endpoint and first-run seeding.
func (r *PricingConfigRepository) Replace(values map[string]string) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM pricing_config`); err != nil {
		return err
	}
	for key, value := range values {
		if _, err := tx.Exec(
			`INSERT INTO pricing_config (config_key, config_value) VALUES ($1, $2)`,
			key, value); err != nil {
			return err
		}
	}
	return tx.Commit()
}
