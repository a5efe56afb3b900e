package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"movingco/internal/db"
)

type CityRepository struct {
	DB *sql.DB
}

func NewCityRepository(db *sql.DB) *CityRepository {
	return &CityRepository{DB: db}
}

func (r *CityRepository) List() ([]db.City, error) {
	rows, err := r.DB.Query(`
		SELECT id, city_name, city_icon, is_active
		FROM cities_config
		ORDER BY city_name`)
	if err != nil {
		return nil, fmt.Errorf("error querying cities: %w", err)
	}
	defer rows.Close()

	var cities []db.City
	for rows.Next() {
		var c db.City
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.IsActive); err != nil {
			return nil, fmt.Errorf("error scanning city row: %w", err)
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

func (r *CityRepository) ListActiveNames() ([]string, error) {
	rows, err := r.DB.Query(`
		SELECT city_name FROM cities_config
		WHERE is_active = TRUE
		ORDER BY city_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *CityRepository) Create(name, icon string, isActive bool) error {
	_, err := r.DB.Exec(`
		INSERT INTO cities_config (city_name, city_icon, is_active)
		VALUES ($1, $2, $3)`,
		name, icon, isActive)
	return err
}

// Update renames and reconfigures the city currently named oldName.
func (r *CityRepository) Update(oldName, newName, icon string, isActive bool) error {
	result, err := r.DB.Exec(`
		UPDATE cities_config
		SET city_name = $1, city_icon = $2, is_active = $3, updated_at = NOW()
		WHERE city_name = $4`,
		newName, icon, isActive, oldName)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("city %q not found", oldName)
	}
	return nil
}

func (r *CityRepository) UpdateStatus(name, icon string, isActive bool) error {
	_, err := r.DB.Exec(`
		UPDATE cities_config
		SET is_active = $1, city_icon = $2, updated_at = NOW()
		WHERE city_name = $3`,
		isActive, icon, name)
	return err
}

func (r *CityRepository) Delete(name string) error {
	result, err := r.DB.Exec(`DELETE FROM cities_config WHERE city_name = $1`, name)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New("city not found")
	}
	return nil
}

func (r *CityRepository) Count() (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM cities_config`).Scan(&count)
	return count, err
}

func (r *CityRepository) SeedDefaults(cities []db.City) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, c := range cities {
		if _, err := tx.Exec(`
			INSERT INTO cities_config (city_name, city_icon, is_active)
			VALUES ($1, $2, $3)
			ON CONFLICT (city_name) DO NOTHING`,
			c.Name, c.Icon, c.IsActive); err != nil {
			return err
		}
	}
	return tx.Commit()
}
