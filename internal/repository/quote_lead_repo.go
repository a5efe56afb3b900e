package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"movingco/internal/db"
)

type QuoteLeadRepository struct {
	DB *sql.DB
}

func NewQuoteLeadRepository(database *sql.DB) *QuoteLeadRepository {
	return &QuoteLeadRepository{DB: database}
}

func (r *QuoteLeadRepository) Create(lead *db.QuoteLead) error {
	query := `
		INSERT INTO quote_leads
		(code, service_type, user_name, user_email, user_phone, language, request_json,
		 subtotal, tax, total, needs_deposit, deposit_status, stripe_session_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at`
	return r.DB.QueryRow(query,
		lead.Code,
		lead.ServiceType,
		lead.UserName,
		lead.UserEmail,
		lead.UserPhone,
		lead.Language,
		lead.RequestJSON,
		lead.Subtotal,
		lead.Tax,
		lead.Total,
		lead.NeedsDeposit,
		lead.DepositStatus,
		lead.StripeSessionID,
		lead.CreatedAt,
		lead.UpdatedAt,
	).Scan(&lead.ID, &lead.CreatedAt, &lead.UpdatedAt)
}

func (r *QuoteLeadRepository) GetByCode(code string) (*db.QuoteLead, error) {
	var lead db.QuoteLead
	query := `
		SELECT id, code, service_type, user_name, user_email, user_phone, language, request_json,
		       subtotal, tax, total, needs_deposit, deposit_status, stripe_session_id, created_at, updated_at
		FROM quote_leads WHERE code = $1`
	err := r.DB.QueryRow(query, code).Scan(
		&lead.ID, &lead.Code, &lead.ServiceType, &lead.UserName, &lead.UserEmail, &lead.UserPhone,
		&lead.Language, &lead.RequestJSON, &lead.Subtotal, &lead.Tax, &lead.Total,
		&lead.NeedsDeposit, &lead.DepositStatus, &lead.StripeSessionID, &lead.CreatedAt, &lead.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("quote lead with code %q not found: %w", code, err)
		}
		return nil, fmt.Errorf("error querying quote lead: %w", err)
	}
	return &lead, nil
}

func (r *QuoteLeadRepository) List(serviceType, date string) ([]db.QuoteLead, error) {
	query := `
		SELECT id, code, service_type, user_name, user_email, user_phone, language, request_json,
		       subtotal, tax, total, needs_deposit, deposit_status, stripe_session_id, created_at, updated_at
		FROM quote_leads
		WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if serviceType != "" {
		query += " AND service_type = $" + strconv.Itoa(idx)
		args = append(args, serviceType)
		idx++
	}
	if date != "" {
		query += " AND DATE(created_at) = $" + strconv.Itoa(idx)
		args = append(args, date)
		idx++
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []db.QuoteLead
	for rows.Next() {
		var lead db.QuoteLead
		err := rows.Scan(
			&lead.ID, &lead.Code, &lead.ServiceType, &lead.UserName, &lead.UserEmail, &lead.UserPhone,
			&lead.Language, &lead.RequestJSON, &lead.Subtotal, &lead.Tax, &lead.Total,
			&lead.NeedsDeposit, &lead.DepositStatus, &lead.StripeSessionID, &lead.CreatedAt, &lead.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning quote lead row: %w", err)
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (r *QuoteLeadRepository) SetStripeSession(code, sessionID, depositStatus string) error {
	_, err := r.DB.Exec(`
		UPDATE quote_leads
		SET stripe_session_id = $1, deposit_status = $2, updated_at = NOW()
		WHERE code = $3`,
		sessionID, depositStatus, code)
	return err
}

func (r *QuoteLeadRepository) UpdateDepositStatusBySessionID(sessionID, depositStatus string) error {
	_, err := r.DB.Exec(`
		UPDATE quote_leads
		SET deposit_status = $1, updated_at = NOW()
		WHERE stripe_session_id = $2`,
		depositStatus, sessionID)
	return err
}

// DeleteOlderThan removes leads created before the given time and
// returns how many were purged.
func (r *QuoteLeadRepository) DeleteOlderThan(before time.Time) (int64, error) {
	result, err := r.DB.Exec(`DELETE FROM quote_leads WHERE created_at < $1`, before)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
