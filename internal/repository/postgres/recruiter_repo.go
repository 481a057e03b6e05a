package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"job-portal-backend/internal/domain"
)

type recruiterRepo struct {
	db *pgxpool.Pool
}

func NewRecruiterRepository(db *pgxpool.Pool) domain.RecruiterRepository {
	return &recruiterRepo{db: db}
}

func (r *recruiterRepo) GetByUserID(ctx context.Context, userID string) (*domain.RecruiterProfile, error) {
	query := `
		SELECT id, user_id, user_name, email, phone_number,
		       COALESCE(company_name, ''), COALESCE(about, ''), skill_tests,
		       created_at, updated_at
		FROM recruiter_profiles WHERE user_id = $1`

	var p domain.RecruiterProfile
	var tests []byte

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.UserName, &p.Email, &p.PhoneNumber,
		&p.CompanyName, &p.About, &tests,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(tests, &p.SkillTests); err != nil {
		return nil, fmt.Errorf("unmarshaling skill tests: %w", err)
	}
	return &p, nil
}

// Upsert persists the recruiter aggregate, skill tests included, as one row.
func (r *recruiterRepo) Upsert(ctx context.Context, p *domain.RecruiterProfile) error {
	tests, err := json.Marshal(p.SkillTests)
	if err != nil {
		return fmt.Errorf("marshaling skill tests: %w", err)
	}

	query := `
		INSERT INTO recruiter_profiles (
			id, user_id, user_name, email, phone_number, company_name, about, skill_tests, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			user_name = EXCLUDED.user_name, email = EXCLUDED.email,
			phone_number = EXCLUDED.phone_number, company_name = EXCLUDED.company_name,
			about = EXCLUDED.about, skill_tests = EXCLUDED.skill_tests,
			updated_at = NOW()`

	_, err = r.db.Exec(ctx, query,
		p.ID, p.UserID, p.UserName, p.Email, p.PhoneNumber,
		p.CompanyName, p.About, tests,
	)
	if err != nil {
		return fmt.Errorf("upserting recruiter profile: %w", err)
	}
	return nil
}
