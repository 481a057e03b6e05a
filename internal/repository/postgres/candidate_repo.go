package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"job-portal-backend/internal/domain"
)

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

const candidateColumns = `
	id, user_id, user_name, email, phone_number, about, bio,
	COALESCE(date_of_birth, ''), COALESCE(gender, ''), COALESCE(current_location, ''),
	COALESCE(house_no, ''), COALESCE(street, ''), COALESCE(city, ''),
	COALESCE(state, ''), COALESCE(country, ''), COALESCE(pin_code, ''),
	key_skills, work_experience, education, certifications,
	COALESCE(profile_image, ''), COALESCE(curriculum_vitae, ''),
	created_at, updated_at`

func (r *candidateRepo) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidate_profiles WHERE user_id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, userID))
}

func (r *candidateRepo) GetByID(ctx context.Context, id string) (*domain.CandidateProfile, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidate_profiles WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// Upsert writes the whole aggregate in one statement. The embedded sequences
// travel as JSONB so a splice is never partially persisted.
func (r *candidateRepo) Upsert(ctx context.Context, p *domain.CandidateProfile) error {
	workExp, err := json.Marshal(p.WorkExperience)
	if err != nil {
		return fmt.Errorf("marshaling work experience: %w", err)
	}
	education, err := json.Marshal(p.Education)
	if err != nil {
		return fmt.Errorf("marshaling education: %w", err)
	}
	certs, err := json.Marshal(p.Certifications)
	if err != nil {
		return fmt.Errorf("marshaling certifications: %w", err)
	}

	query := `
		INSERT INTO candidate_profiles (
			id, user_id, user_name, email, phone_number, about, bio,
			date_of_birth, gender, current_location,
			house_no, street, city, state, country, pin_code,
			key_skills, work_experience, education, certifications,
			profile_image, curriculum_vitae, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			user_name = EXCLUDED.user_name, email = EXCLUDED.email,
			phone_number = EXCLUDED.phone_number, about = EXCLUDED.about, bio = EXCLUDED.bio,
			date_of_birth = EXCLUDED.date_of_birth, gender = EXCLUDED.gender,
			current_location = EXCLUDED.current_location, house_no = EXCLUDED.house_no,
			street = EXCLUDED.street, city = EXCLUDED.city, state = EXCLUDED.state,
			country = EXCLUDED.country, pin_code = EXCLUDED.pin_code,
			key_skills = EXCLUDED.key_skills, work_experience = EXCLUDED.work_experience,
			education = EXCLUDED.education, certifications = EXCLUDED.certifications,
			profile_image = EXCLUDED.profile_image, curriculum_vitae = EXCLUDED.curriculum_vitae,
			updated_at = NOW()`

	_, err = r.db.Exec(ctx, query,
		p.ID, p.UserID, p.UserName, p.Email, p.PhoneNumber, p.About, p.Bio,
		p.DateOfBirth, p.Gender, p.CurrentLocation,
		p.HouseNo, p.Street, p.City, p.State, p.Country, p.PinCode,
		pq.Array(p.KeySkills), workExp, education, certs,
		p.ProfileImage, p.CurriculumVitae,
	)
	if err != nil {
		return fmt.Errorf("upserting candidate profile: %w", err)
	}
	return nil
}

func (r *candidateRepo) scanOne(row pgx.Row) (*domain.CandidateProfile, error) {
	var p domain.CandidateProfile
	var keySkills []string
	var workExp, education, certs []byte

	err := row.Scan(
		&p.ID, &p.UserID, &p.UserName, &p.Email, &p.PhoneNumber, &p.About, &p.Bio,
		&p.DateOfBirth, &p.Gender, &p.CurrentLocation,
		&p.HouseNo, &p.Street, &p.City, &p.State, &p.Country, &p.PinCode,
		pq.Array(&keySkills), &workExp, &education, &certs,
		&p.ProfileImage, &p.CurriculumVitae,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	p.KeySkills = keySkills
	if err := json.Unmarshal(workExp, &p.WorkExperience); err != nil {
		return nil, fmt.Errorf("unmarshaling work experience: %w", err)
	}
	if err := json.Unmarshal(education, &p.Education); err != nil {
		return nil, fmt.Errorf("unmarshaling education: %w", err)
	}
	if err := json.Unmarshal(certs, &p.Certifications); err != nil {
		return nil, fmt.Errorf("unmarshaling certifications: %w", err)
	}
	return &p, nil
}
