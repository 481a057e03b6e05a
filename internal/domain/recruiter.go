package domain

import (
	"context"
	"time"
)

type Question struct {
	Question string   `json:"question" validate:"required"`
	Options  []string `json:"options" validate:"required,len=4,dive,required"`
	Answer   string   `json:"answer" validate:"required"`
}

type SkillTest struct {
	ID             string     `json:"id"`
	TestName       string     `json:"test_name" validate:"required,no_emoji"`
	Instructions   string     `json:"instructions,omitempty"`
	TotalQuestions int        `json:"total_questions"`
	Questions      []Question `json:"questions,omitempty" validate:"required,min=1,dive"`
	CreatedAt      time.Time  `json:"created_at"`
}

// SkillTestSummary is the listing projection: questions and instructions
// are stripped so candidates browsing tests never see the answers.
type SkillTestSummary struct {
	ID             string    `json:"id"`
	TestName       string    `json:"test_name"`
	TotalQuestions int       `json:"total_questions"`
	CreatedAt      time.Time `json:"created_at"`
}

// RecruiterProfile is the recruiter aggregate holding the embedded
// skill-test sequence.
type RecruiterProfile struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id" validate:"required"`
	UserName    string      `json:"user_name" validate:"required,valid_name"`
	Email       string      `json:"email" validate:"required,email"`
	PhoneNumber string      `json:"phone_number" validate:"required,valid_phone"`
	CompanyName string      `json:"company_name"`
	About       string      `json:"about" validate:"max=1000"`
	SkillTests  []SkillTest `json:"skill_tests" validate:"dive"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type RecruiterRepository interface {
	GetByUserID(ctx context.Context, userID string) (*RecruiterProfile, error)
	Upsert(ctx context.Context, profile *RecruiterProfile) error
}

// RecruiterUpdate is the recruiter profile form.
type RecruiterUpdate struct {
	UserName    string `json:"user_name" validate:"required,valid_name"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required,valid_phone"`
	CompanyName string `json:"company_name" validate:"required"`
	About       string `json:"about" validate:"max=1000"`
}

type RecruiterUsecase interface {
	GetOwnProfile(ctx context.Context) (*RecruiterProfile, error)
	UpdateProfile(ctx context.Context, input *RecruiterUpdate) (*RecruiterProfile, error)
	AddSkillTest(ctx context.Context, test *SkillTest) (*SkillTest, error)
	ListSkillTests(ctx context.Context) ([]SkillTestSummary, error)
	GetSkillTest(ctx context.Context, id string) (*SkillTest, error)
	DeleteSkillTest(ctx context.Context, id string) error
}
