package domain

import (
	"context"
	"time"
)

type WorkExperience struct {
	ID             string  `json:"id"`
	Designation    string  `json:"designation" validate:"required"`
	CompanyName    string  `json:"company_name" validate:"required"`
	Location       string  `json:"location"`
	CurrentStatus  bool    `json:"current_status"`
	StartDate      string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        string  `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	NoticePeriod   string  `json:"notice_period"`
	AnnualSalary   float64 `json:"annual_salary" validate:"required"`
	JobDescription string  `json:"job_description" validate:"required"`
}

type Education struct {
	ID             string `json:"id"`
	Qualification  string `json:"qualification" validate:"required"`
	Specialization string `json:"specialization" validate:"required"`
	Institute      string `json:"institute" validate:"required"`
	PassYear       int    `json:"pass_year" validate:"omitempty,min=1950"`
}

type Certification struct {
	ID         string `json:"id"`
	Name       string `json:"certification_name" validate:"required"`
	IssuedBy   string `json:"issued_by"`
	IssuedYear int    `json:"issued_year" validate:"omitempty,min=1950"`
}

// CandidateProfile is the candidate aggregate. The embedded sequences are
// stored and re-validated with the parent as one unit.
type CandidateProfile struct {
	ID              string           `json:"id"`
	UserID          string           `json:"user_id" validate:"required"`
	UserName        string           `json:"user_name" validate:"required,valid_name"`
	Email           string           `json:"email" validate:"required,email"`
	PhoneNumber     string           `json:"phone_number" validate:"required,valid_phone"`
	About           string           `json:"about" validate:"max=300"`
	Bio             string           `json:"bio" validate:"max=1000"`
	DateOfBirth     string           `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender          string           `json:"gender" validate:"omitempty,oneof=male female other"`
	CurrentLocation string           `json:"current_location"`
	HouseNo         string           `json:"house_no"`
	Street          string           `json:"street"`
	City            string           `json:"city"`
	State           string           `json:"state"`
	Country         string           `json:"country"`
	PinCode         string           `json:"pin_code" validate:"omitempty,numeric"`
	KeySkills       []string         `json:"key_skills" validate:"dive,required"`
	WorkExperience  []WorkExperience `json:"work_experience" validate:"dive"`
	Education       []Education      `json:"education" validate:"dive"`
	Certifications  []Certification  `json:"certifications" validate:"dive"`
	ProfileImage    string           `json:"profile_image" validate:"omitempty,url" sanitize:"-"`
	CurriculumVitae string           `json:"curriculum_vitae" validate:"omitempty,url" sanitize:"-"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type CandidateRepository interface {
	GetByUserID(ctx context.Context, userID string) (*CandidateProfile, error)
	GetByID(ctx context.Context, id string) (*CandidateProfile, error)
	Upsert(ctx context.Context, profile *CandidateProfile) error
}

// CandidateQuickUpdate is the short profile form the front-end submits.
type CandidateQuickUpdate struct {
	UserName        string   `json:"user_name" validate:"required,valid_name"`
	Email           string   `json:"email" validate:"required,email"`
	PhoneNumber     string   `json:"phone_number" validate:"required,valid_phone"`
	About           string   `json:"about" validate:"required,max=300"`
	Bio             string   `json:"bio" validate:"required,max=1000"`
	KeySkills       []string `json:"key_skills" validate:"required,min=1,dive,required"`
	ProfileImage    string   `json:"profile_image" validate:"required,url" sanitize:"-"`
	CurriculumVitae string   `json:"curriculum_vitae" validate:"required,url" sanitize:"-"`
}

// CandidatePersonalInfo is the long personal-details form.
type CandidatePersonalInfo struct {
	UserName        string `json:"user_name" validate:"required,valid_name"`
	Email           string `json:"email" validate:"required,email"`
	PhoneNumber     string `json:"phone_number" validate:"required,valid_phone"`
	DateOfBirth     string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender          string `json:"gender" validate:"omitempty,oneof=male female other"`
	CurrentLocation string `json:"current_location"`
	HouseNo         string `json:"house_no" validate:"required"`
	Street          string `json:"street" validate:"required"`
	City            string `json:"city" validate:"required"`
	State           string `json:"state" validate:"required"`
	Country         string `json:"country" validate:"required"`
	PinCode         string `json:"pin_code" validate:"required,numeric"`
}

type CandidateUsecase interface {
	GetOwnProfile(ctx context.Context) (*CandidateProfile, error)
	GetByID(ctx context.Context, id string) (*CandidateProfile, error)
	QuickUpdate(ctx context.Context, input *CandidateQuickUpdate) (*CandidateProfile, error)
	UpdatePersonalInfo(ctx context.Context, input *CandidatePersonalInfo) (*CandidateProfile, error)
	AddExperience(ctx context.Context, exp *WorkExperience) (*CandidateProfile, error)
	RemoveExperience(ctx context.Context, id string) error
	AddEducation(ctx context.Context, edu *Education) (*CandidateProfile, error)
	RemoveEducation(ctx context.Context, id string) error
	AddCertification(ctx context.Context, cert *Certification) (*CandidateProfile, error)
	RemoveCertification(ctx context.Context, id string) error
	ResumeUploadURL(ctx context.Context, contentType string) (*ResumeUpload, error)
}

// ResumeUpload carries a pre-signed upload slot for a resume file.
type ResumeUpload struct {
	UploadURL string `json:"upload_url"`
	FileURL   string `json:"file_url"`
	ExpiresIn int    `json:"expires_in"`
}
