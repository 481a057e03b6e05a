package usecase

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/validation"
)

const uploadURLExpiry = 15 * time.Minute

// resumeExtensions whitelists upload content types.
var resumeExtensions = map[string]string{
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
}

// FileStorage issues pre-signed upload slots for profile files.
type FileStorage interface {
	PresignUpload(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)
	ObjectURL(key string) string
}

type candidateUsecase struct {
	repo     domain.CandidateRepository
	userRepo domain.UserRepository
	storage  FileStorage
	validate *validator.Validate
}

// NewCandidateUsecase wires candidate profile flows. storage may be nil when
// S3 is not configured; resume upload slots are then unavailable.
func NewCandidateUsecase(repo domain.CandidateRepository, userRepo domain.UserRepository, storage FileStorage, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{repo: repo, userRepo: userRepo, storage: storage, validate: validate}
}

func (u *candidateUsecase) GetOwnProfile(ctx context.Context) (*domain.CandidateProfile, error) {
	userID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || userID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Candidate profile not found")
	}
	return profile, nil
}

func (u *candidateUsecase) GetByID(ctx context.Context, id string) (*domain.CandidateProfile, error) {
	profile, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Candidate profile not found")
	}
	return profile, nil
}

func (u *candidateUsecase) QuickUpdate(ctx context.Context, input *domain.CandidateQuickUpdate) (*domain.CandidateProfile, error) {
	return u.mutate(ctx, func(p *domain.CandidateProfile) {
		p.UserName = input.UserName
		p.Email = input.Email
		p.PhoneNumber = input.PhoneNumber
		p.About = input.About
		p.Bio = input.Bio
		p.KeySkills = input.KeySkills
		p.ProfileImage = input.ProfileImage
		p.CurriculumVitae = input.CurriculumVitae
	})
}

func (u *candidateUsecase) UpdatePersonalInfo(ctx context.Context, input *domain.CandidatePersonalInfo) (*domain.CandidateProfile, error) {
	return u.mutate(ctx, func(p *domain.CandidateProfile) {
		p.UserName = input.UserName
		p.Email = input.Email
		p.PhoneNumber = input.PhoneNumber
		p.DateOfBirth = input.DateOfBirth
		p.Gender = input.Gender
		p.CurrentLocation = input.CurrentLocation
		p.HouseNo = input.HouseNo
		p.Street = input.Street
		p.City = input.City
		p.State = input.State
		p.Country = input.Country
		p.PinCode = input.PinCode
	})
}

func (u *candidateUsecase) AddExperience(ctx context.Context, exp *domain.WorkExperience) (*domain.CandidateProfile, error) {
	exp.ID = uuid.NewString()
	return u.mutate(ctx, func(p *domain.CandidateProfile) {
		p.WorkExperience = append(p.WorkExperience, *exp)
	})
}

func (u *candidateUsecase) RemoveExperience(ctx context.Context, id string) error {
	_, err := u.mutate(ctx, func(p *domain.CandidateProfile) {
		p.WorkExperience = removeByID(p.WorkExperience, id, func(e domain.WorkExperience) string { return e.ID })
	})
	return err
}

func (u *candidateUsecase) AddEducation(ctx context.Context, edu *domain.Education) (*domain.CandidateProfile, error) {
	edu.ID = uuid.NewString()
	return u.mutate(ctx, func(p *domain.CandidateProfile) {
		p.Education = append(p.Education, *edu)
	})
}

func (u *candidateUsecase) RemoveEducation(ctx context.Context, id string) error {
	_, err := u.mutate(ctx, func(p *domain.CandidateProfile) {
		p.Education = removeByID(p.Education, id, func(e domain.Education) string { return e.ID })
	})
	return err
}

func (u *candidateUsecase) AddCertification(ctx context.Context, cert *domain.Certification) (*domain.CandidateProfile, error) {
	cert.ID = uuid.NewString()
	return u.mutate(ctx, func(p *domain.CandidateProfile) {
		p.Certifications = append(p.Certifications, *cert)
	})
}

func (u *candidateUsecase) RemoveCertification(ctx context.Context, id string) error {
	_, err := u.mutate(ctx, func(p *domain.CandidateProfile) {
		p.Certifications = removeByID(p.Certifications, id, func(c domain.Certification) string { return c.ID })
	})
	return err
}

func (u *candidateUsecase) ResumeUploadURL(ctx context.Context, contentType string) (*domain.ResumeUpload, error) {
	userID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || userID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if u.storage == nil {
		return nil, apperror.New(http.StatusServiceUnavailable, "File storage is not configured", nil)
	}

	ext, ok := resumeExtensions[contentType]
	if !ok {
		return nil, apperror.Unprocessable("Unsupported resume file type", []apperror.FieldError{
			{Field: "content_type", Message: "Resume must be a PDF or Word document"},
		})
	}

	key := "resumes/" + userID + "/" + uuid.NewString() + ext
	uploadURL, err := u.storage.PresignUpload(ctx, key, contentType, uploadURLExpiry)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.ResumeUpload{
		UploadURL: uploadURL,
		FileURL:   u.storage.ObjectURL(key),
		ExpiresIn: int(uploadURLExpiry.Seconds()),
	}, nil
}

// mutate loads the aggregate (seeding it from the user record on first
// write), applies the splice, re-validates the whole aggregate and persists
// it as one unit.
func (u *candidateUsecase) mutate(ctx context.Context, apply func(*domain.CandidateProfile)) (*domain.CandidateProfile, error) {
	userID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || userID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if role, _ := ctx.Value(domain.KeyUserRole).(string); role != domain.RoleCandidate {
		return nil, apperror.Forbidden("Only candidates can update a candidate profile")
	}

	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		profile, err = u.seedProfile(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	apply(profile)

	if err := u.validate.Struct(profile); err != nil {
		return nil, apperror.Unprocessable("Validation failed", validation.Translate(err))
	}

	if err := u.repo.Upsert(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *candidateUsecase) seedProfile(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	return &domain.CandidateProfile{
		ID:             uuid.NewString(),
		UserID:         userID,
		UserName:       user.UserName,
		Email:          user.Email,
		PhoneNumber:    user.PhoneNumber,
		KeySkills:      []string{},
		WorkExperience: []domain.WorkExperience{},
		Education:      []domain.Education{},
		Certifications: []domain.Certification{},
	}, nil
}

// removeByID drops the element with the given id. A missing id is a no-op:
// the sequence is returned unchanged and the caller still reports success.
func removeByID[T any](items []T, id string, idOf func(T) string) []T {
	out := items[:0]
	for _, item := range items {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}
