package usecase

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/validation"
)

type recruiterUsecase struct {
	repo     domain.RecruiterRepository
	userRepo domain.UserRepository
	validate *validator.Validate
}

func NewRecruiterUsecase(repo domain.RecruiterRepository, userRepo domain.UserRepository, validate *validator.Validate) domain.RecruiterUsecase {
	return &recruiterUsecase{repo: repo, userRepo: userRepo, validate: validate}
}

func (u *recruiterUsecase) GetOwnProfile(ctx context.Context) (*domain.RecruiterProfile, error) {
	profile, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Recruiter not found")
	}
	return profile, nil
}

func (u *recruiterUsecase) UpdateProfile(ctx context.Context, input *domain.RecruiterUpdate) (*domain.RecruiterProfile, error) {
	return u.mutate(ctx, func(p *domain.RecruiterProfile) {
		p.UserName = input.UserName
		p.Email = input.Email
		p.PhoneNumber = input.PhoneNumber
		p.CompanyName = input.CompanyName
		p.About = input.About
	})
}

// AddSkillTest appends the test to the recruiter aggregate. total_questions
// is always recomputed server-side from the submitted question list.
func (u *recruiterUsecase) AddSkillTest(ctx context.Context, test *domain.SkillTest) (*domain.SkillTest, error) {
	test.ID = uuid.NewString()
	test.TotalQuestions = len(test.Questions)
	test.CreatedAt = time.Now()

	_, err := u.mutate(ctx, func(p *domain.RecruiterProfile) {
		p.SkillTests = append(p.SkillTests, *test)
	})
	if err != nil {
		return nil, err
	}
	return test, nil
}

// ListSkillTests strips questions and instructions from the listing so the
// answer sheet never travels with it.
func (u *recruiterUsecase) ListSkillTests(ctx context.Context) ([]domain.SkillTestSummary, error) {
	profile, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Recruiter not found")
	}

	summaries := make([]domain.SkillTestSummary, 0, len(profile.SkillTests))
	for _, t := range profile.SkillTests {
		summaries = append(summaries, domain.SkillTestSummary{
			ID:             t.ID,
			TestName:       t.TestName,
			TotalQuestions: t.TotalQuestions,
			CreatedAt:      t.CreatedAt,
		})
	}
	return summaries, nil
}

func (u *recruiterUsecase) GetSkillTest(ctx context.Context, id string) (*domain.SkillTest, error) {
	profile, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Recruiter not found")
	}

	for i := range profile.SkillTests {
		if profile.SkillTests[i].ID == id {
			return &profile.SkillTests[i], nil
		}
	}
	return nil, apperror.NotFound("Skill test not found")
}

// DeleteSkillTest pulls the test with the given id from the aggregate.
// An id that is not present leaves the list unchanged and still succeeds.
func (u *recruiterUsecase) DeleteSkillTest(ctx context.Context, id string) error {
	_, err := u.mutate(ctx, func(p *domain.RecruiterProfile) {
		p.SkillTests = removeByID(p.SkillTests, id, func(t domain.SkillTest) string { return t.ID })
	})
	return err
}

func (u *recruiterUsecase) load(ctx context.Context) (*domain.RecruiterProfile, error) {
	userID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || userID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

// mutate loads the aggregate (seeding it from the user record on first
// write), applies the splice, re-validates the whole aggregate and persists
// it as one unit.
func (u *recruiterUsecase) mutate(ctx context.Context, apply func(*domain.RecruiterProfile)) (*domain.RecruiterProfile, error) {
	if role, _ := ctx.Value(domain.KeyUserRole).(string); role != domain.RoleRecruiter {
		return nil, apperror.Forbidden("Only recruiters can manage a recruiter profile")
	}

	profile, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		userID, _ := ctx.Value(domain.KeyUserID).(string)
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

func (u *recruiterUsecase) seedProfile(ctx context.Context, userID string) (*domain.RecruiterProfile, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	return &domain.RecruiterProfile{
		ID:          uuid.NewString(),
		UserID:      userID,
		UserName:    user.UserName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		SkillTests:  []domain.SkillTest{},
	}, nil
}
