package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"job-portal-backend/internal/domain"
	"job-portal-backend/internal/usecase"
	"job-portal-backend/pkg/apperror"
)

func recruiterCtx(userID string) context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyUserID, userID)
	return context.WithValue(ctx, domain.KeyUserRole, domain.RoleRecruiter)
}

func validRecruiterProfile(userID string) *domain.RecruiterProfile {
	return &domain.RecruiterProfile{
		ID:          "profile1",
		UserID:      userID,
		UserName:    "Rohan Mehta",
		Email:       "rohan@example.com",
		PhoneNumber: "+919876500000",
		CompanyName: "Acme Hiring",
		SkillTests:  []domain.SkillTest{},
	}
}

func sampleQuestions(n int) []domain.Question {
	questions := make([]domain.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, domain.Question{
			Question: "Which keyword declares a constant?",
			Options:  []string{"const", "let", "var", "def"},
			Answer:   "const",
		})
	}
	return questions
}

func TestRecruiterAccessControl(t *testing.T) {
	t.Run("Should refuse non-recruiter roles", func(t *testing.T) {
		mockRepo := new(MockRecruiterRepo)
		uc := usecase.NewRecruiterUsecase(mockRepo, nil, testValidator())

		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		ctx = context.WithValue(ctx, domain.KeyUserRole, domain.RoleCandidate)

		_, err := uc.AddSkillTest(ctx, &domain.SkillTest{TestName: "Go Basics", Questions: sampleQuestions(1)})
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusForbidden, appErr.Code)
	})

	t.Run("Should answer 404 when no profile exists yet", func(t *testing.T) {
		mockRepo := new(MockRecruiterRepo)
		uc := usecase.NewRecruiterUsecase(mockRepo, nil, testValidator())

		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(nil, nil)

		_, err := uc.GetOwnProfile(recruiterCtx("user1"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Recruiter not found")
	})
}

func TestAddSkillTest(t *testing.T) {
	t.Run("Should recompute the question count from the submitted list", func(t *testing.T) {
		mockRepo := new(MockRecruiterRepo)
		uc := usecase.NewRecruiterUsecase(mockRepo, nil, testValidator())

		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(validRecruiterProfile("user1"), nil)
		mockRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.RecruiterProfile")).Return(nil)

		test, err := uc.AddSkillTest(recruiterCtx("user1"), &domain.SkillTest{
			TestName:       "Go Basics",
			TotalQuestions: 99, // client value is ignored
			Questions:      sampleQuestions(3),
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, test.TotalQuestions)
		assert.NotEmpty(t, test.ID)
		assert.False(t, test.CreatedAt.IsZero())
	})

	t.Run("Should reject a test without questions", func(t *testing.T) {
		mockRepo := new(MockRecruiterRepo)
		uc := usecase.NewRecruiterUsecase(mockRepo, nil, testValidator())

		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(validRecruiterProfile("user1"), nil)

		_, err := uc.AddSkillTest(recruiterCtx("user1"), &domain.SkillTest{TestName: "Empty Test"})
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
		mockRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Should reject questions without exactly four options", func(t *testing.T) {
		mockRepo := new(MockRecruiterRepo)
		uc := usecase.NewRecruiterUsecase(mockRepo, nil, testValidator())

		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(validRecruiterProfile("user1"), nil)

		_, err := uc.AddSkillTest(recruiterCtx("user1"), &domain.SkillTest{
			TestName: "Go Basics",
			Questions: []domain.Question{
				{Question: "Pick one", Options: []string{"a", "b"}, Answer: "a"},
			},
		})
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	})
}

func TestListSkillTests(t *testing.T) {
	t.Run("Listing should never include questions or instructions", func(t *testing.T) {
		mockRepo := new(MockRecruiterRepo)
		uc := usecase.NewRecruiterUsecase(mockRepo, nil, testValidator())

		profile := validRecruiterProfile("user1")
		profile.SkillTests = []domain.SkillTest{
			{ID: "t1", TestName: "Go Basics", Instructions: "Answer all", TotalQuestions: 3, Questions: sampleQuestions(3)},
		}
		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(profile, nil)

		summaries, err := uc.ListSkillTests(recruiterCtx("user1"))
		assert.NoError(t, err)
		assert.Len(t, summaries, 1)
		assert.Equal(t, "t1", summaries[0].ID)
		assert.Equal(t, 3, summaries[0].TotalQuestions)
	})

	t.Run("Fetching one test should include its questions", func(t *testing.T) {
		mockRepo := new(MockRecruiterRepo)
		uc := usecase.NewRecruiterUsecase(mockRepo, nil, testValidator())

		profile := validRecruiterProfile("user1")
		profile.SkillTests = []domain.SkillTest{
			{ID: "t1", TestName: "Go Basics", TotalQuestions: 3, Questions: sampleQuestions(3)},
		}
		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(profile, nil)

		test, err := uc.GetSkillTest(recruiterCtx("user1"), "t1")
		assert.NoError(t, err)
		assert.Len(t, test.Questions, 3)

		_, err = uc.GetSkillTest(recruiterCtx("user1"), "missing")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Skill test not found")
	})
}

func TestDeleteSkillTest(t *testing.T) {
	t.Run("Should remove the matching test", func(t *testing.T) {
		mockRepo := new(MockRecruiterRepo)
		uc := usecase.NewRecruiterUsecase(mockRepo, nil, testValidator())

		profile := validRecruiterProfile("user1")
		profile.SkillTests = []domain.SkillTest{
			{ID: "t1", TestName: "Go Basics", TotalQuestions: 1, Questions: sampleQuestions(1)},
			{ID: "t2", TestName: "SQL Basics", TotalQuestions: 1, Questions: sampleQuestions(1)},
		}
		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(profile, nil)
		mockRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.RecruiterProfile)
			assert.Len(t, p.SkillTests, 1)
			assert.Equal(t, "t2", p.SkillTests[0].ID)
		})

		err := uc.DeleteSkillTest(recruiterCtx("user1"), "t1")
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Deleting an absent id should still succeed", func(t *testing.T) {
		mockRepo := new(MockRecruiterRepo)
		uc := usecase.NewRecruiterUsecase(mockRepo, nil, testValidator())

		profile := validRecruiterProfile("user1")
		profile.SkillTests = []domain.SkillTest{
			{ID: "t1", TestName: "Go Basics", TotalQuestions: 1, Questions: sampleQuestions(1)},
		}
		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(profile, nil)
		mockRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.RecruiterProfile)
			assert.Len(t, p.SkillTests, 1)
		})

		err := uc.DeleteSkillTest(recruiterCtx("user1"), "never-existed")
		assert.NoError(t, err)
	})
}
