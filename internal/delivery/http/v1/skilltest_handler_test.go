package v1_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"job-portal-backend/internal/delivery/http/middleware"
	v1 "job-portal-backend/internal/delivery/http/v1"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/logger"
	"job-portal-backend/pkg/validation"
)

type stubRecruiterUsecase struct{}

func (s *stubRecruiterUsecase) GetOwnProfile(ctx context.Context) (*domain.RecruiterProfile, error) {
	return &domain.RecruiterProfile{ID: "profile1"}, nil
}

func (s *stubRecruiterUsecase) UpdateProfile(ctx context.Context, input *domain.RecruiterUpdate) (*domain.RecruiterProfile, error) {
	return &domain.RecruiterProfile{ID: "profile1"}, nil
}

func (s *stubRecruiterUsecase) AddSkillTest(ctx context.Context, test *domain.SkillTest) (*domain.SkillTest, error) {
	test.ID = "t1"
	test.TotalQuestions = len(test.Questions)
	return test, nil
}

func (s *stubRecruiterUsecase) ListSkillTests(ctx context.Context) ([]domain.SkillTestSummary, error) {
	return []domain.SkillTestSummary{}, nil
}

func (s *stubRecruiterUsecase) GetSkillTest(ctx context.Context, id string) (*domain.SkillTest, error) {
	return &domain.SkillTest{ID: id}, nil
}

func (s *stubRecruiterUsecase) DeleteSkillTest(ctx context.Context, id string) error {
	return nil
}

func newSkillTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init()

	validate := validator.New()
	validation.RegisterValidators(validate)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	group := r.Group("/v1")
	v1.NewSkillTestHandler(group, &stubRecruiterUsecase{}, validate)
	return r
}

func TestCreateSkillTestStatus(t *testing.T) {
	router := newSkillTestRouter()

	body := `{
		"test_name": "Go Basics",
		"questions": [
			{"question": "Which keyword declares a constant?", "options": ["const", "let", "var", "def"], "answer": "const"}
		]
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/recruiters/me/skill-tests", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Skill test created successfully")
}

func TestDeleteSkillTestStatus(t *testing.T) {
	router := newSkillTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/v1/recruiters/me/skill-tests/never-existed", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
