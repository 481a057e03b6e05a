package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"job-portal-backend/internal/delivery/http/middleware"
	v1 "job-portal-backend/internal/delivery/http/v1"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/logger"
	"job-portal-backend/pkg/token"
	"job-portal-backend/pkg/validation"
)

// stubAuthUsecase returns canned results so the tests exercise only the
// HTTP surface: binding, validation, error mapping and cookies.
type stubAuthUsecase struct {
	signupErr error
	signInErr error
	user      *domain.User
	token     string
}

func (s *stubAuthUsecase) Signup(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	if s.signupErr != nil {
		return nil, s.signupErr
	}
	user.ID = "user1"
	return user, nil
}

func (s *stubAuthUsecase) SignIn(ctx context.Context, email, password string) (*domain.User, string, error) {
	if s.signInErr != nil {
		return nil, "", s.signInErr
	}
	return s.user, s.token, nil
}

func (s *stubAuthUsecase) CurrentUser(ctx context.Context) (*domain.User, error) {
	if s.user == nil {
		return nil, apperror.NotFound("Not authorized")
	}
	return s.user, nil
}

func (s *stubAuthUsecase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.user, nil
}

func (s *stubAuthUsecase) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	return nil
}

func passthrough(c *gin.Context) { c.Next() }

func newAuthRouter(uc domain.AuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init()

	validate := validator.New()
	validation.RegisterValidators(validate)
	tokens := token.NewService("test-secret", time.Hour)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	group := r.Group("/v1")
	v1.NewAuthHandler(group, uc, tokens, validate, passthrough, passthrough, passthrough)
	return r
}

func TestSignupValidation(t *testing.T) {
	router := newAuthRouter(&stubAuthUsecase{})

	t.Run("Should aggregate all field failures in one 422", func(t *testing.T) {
		body := `{"user_name":"Asha Kumar","email":"","phone_number":"","password":"s3cret","role":"candidate"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/signup", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var resp struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
			Error   []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"error"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "Validation failed", resp.Message)
		assert.Len(t, resp.Error, 2)

		fields := []string{resp.Error[0].Field, resp.Error[1].Field}
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "phone_number")
	})

	t.Run("Should accept names with apostrophes", func(t *testing.T) {
		body := `{"user_name":"O'Brien","email":"obrien@example.com","phone_number":"+919876543210","password":"s3cret","role":"candidate"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/signup", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Should reject malformed JSON with 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/signup", strings.NewReader("{nope"))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Should reject an unknown role", func(t *testing.T) {
		body := `{"user_name":"Asha Kumar","email":"asha@example.com","phone_number":"+919876543210","password":"s3cret","role":"superuser"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/signup", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestSignInCookie(t *testing.T) {
	user := &domain.User{ID: "user1", Email: "asha@example.com", Role: domain.RoleCandidate}
	router := newAuthRouter(&stubAuthUsecase{user: user, token: "signed-token"})

	t.Run("Should set the session cookie on success", func(t *testing.T) {
		body := `{"email":"asha@example.com","password":"s3cret"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/signin", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		cookies := w.Result().Cookies()
		var authCookie *http.Cookie
		for _, ck := range cookies {
			if ck.Name == middleware.AuthCookieName {
				authCookie = ck
			}
		}
		if assert.NotNil(t, authCookie) {
			assert.Equal(t, "signed-token", authCookie.Value)
			assert.True(t, authCookie.HttpOnly)
			assert.Greater(t, authCookie.MaxAge, 0)
		}
	})

	t.Run("Should map credential mismatch to 404", func(t *testing.T) {
		failing := newAuthRouter(&stubAuthUsecase{signInErr: apperror.NotFound("Invalid credentials")})

		body := `{"email":"asha@example.com","password":"wrong-pass"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/signin", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		failing.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	})
}

func TestSignOut(t *testing.T) {
	router := newAuthRouter(&stubAuthUsecase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/signout", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var cleared *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.AuthCookieName {
			cleared = ck
		}
	}
	if assert.NotNil(t, cleared) {
		assert.Empty(t, cleared.Value)
		assert.Less(t, cleared.MaxAge, 0)
	}
}
