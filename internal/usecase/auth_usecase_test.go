package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"job-portal-backend/internal/domain"
	"job-portal-backend/internal/usecase"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/token"
)

func testTokens() *token.Service {
	return token.NewService("test-secret", time.Hour)
}

func hashedUser(password string) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), 10)
	return &domain.User{
		ID:           "user1",
		UserName:     "Asha Kumar",
		Email:        "asha@example.com",
		PhoneNumber:  "+919876543210",
		PasswordHash: string(hash),
		Role:         domain.RoleCandidate,
	}
}

func TestSignup(t *testing.T) {
	t.Run("Should create user with hashed password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens(), nil)

		mockRepo.On("GetByEmail", mock.Anything, "fresh@example.com").Return(nil, nil)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

		user := &domain.User{
			UserName:    "Asha Kumar",
			Email:       "fresh@example.com",
			PhoneNumber: "+919876543210",
			Role:        domain.RoleCandidate,
		}
		created, err := uc.Signup(context.Background(), user, "s3cret")

		assert.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.False(t, created.IsBlocked)
		assert.NotEqual(t, "s3cret", created.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("s3cret")))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should reject duplicate email with 422", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens(), nil)

		mockRepo.On("GetByEmail", mock.Anything, "taken@example.com").Return(hashedUser("x"), nil)

		_, err := uc.Signup(context.Background(), &domain.User{Email: "taken@example.com"}, "pw")
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
		assert.Equal(t, "Email already exists", appErr.Message)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should publish user-created event after signup", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		publisher := newStubPublisher(nil)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens(), publisher)

		mockRepo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, nil)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		created, err := uc.Signup(context.Background(), &domain.User{
			UserName:    "Asha Kumar",
			Email:       "asha@example.com",
			PhoneNumber: "+919876543210",
			Role:        domain.RoleCandidate,
		}, "s3cret")
		assert.NoError(t, err)

		select {
		case event := <-publisher.published:
			assert.Equal(t, created.ID, event.ID)
			assert.Equal(t, "asha@example.com", event.Email)
			assert.Equal(t, domain.RoleCandidate, event.Role)
			assert.False(t, event.IsBlocked)
		case <-time.After(2 * time.Second):
			t.Fatal("user-created event was never published")
		}
	})

	t.Run("Should succeed even when the broker publish fails", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		publisher := newStubPublisher(errors.New("broker down"))
		uc := usecase.NewAuthUsecase(mockRepo, testTokens(), publisher)

		mockRepo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, nil)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		_, err := uc.Signup(context.Background(), &domain.User{Email: "asha@example.com"}, "s3cret")
		assert.NoError(t, err)

		select {
		case <-publisher.published:
		case <-time.After(2 * time.Second):
			t.Fatal("publish was never attempted")
		}
	})
}

func TestSignIn(t *testing.T) {
	t.Run("Should return a verifiable token on success", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		tokens := testTokens()
		uc := usecase.NewAuthUsecase(mockRepo, tokens, nil)

		user := hashedUser("s3cret")
		mockRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

		got, signed, err := uc.SignIn(context.Background(), user.Email, "s3cret")
		assert.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)

		claims, err := tokens.Parse(signed)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, user.Role, claims.Role)
	})

	t.Run("Unknown email and wrong password should be indistinguishable", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens(), nil)

		mockRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)
		mockRepo.On("GetByEmail", mock.Anything, "asha@example.com").Return(hashedUser("s3cret"), nil)

		_, _, unknownErr := uc.SignIn(context.Background(), "ghost@example.com", "whatever")
		_, _, mismatchErr := uc.SignIn(context.Background(), "asha@example.com", "wrong")

		assert.Error(t, unknownErr)
		assert.Error(t, mismatchErr)
		assert.Equal(t, unknownErr.Error(), mismatchErr.Error())

		var appErr *apperror.AppError
		assert.True(t, errors.As(unknownErr, &appErr))
		assert.Equal(t, http.StatusNotFound, appErr.Code)
		assert.True(t, errors.As(mismatchErr, &appErr))
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})

	t.Run("Should refuse blocked accounts with valid credentials", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens(), nil)

		user := hashedUser("s3cret")
		user.IsBlocked = true
		mockRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

		_, _, err := uc.SignIn(context.Background(), user.Email, "s3cret")
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusForbidden, appErr.Code)
		assert.Equal(t, "Account is blocked", appErr.Message)
	})
}

func TestCurrentUser(t *testing.T) {
	t.Run("Should answer 404 when no identity is attached", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens(), nil)

		_, err := uc.CurrentUser(context.Background())
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusNotFound, appErr.Code)
		assert.Equal(t, "Not authorized", appErr.Message)
	})

	t.Run("Should load the user from the context identity", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens(), nil)

		user := hashedUser("s3cret")
		mockRepo.On("GetByID", mock.Anything, "user1").Return(user, nil)

		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		got, err := uc.CurrentUser(ctx)
		assert.NoError(t, err)
		assert.Equal(t, user.Email, got.Email)
	})
}

func TestChangePassword(t *testing.T) {
	t.Run("Should reject a wrong current password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens(), nil)

		mockRepo.On("GetByID", mock.Anything, "user1").Return(hashedUser("s3cret"), nil)

		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		err := uc.ChangePassword(ctx, "wrong", "newpass")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid credentials")
		mockRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should store a hash of the new password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens(), nil)

		mockRepo.On("GetByID", mock.Anything, "user1").Return(hashedUser("s3cret"), nil)
		mockRepo.On("UpdatePassword", mock.Anything, "user1", mock.AnythingOfType("string")).Return(nil).Run(func(args mock.Arguments) {
			hash := args.Get(2).(string)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpass")))
		})

		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		err := uc.ChangePassword(ctx, "s3cret", "newpass")
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}
