package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/logger"
	"job-portal-backend/pkg/token"
)

// bcrypt work factor is fixed at 10.
const bcryptCost = 10

const publishTimeout = 5 * time.Second

// invalidCredentials is returned for unknown email AND password mismatch.
// Identical on purpose so callers cannot enumerate registered emails.
func invalidCredentials() *apperror.AppError {
	return apperror.NotFound("Invalid credentials")
}

type authUsecase struct {
	userRepo  domain.UserRepository
	tokens    *token.Service
	publisher domain.EventPublisher
}

// NewAuthUsecase wires the auth flows. publisher may be nil when the broker
// is not configured; signup then skips the notification.
func NewAuthUsecase(userRepo domain.UserRepository, tokens *token.Service, publisher domain.EventPublisher) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens, publisher: publisher}
}

func (u *authUsecase) Signup(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	existing, err := u.userRepo.GetByEmail(ctx, user.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Unprocessable("Email already exists", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user.ID = uuid.NewString()
	user.PasswordHash = string(hash)
	user.IsBlocked = false
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	// A concurrent signup can slip past the pre-check; the repository maps
	// the unique violation to the same "Email already exists" outcome.
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	u.notifyUserCreated(user)

	return user, nil
}

// notifyUserCreated publishes the UserCreated event fire-and-forget: the HTTP
// response never waits on the broker, and a failed publish is only logged.
// At-most-once; the event is lost if the process dies first.
func (u *authUsecase) notifyUserCreated(user *domain.User) {
	if u.publisher == nil {
		return
	}

	event := domain.UserCreatedEvent{
		ID:          user.ID,
		UserName:    user.UserName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		IsBlocked:   user.IsBlocked,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := u.publisher.PublishUserCreated(ctx, event); err != nil {
			logger.Log.Error("Failed to publish user-created event", "user_id", event.ID, "error", err)
		}
	}()
}

func (u *authUsecase) SignIn(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	if user == nil {
		return nil, "", invalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", invalidCredentials()
	}

	if user.IsBlocked {
		return nil, "", apperror.Forbidden("Account is blocked")
	}

	signed, err := u.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	return user, signed, nil
}

func (u *authUsecase) CurrentUser(ctx context.Context) (*domain.User, error) {
	userID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || userID == "" {
		return nil, apperror.NotFound("Not authorized")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("Not authorized")
	}
	return user, nil
}

func (u *authUsecase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func (u *authUsecase) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	userID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || userID == "" {
		return apperror.Unauthorized("User not authenticated")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return apperror.Internal(err)
	}
	if user == nil {
		return invalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return invalidCredentials()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return apperror.Internal(err)
	}

	return u.userRepo.UpdatePassword(ctx, userID, string(hash))
}
