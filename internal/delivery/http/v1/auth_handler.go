package v1

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"job-portal-backend/internal/delivery/http/middleware"
	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/token"
)

type AuthHandler struct {
	authUC   domain.AuthUsecase
	tokens   *token.Service
	validate *validator.Validate
}

func NewAuthHandler(r *gin.RouterGroup, authUC domain.AuthUsecase, tokens *token.Service, validate *validator.Validate, optionalAuth, requireAuth, authLimiter gin.HandlerFunc) {
	handler := &AuthHandler{
		authUC:   authUC,
		tokens:   tokens,
		validate: validate,
	}

	auth := r.Group("/auth")
	{
		auth.POST("/signup", authLimiter, handler.Signup)
		auth.POST("/signin", authLimiter, handler.SignIn)
		auth.GET("/current", optionalAuth, handler.Current)
		auth.POST("/signout", handler.SignOut)
		auth.PATCH("/password", requireAuth, handler.ChangePassword)
	}
}

type SignupRequest struct {
	UserName    string `json:"user_name" validate:"required,valid_name"`
	PhoneNumber string `json:"phone_number" validate:"required,valid_phone"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=4" sanitize:"-"`
	Role        string `json:"role" validate:"required,oneof=candidate admin recruiter"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4" sanitize:"-"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required,min=4" sanitize:"-"`
	NewPassword     string `json:"new_password" validate:"required,min=4" sanitize:"-"`
}

// Signup godoc
// @Summary      User Registration
// @Description  Register a new user with name, phone, email, password, and role.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        signup  body      SignupRequest  true  "Registration Details"
// @Success      201     {object}  response.Response{data=domain.User}
// @Failure      422     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if !bindAndValidate(c, h.validate, &req) {
		return
	}

	user := &domain.User{
		UserName:    req.UserName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Role:        req.Role,
	}

	created, err := h.authUC.Signup(c.Request.Context(), user, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Signup successful", created)
}

// SignIn godoc
// @Summary      User Login
// @Description  Login with email and password. Sets the auth_token session cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        signin  body      SignInRequest  true  "Login Credentials"
// @Success      200     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      422     {object}  response.Response
// @Router       /auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if !bindAndValidate(c, h.validate, &req) {
		return
	}

	user, signed, err := h.authUC.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	h.setAuthCookie(c, signed, int(h.tokens.TTL().Seconds()))

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token": signed,
		"user":  user,
	})
}

// Current godoc
// @Summary      Current User
// @Description  Return the user resolved from the auth token, 404 when unauthenticated.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      404  {object}  response.Response
// @Router       /auth/current [get]
func (h *AuthHandler) Current(c *gin.Context) {
	user, err := h.authUC.CurrentUser(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Current user", user)
}

// SignOut godoc
// @Summary      User Logout
// @Description  Clear the session cookie. Always succeeds.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/signout [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	h.setAuthCookie(c, "", -1)
	response.Success(c, http.StatusOK, "You have been successfully logged out.", nil)
}

// ChangePassword godoc
// @Summary      Change Password
// @Description  Verify the current password and replace it with a new one.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        password  body      ChangePasswordRequest  true  "Password change"
// @Success      200       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Failure      422       {object}  response.Response
// @Router       /auth/password [patch]
// @Security     BearerAuth
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if !bindAndValidate(c, h.validate, &req) {
		return
	}

	if err := h.authUC.ChangePassword(c.Request.Context(), req.CurrentPassword, req.NewPassword); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Password updated successfully", nil)
}

func (h *AuthHandler) setAuthCookie(c *gin.Context, value string, maxAge int) {
	secure := os.Getenv("GIN_MODE") == "release"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, value, maxAge, "/", "", secure, true)
}
