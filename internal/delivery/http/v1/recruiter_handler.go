package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
)

type RecruiterHandler struct {
	recruiterUC domain.RecruiterUsecase
	validate    *validator.Validate
}

func NewRecruiterHandler(protected *gin.RouterGroup, recruiterUC domain.RecruiterUsecase, validate *validator.Validate) {
	handler := &RecruiterHandler{recruiterUC: recruiterUC, validate: validate}

	recruiters := protected.Group("/recruiters")
	{
		recruiters.GET("/me", handler.GetProfile)
		recruiters.PUT("/me", handler.UpdateProfile)
	}
}

// GetProfile godoc
// @Summary      Get own recruiter profile
// @Tags         recruiters
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.RecruiterProfile}
// @Failure      404  {object}  response.Response
// @Router       /recruiters/me [get]
// @Security     BearerAuth
func (h *RecruiterHandler) GetProfile(c *gin.Context) {
	profile, err := h.recruiterUC.GetOwnProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recruiter profile", profile)
}

// UpdateProfile godoc
// @Summary      Update own recruiter profile
// @Tags         recruiters
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.RecruiterUpdate  true  "Profile fields"
// @Success      200      {object}  response.Response{data=domain.RecruiterProfile}
// @Failure      422      {object}  response.Response
// @Router       /recruiters/me [put]
// @Security     BearerAuth
func (h *RecruiterHandler) UpdateProfile(c *gin.Context) {
	var req domain.RecruiterUpdate
	if !bindAndValidate(c, h.validate, &req) {
		return
	}

	profile, err := h.recruiterUC.UpdateProfile(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", profile)
}
