package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
	validate    *validator.Validate
}

func NewCandidateHandler(protected *gin.RouterGroup, candidateUC domain.CandidateUsecase, validate *validator.Validate) {
	handler := &CandidateHandler{candidateUC: candidateUC, validate: validate}

	candidates := protected.Group("/candidates")
	{
		candidates.GET("/me", handler.GetProfile)
		candidates.GET("/:id", handler.GetByID)
		candidates.PUT("/me", handler.QuickUpdate)
		candidates.PUT("/me/personal", handler.UpdatePersonalInfo)
		candidates.POST("/me/experience", handler.AddExperience)
		candidates.DELETE("/me/experience/:id", handler.RemoveExperience)
		candidates.POST("/me/education", handler.AddEducation)
		candidates.DELETE("/me/education/:id", handler.RemoveEducation)
		candidates.POST("/me/certifications", handler.AddCertification)
		candidates.DELETE("/me/certifications/:id", handler.RemoveCertification)
		candidates.POST("/me/resume/upload-url", handler.ResumeUploadURL)
	}
}

// GetProfile godoc
// @Summary      Get own candidate profile
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CandidateProfile}
// @Failure      404  {object}  response.Response
// @Router       /candidates/me [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetProfile(c *gin.Context) {
	profile, err := h.candidateUC.GetOwnProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate profile", profile)
}

// GetByID godoc
// @Summary      Get a candidate profile by id
// @Description  Used by recruiters reviewing candidates.
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Profile ID"
// @Success      200  {object}  response.Response{data=domain.CandidateProfile}
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetByID(c *gin.Context) {
	profile, err := h.candidateUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate profile", profile)
}

// QuickUpdate godoc
// @Summary      Quick profile update
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.CandidateQuickUpdate  true  "Profile fields"
// @Success      200      {object}  response.Response{data=domain.CandidateProfile}
// @Failure      422      {object}  response.Response
// @Router       /candidates/me [put]
// @Security     BearerAuth
func (h *CandidateHandler) QuickUpdate(c *gin.Context) {
	var req domain.CandidateQuickUpdate
	if !bindAndValidate(c, h.validate, &req) {
		return
	}

	profile, err := h.candidateUC.QuickUpdate(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", profile)
}

// UpdatePersonalInfo godoc
// @Summary      Update personal details
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        personal  body      domain.CandidatePersonalInfo  true  "Personal details"
// @Success      200       {object}  response.Response{data=domain.CandidateProfile}
// @Failure      422       {object}  response.Response
// @Router       /candidates/me/personal [put]
// @Security     BearerAuth
func (h *CandidateHandler) UpdatePersonalInfo(c *gin.Context) {
	var req domain.CandidatePersonalInfo
	if !bindAndValidate(c, h.validate, &req) {
		return
	}

	profile, err := h.candidateUC.UpdatePersonalInfo(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Personal details updated successfully", profile)
}

// AddExperience godoc
// @Summary      Add a work experience entry
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        experience  body      domain.WorkExperience  true  "Experience entry"
// @Success      200         {object}  response.Response{data=domain.CandidateProfile}
// @Failure      422         {object}  response.Response
// @Router       /candidates/me/experience [post]
// @Security     BearerAuth
func (h *CandidateHandler) AddExperience(c *gin.Context) {
	var req domain.WorkExperience
	if !bindAndValidate(c, h.validate, &req) {
		return
	}

	profile, err := h.candidateUC.AddExperience(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience added successfully", profile)
}

// RemoveExperience godoc
// @Summary      Remove a work experience entry
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Experience ID"
// @Success      200  {object}  response.Response
// @Router       /candidates/me/experience/{id} [delete]
// @Security     BearerAuth
func (h *CandidateHandler) RemoveExperience(c *gin.Context) {
	if err := h.candidateUC.RemoveExperience(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience removed successfully", nil)
}

// AddEducation godoc
// @Summary      Add an education entry
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        education  body      domain.Education  true  "Education entry"
// @Success      200        {object}  response.Response{data=domain.CandidateProfile}
// @Failure      422        {object}  response.Response
// @Router       /candidates/me/education [post]
// @Security     BearerAuth
func (h *CandidateHandler) AddEducation(c *gin.Context) {
	var req domain.Education
	if !bindAndValidate(c, h.validate, &req) {
		return
	}

	profile, err := h.candidateUC.AddEducation(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education added successfully", profile)
}

// RemoveEducation godoc
// @Summary      Remove an education entry
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Education ID"
// @Success      200  {object}  response.Response
// @Router       /candidates/me/education/{id} [delete]
// @Security     BearerAuth
func (h *CandidateHandler) RemoveEducation(c *gin.Context) {
	if err := h.candidateUC.RemoveEducation(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education removed successfully", nil)
}

// AddCertification godoc
// @Summary      Add a certification entry
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        certification  body      domain.Certification  true  "Certification entry"
// @Success      200            {object}  response.Response{data=domain.CandidateProfile}
// @Failure      422            {object}  response.Response
// @Router       /candidates/me/certifications [post]
// @Security     BearerAuth
func (h *CandidateHandler) AddCertification(c *gin.Context) {
	var req domain.Certification
	if !bindAndValidate(c, h.validate, &req) {
		return
	}

	profile, err := h.candidateUC.AddCertification(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Certification added successfully", profile)
}

// RemoveCertification godoc
// @Summary      Remove a certification entry
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Certification ID"
// @Success      200  {object}  response.Response
// @Router       /candidates/me/certifications/{id} [delete]
// @Security     BearerAuth
func (h *CandidateHandler) RemoveCertification(c *gin.Context) {
	if err := h.candidateUC.RemoveCertification(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Certification removed successfully", nil)
}

type ResumeUploadRequest struct {
	ContentType string `json:"content_type" validate:"required"`
}

// ResumeUploadURL godoc
// @Summary      Request a resume upload slot
// @Description  Returns a pre-signed URL the browser PUTs the file to.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        upload  body      ResumeUploadRequest  true  "File content type"
// @Success      200     {object}  response.Response{data=domain.ResumeUpload}
// @Failure      422     {object}  response.Response
// @Router       /candidates/me/resume/upload-url [post]
// @Security     BearerAuth
func (h *CandidateHandler) ResumeUploadURL(c *gin.Context) {
	var req ResumeUploadRequest
	if !bindAndValidate(c, h.validate, &req) {
		return
	}

	upload, err := h.candidateUC.ResumeUploadURL(c.Request.Context(), req.ContentType)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Upload URL issued", upload)
}
