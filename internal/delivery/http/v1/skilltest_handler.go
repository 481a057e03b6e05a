package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
)

type SkillTestHandler struct {
	recruiterUC domain.RecruiterUsecase
	validate    *validator.Validate
}

func NewSkillTestHandler(protected *gin.RouterGroup, recruiterUC domain.RecruiterUsecase, validate *validator.Validate) {
	handler := &SkillTestHandler{recruiterUC: recruiterUC, validate: validate}

	tests := protected.Group("/recruiters/me/skill-tests")
	{
		tests.POST("", handler.Create)
		tests.GET("", handler.List)
		tests.GET("/:id", handler.Get)
		tests.DELETE("/:id", handler.Delete)
	}
}

// Create godoc
// @Summary      Create a skill test
// @Description  The question count is computed from the submitted questions.
// @Tags         skill-tests
// @Accept       json
// @Produce      json
// @Param        test  body      domain.SkillTest  true  "Skill test"
// @Success      200   {object}  response.Response{data=domain.SkillTest}
// @Failure      422   {object}  response.Response
// @Router       /recruiters/me/skill-tests [post]
// @Security     BearerAuth
func (h *SkillTestHandler) Create(c *gin.Context) {
	var req domain.SkillTest
	if !bindAndValidate(c, h.validate, &req) {
		return
	}

	test, err := h.recruiterUC.AddSkillTest(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill test created successfully", test)
}

// List godoc
// @Summary      List own skill tests
// @Description  Returns summaries only. Questions and instructions are never
// @Description  included in listings.
// @Tags         skill-tests
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.SkillTestSummary}
// @Router       /recruiters/me/skill-tests [get]
// @Security     BearerAuth
func (h *SkillTestHandler) List(c *gin.Context) {
	tests, err := h.recruiterUC.ListSkillTests(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill tests", tests)
}

// Get godoc
// @Summary      Get a skill test with its questions
// @Tags         skill-tests
// @Produce      json
// @Param        id   path      string  true  "Skill test ID"
// @Success      200  {object}  response.Response{data=domain.SkillTest}
// @Failure      404  {object}  response.Response
// @Router       /recruiters/me/skill-tests/{id} [get]
// @Security     BearerAuth
func (h *SkillTestHandler) Get(c *gin.Context) {
	test, err := h.recruiterUC.GetSkillTest(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill test", test)
}

// Delete godoc
// @Summary      Delete a skill test
// @Description  Deleting an id that is not present is treated as success.
// @Tags         skill-tests
// @Produce      json
// @Param        id   path      string  true  "Skill test ID"
// @Success      200  {object}  response.Response
// @Router       /recruiters/me/skill-tests/{id} [delete]
// @Security     BearerAuth
func (h *SkillTestHandler) Delete(c *gin.Context) {
	if err := h.recruiterUC.DeleteSkillTest(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill test deleted successfully", nil)
}
