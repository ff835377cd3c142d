package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"localgigs_backend/internal/middleware"
	"localgigs_backend/internal/models"
	"localgigs_backend/internal/services"
	"localgigs_backend/internal/services/dto"
)

type JobHandler struct {
	*BaseHandler
	jobService    *services.JobService
	userService   *services.UserService
	searchService *services.SearchService
}

func NewJobHandler(base *BaseHandler, jobService *services.JobService, userService *services.UserService, searchService *services.SearchService) *JobHandler {
	return &JobHandler{
		BaseHandler:   base,
		jobService:    jobService,
		userService:   userService,
		searchService: searchService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware())
	{
		jobs.GET("", h.ListOpenJobs)
		jobs.GET("/recent", h.ListRecentJobs)
		jobs.GET("/:id", h.GetJob)
	}

	clientOnly := r.Group("/jobs")
	clientOnly.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleClient))
	{
		clientOnly.POST("", h.PostJob)
		clientOnly.GET("/my", h.ListMyJobs)
		clientOnly.GET("/:id/applicants", h.ListApplicants)
		clientOnly.POST("/:id/approve", h.ApproveApplicant)
		clientOnly.POST("/:id/complete", h.MarkCompleted)
	}

	professionalOnly := r.Group("/jobs")
	professionalOnly.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleProfessional))
	{
		professionalOnly.POST("/:id/apply", h.Apply)
		professionalOnly.GET("/upcoming", h.ListUpcomingJobs)
	}
}

// currentUserEmail resolves the authenticated user's email, which the job
// workflow uses as the poster and applicant key.
func (h *JobHandler) currentUserEmail(c *gin.Context) (string, bool) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return "", false
	}
	profile, err := h.userService.GetProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return "", false
	}
	return profile.Email, true
}

func (h *JobHandler) PostJob(c *gin.Context) {
	email, ok := h.currentUserEmail(c)
	if !ok {
		return
	}

	var req dto.PostJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.PostJob(email, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) ListOpenJobs(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	jobs, err := h.searchService.SearchJobs(c.Query("q"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *JobHandler) ListMyJobs(c *gin.Context) {
	email, ok := h.currentUserEmail(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.ListJobsByPoster(email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *JobHandler) GetJob(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	job, err := h.jobService.GetJob(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Apply(c *gin.Context) {
	email, ok := h.currentUserEmail(c)
	if !ok {
		return
	}

	if err := h.jobService.Apply(c.Param("id"), email); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application submitted"})
}

func (h *JobHandler) ListApplicants(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	applicants, err := h.jobService.ListApplicants(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applicants": applicants})
}

func (h *JobHandler) ApproveApplicant(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	var req dto.ApproveRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.jobService.Approve(c.Param("id"), req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Applicant approved"})
}

func (h *JobHandler) MarkCompleted(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	if err := h.jobService.MarkCompleted(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job completed"})
}

func (h *JobHandler) ListUpcomingJobs(c *gin.Context) {
	email, ok := h.currentUserEmail(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.ListUpcoming(email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *JobHandler) ListRecentJobs(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	jobs, err := h.jobService.ListRecent()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}
