package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"localgigs_backend/internal/middleware"
	"localgigs_backend/internal/models"
	"localgigs_backend/internal/services"
	"localgigs_backend/internal/services/dto"
)

type UserHandler struct {
	*BaseHandler
	userService   *services.UserService
	searchService *services.SearchService
}

func NewUserHandler(base *BaseHandler, userService *services.UserService, searchService *services.SearchService) *UserHandler {
	return &UserHandler{
		BaseHandler:   base,
		userService:   userService,
		searchService: searchService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/me", h.GetProfile)
		users.PUT("/me", h.UpdateProfile)
		users.GET("/:id", h.GetUser)
	}

	professionals := r.Group("/users/professionals")
	professionals.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleClient))
	{
		professionals.GET("", h.SearchProfessionals)
	}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	profile, err := h.userService.GetProfile(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) SearchProfessionals(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	results, err := h.searchService.SearchProfessionals(c.Query("q"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"professionals": results})
}
