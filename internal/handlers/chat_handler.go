package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"localgigs_backend/internal/middleware"
	"localgigs_backend/internal/services"
	"localgigs_backend/internal/services/dto"
)

type ChatHandler struct {
	*BaseHandler
	chatService *services.ChatService
}

func NewChatHandler(base *BaseHandler, chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{
		BaseHandler: base,
		chatService: chatService,
	}
}

func (h *ChatHandler) RegisterRoutes(r *gin.RouterGroup) {
	conversations := r.Group("/conversations")
	conversations.Use(middleware.AuthMiddleware())
	{
		conversations.POST("", h.OpenConversation)
		conversations.GET("", h.ListConversations)
		conversations.GET("/:id/messages", h.ListMessages)
		conversations.POST("/:id/messages", h.SendMessage)
	}
}

func (h *ChatHandler) OpenConversation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.OpenConversationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	conversation, err := h.chatService.GetOrCreateConversation(userID, req.OtherUserID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, conversation)
}

func (h *ChatHandler) ListConversations(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	conversations, err := h.chatService.ListConversations(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversations": conversations})
}

func (h *ChatHandler) ListMessages(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	messages, err := h.chatService.ListMessages(c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	message, err := h.chatService.SendMessage(c.Param("id"), userID, req.Content)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}
