package handlers

import (
	"localgigs_backend/internal/services"
	"localgigs_backend/internal/validator"
)

// AppHandlers holds every HTTP handler in the application.
type AppHandlers struct {
	Auth *AuthHandler
	User *UserHandler
	Job  *JobHandler
	Chat *ChatHandler
}

func NewAppHandlers(container *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		Auth: NewAuthHandler(base, container.AuthService),
		User: NewUserHandler(base, container.UserService, container.SearchService),
		Job:  NewJobHandler(base, container.JobService, container.UserService, container.SearchService),
		Chat: NewChatHandler(base, container.ChatService),
	}
}
