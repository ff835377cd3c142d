package services

import "localgigs_backend/internal/email"

// ServiceContainer holds every service of the application. Built once
// in app.initializeServices and handed to the handlers.
type ServiceContainer struct {
	AuthService   *AuthService
	UserService   *UserService
	JobService    *JobService
	ChatService   *ChatService
	SearchService *SearchService
	EmailService  email.Provider
}
