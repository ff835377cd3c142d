package dto

type SignupRequest struct {
	Email     string `json:"email" binding:"required" validate:"required,email"`
	Password  string `json:"password" binding:"required" validate:"required"`
	FirstName string `json:"firstname" binding:"required" validate:"required"`
	LastName  string `json:"lastname" binding:"required" validate:"required"`
	UserType  string `json:"userType" validate:"omitempty,oneof=Client Professional"`
	JobTitle  string `json:"jobTitle"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required" validate:"required"`
	NewPassword     string `json:"new_password" binding:"required" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *UserResponse `json:"user"`
}
