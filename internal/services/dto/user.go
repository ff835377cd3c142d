package dto

type UserResponse struct {
	ID        string   `json:"id"`
	FirstName string   `json:"firstname"`
	LastName  string   `json:"lastname"`
	Email     string   `json:"email"`
	UserType  string   `json:"userType"`
	JobTitle  string   `json:"jobTitle"`
	Skills    []string `json:"skills"`
}

type UpdateProfileRequest struct {
	FirstName *string   `json:"firstname" validate:"omitempty,min=1"`
	LastName  *string   `json:"lastname" validate:"omitempty,min=1"`
	JobTitle  *string   `json:"jobTitle"`
	Skills    *[]string `json:"skills"`
}
