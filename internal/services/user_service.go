package services

import (
	"encoding/json"

	"gorm.io/datatypes"

	"localgigs_backend/internal/appErrors"
	"localgigs_backend/internal/models"
	"localgigs_backend/internal/repositories"
	"localgigs_backend/internal/services/dto"
)

// UserService is the user directory: point lookups and profile writes,
// no workflow logic.
type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetProfile(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.StoreError("load user", err)
	}
	return ToUserResponse(user), nil
}

func (s *UserService) FindByEmail(email string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.StoreError("load user", err)
	}
	return ToUserResponse(user), nil
}

func (s *UserService) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.StoreError("load user", err)
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.JobTitle != nil {
		user.JobTitle = *req.JobTitle
	}
	if req.Skills != nil {
		skillsJSON, err := json.Marshal(*req.Skills)
		if err != nil {
			return nil, appErrors.InternalError(err)
		}
		user.Skills = datatypes.JSON(skillsJSON)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, appErrors.StoreError("update user", err)
	}
	return ToUserResponse(user), nil
}

// SetRole assigns an account type explicitly.
func (s *UserService) SetRole(userID string, role models.UserRole) error {
	if !models.ValidRole(role) {
		return appErrors.ErrInvalidRole
	}
	if err := s.userRepo.UpdateRole(userID, role); err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrUserNotFound
		}
		return appErrors.StoreError("update role", err)
	}
	return nil
}

// EnsureRole backfills the safe default role for accounts created
// before the role field existed. Called on login.
func (s *UserService) EnsureRole(user *models.User) (models.UserRole, error) {
	if models.ValidRole(user.Role) {
		return user.Role, nil
	}
	if err := s.userRepo.UpdateRole(user.ID, models.UserRoleProfessional); err != nil {
		return "", appErrors.StoreError("set default role", err)
	}
	user.Role = models.UserRoleProfessional
	return user.Role, nil
}

// ToUserResponse maps a user row to its API shape.
func ToUserResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		UserType:  string(user.Role),
		JobTitle:  user.JobTitle,
		Skills:    skillsFromJSON(user.Skills),
	}
}

func skillsFromJSON(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var skills []string
	_ = json.Unmarshal(raw, &skills)
	return skills
}
