package services

import (
	"localgigs_backend/internal/appErrors"
	"localgigs_backend/internal/repositories"
	"localgigs_backend/internal/services/dto"
)

// SearchService is the query facade over open jobs and the
// professional directory.
type SearchService struct {
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
}

func NewSearchService(jobRepo repositories.JobRepository, userRepo repositories.UserRepository) *SearchService {
	return &SearchService{
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

// SearchJobs filters open jobs by a case-insensitive title substring.
// Assigned and completed jobs never show up.
func (s *SearchService) SearchJobs(query string) ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.ListOpen(query)
	if err != nil {
		return nil, appErrors.StoreError("search jobs", err)
	}
	return toJobResponses(jobs), nil
}

// SearchProfessionals filters the directory to professional accounts
// matching the query against job title or name.
func (s *SearchService) SearchProfessionals(query string) ([]dto.UserResponse, error) {
	users, err := s.userRepo.FindProfessionals(query)
	if err != nil {
		return nil, appErrors.StoreError("search professionals", err)
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *ToUserResponse(&users[i]))
	}
	return responses, nil
}
