package services

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"

	"localgigs_backend/internal/appErrors"
	"localgigs_backend/internal/models"
	"localgigs_backend/internal/repositories"
	"localgigs_backend/internal/services/dto"
)

// JobService owns the job lifecycle (open -> assigned -> completed),
// the application ledger and the assignment/completion records derived
// from approvals.
type JobService struct {
	jobRepo        repositories.JobRepository
	applicantRepo  repositories.ApplicantRepository
	assignmentRepo repositories.AssignmentRepository
	userRepo       repositories.UserRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	applicantRepo repositories.ApplicantRepository,
	assignmentRepo repositories.AssignmentRepository,
	userRepo repositories.UserRepository,
) *JobService {
	return &JobService{
		jobRepo:        jobRepo,
		applicantRepo:  applicantRepo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
	}
}

// Job Store

func (s *JobService) PostJob(posterEmail string, req *dto.PostJobRequest) (*dto.JobResponse, error) {
	if details := missingFields(req); len(details) > 0 {
		return nil, appErrors.ValidationError(details)
	}

	pay, err := strconv.ParseFloat(strings.TrimSpace(req.Pay), 64)
	if err != nil || pay <= 0 {
		return nil, appErrors.ValidationError(map[string]string{"pay": "must be a positive number"})
	}

	skillsJSON, err := json.Marshal(req.Skills)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	job := &models.Job{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Category:    req.Category,
		Pay:         pay,
		Location:    req.Location,
		JobType:     req.JobType,
		Skills:      datatypes.JSON(skillsJSON),
		PostedBy:    posterEmail,
		Status:      models.JobStatusOpen,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, appErrors.StoreError("create job", err)
	}
	return toJobResponse(job), nil
}

// ListOpenJobs returns jobs still accepting applications, filtered by a
// case-insensitive title substring when titleFilter is non-empty.
func (s *JobService) ListOpenJobs(titleFilter string) ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.ListOpen(titleFilter)
	if err != nil {
		return nil, appErrors.StoreError("list open jobs", err)
	}
	return toJobResponses(jobs), nil
}

// ListJobsByPoster is the client's manage-jobs view: every job they
// posted, regardless of status.
func (s *JobService) ListJobsByPoster(email string) ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.ListByPoster(email)
	if err != nil {
		return nil, appErrors.StoreError("list jobs by poster", err)
	}
	return toJobResponses(jobs), nil
}

func (s *JobService) GetJob(jobID string) (*dto.JobResponse, error) {
	job, err := s.loadJob(jobID)
	if err != nil {
		return nil, err
	}
	return toJobResponse(job), nil
}

// Application Ledger

func (s *JobService) Apply(jobID, applicantEmail string) error {
	job, err := s.loadJob(jobID)
	if err != nil {
		return err
	}

	if job.Status != models.JobStatusOpen {
		return appErrors.ErrJobNotOpen
	}

	exists, err := s.applicantRepo.ExistsForJob(jobID, applicantEmail)
	if err != nil {
		return appErrors.StoreError("check existing application", err)
	}
	if exists {
		return appErrors.ErrAlreadyApplied
	}

	applicant := &models.Applicant{
		JobID: jobID,
		Email: applicantEmail,
	}
	// Resolve the uid up front when the directory knows the email, so
	// approval does not depend on a second lookup succeeding.
	if user, err := s.userRepo.FindByEmail(applicantEmail); err == nil {
		applicant.UserID = user.ID
	}

	if err := s.applicantRepo.Create(applicant); err != nil {
		if appErrors.Is(err, repositories.ErrApplicantExists) {
			return appErrors.ErrAlreadyApplied
		}
		return appErrors.StoreError("add applicant", err)
	}
	return nil
}

// ListApplicants returns the job's applications with name and uid
// resolved from the user directory. Once the job has left the open
// state the ledger is hidden and an empty list comes back.
func (s *JobService) ListApplicants(jobID string) ([]dto.ApplicantResponse, error) {
	job, err := s.loadJob(jobID)
	if err != nil {
		return nil, err
	}

	if job.Status != models.JobStatusOpen {
		return []dto.ApplicantResponse{}, nil
	}

	applicants, err := s.applicantRepo.ListByJob(jobID)
	if err != nil {
		return nil, appErrors.StoreError("list applicants", err)
	}

	emails := make([]string, 0, len(applicants))
	for _, a := range applicants {
		emails = append(emails, a.Email)
	}
	users, err := s.userRepo.FindByEmails(emails)
	if err != nil {
		return nil, appErrors.StoreError("resolve applicants", err)
	}
	byEmail := make(map[string]*models.User, len(users))
	for i := range users {
		byEmail[users[i].Email] = &users[i]
	}

	responses := make([]dto.ApplicantResponse, 0, len(applicants))
	for _, a := range applicants {
		resp := dto.ApplicantResponse{Email: a.Email, UID: a.UserID}
		if user, ok := byEmail[a.Email]; ok {
			resp.Name = user.DisplayName()
			resp.UID = user.ID
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// Approval workflow

// Approve moves an open job to assigned: the applicant's uid is
// resolved from the directory, an upcoming-job record is stamped with
// the current time and the job row is updated, all in one transaction.
func (s *JobService) Approve(jobID, applicantEmail string) error {
	job, err := s.loadJob(jobID)
	if err != nil {
		return err
	}

	if job.Status != models.JobStatusOpen {
		return appErrors.ErrJobNotOpen
	}

	applied, err := s.applicantRepo.ExistsForJob(jobID, applicantEmail)
	if err != nil {
		return appErrors.StoreError("check application", err)
	}
	if !applied {
		return appErrors.ErrApplicantNotFound
	}

	user, err := s.userRepo.FindByEmail(applicantEmail)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrUserNotFound
		}
		return appErrors.StoreError("resolve applicant uid", err)
	}

	upcoming := &models.UpcomingJob{
		JobID:       job.ID,
		Title:       job.Title,
		ScheduledAt: time.Now(),
		AssignedTo:  user.Email,
		PostedBy:    job.PostedBy,
	}

	if err := s.jobRepo.Assign(job.ID, user.ID, upcoming); err != nil {
		if appErrors.Is(err, repositories.ErrJobNotFound) {
			// A concurrent approval won; the job is no longer open.
			return appErrors.ErrJobNotOpen
		}
		return appErrors.StoreError("assign job", err)
	}
	return nil
}

// Completion workflow

// MarkCompleted finishes an assigned job: status flips to completed,
// the matching upcoming records disappear and exactly one completion
// record is appended, in one transaction.
func (s *JobService) MarkCompleted(jobID string) error {
	job, err := s.loadJob(jobID)
	if err != nil {
		return err
	}

	if job.Status != models.JobStatusAssigned {
		return appErrors.ErrJobNotAssigned
	}

	assignee, err := s.userRepo.FindByID(job.AssignedTo)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrUserNotFound
		}
		return appErrors.StoreError("resolve assignee", err)
	}

	recent := &models.RecentJob{
		Title:       job.Title,
		Status:      "Completed",
		Pay:         job.Pay,
		CompletedBy: assignee.Email,
	}

	if err := s.jobRepo.Complete(job.ID, assignee.Email, recent); err != nil {
		if appErrors.Is(err, repositories.ErrJobNotFound) {
			return appErrors.ErrJobNotAssigned
		}
		return appErrors.StoreError("complete job", err)
	}
	return nil
}

// Assignment & Completion Tracker views

func (s *JobService) ListUpcoming(assigneeEmail string) ([]dto.UpcomingJobResponse, error) {
	upcoming, err := s.assignmentRepo.ListUpcomingByAssignee(assigneeEmail)
	if err != nil {
		return nil, appErrors.StoreError("list upcoming jobs", err)
	}

	responses := make([]dto.UpcomingJobResponse, 0, len(upcoming))
	for _, u := range upcoming {
		responses = append(responses, dto.UpcomingJobResponse{
			ID:          u.ID,
			Title:       u.Title,
			ScheduledAt: u.ScheduledAt,
			AssignedTo:  u.AssignedTo,
			PostedBy:    u.PostedBy,
		})
	}
	return responses, nil
}

func (s *JobService) ListRecent() ([]dto.RecentJobResponse, error) {
	recent, err := s.assignmentRepo.ListRecent()
	if err != nil {
		return nil, appErrors.StoreError("list recent jobs", err)
	}

	responses := make([]dto.RecentJobResponse, 0, len(recent))
	for _, r := range recent {
		responses = append(responses, dto.RecentJobResponse{
			Title:       r.Title,
			Status:      r.Status,
			Pay:         r.Pay,
			CompletedBy: r.CompletedBy,
		})
	}
	return responses, nil
}

// Helpers

func (s *JobService) loadJob(jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.StoreError("load job", err)
	}
	return job, nil
}

func missingFields(req *dto.PostJobRequest) map[string]string {
	details := make(map[string]string)
	check := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			details[field] = "is required"
		}
	}
	check("title", req.Title)
	check("description", req.Description)
	check("category", req.Category)
	check("pay", req.Pay)
	check("location", req.Location)
	check("jobType", req.JobType)
	if len(req.Skills) == 0 {
		details["skills"] = "is required"
	}
	return details
}

func toJobResponse(job *models.Job) *dto.JobResponse {
	return &dto.JobResponse{
		ID:          job.ID,
		Title:       job.Title,
		Description: job.Description,
		Category:    job.Category,
		Pay:         job.Pay,
		Location:    job.Location,
		JobType:     job.JobType,
		Skills:      skillsFromJSON(job.Skills),
		PostedBy:    job.PostedBy,
		Status:      string(job.Status),
		AssignedTo:  job.AssignedTo,
		CreatedAt:   job.CreatedAt,
	}
}

func toJobResponses(jobs []models.Job) []dto.JobResponse {
	responses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, *toJobResponse(&jobs[i]))
	}
	return responses
}
