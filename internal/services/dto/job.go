package dto

import "time"

// PostJobRequest carries the job posting form. Pay arrives as a string
// from the mobile form and is parsed server-side so a non-numeric value
// fails validation before any write.
type PostJobRequest struct {
	Title       string   `json:"title" binding:"required" validate:"required"`
	Description string   `json:"description" binding:"required" validate:"required"`
	Category    string   `json:"category" binding:"required" validate:"required"`
	Pay         string   `json:"pay" binding:"required" validate:"required"`
	Location    string   `json:"location" binding:"required" validate:"required"`
	JobType     string   `json:"jobType" binding:"required" validate:"required"`
	Skills      []string `json:"skills" binding:"required" validate:"required,min=1"`
}

type JobResponse struct {
	ID          string    `json:"jobId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Pay         float64   `json:"pay"`
	Location    string    `json:"location"`
	JobType     string    `json:"jobType"`
	Skills      []string  `json:"skills"`
	PostedBy    string    `json:"postedBy"`
	Status      string    `json:"status"`
	AssignedTo  string    `json:"assignedTo,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ApplicantResponse resolves the stored application against the user
// directory: name and uid come from the users collection by email.
type ApplicantResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	UID   string `json:"uid"`
}

type ApproveRequest struct {
	Email string `json:"email" binding:"required" validate:"required,email"`
}

type UpcomingJobResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ScheduledAt time.Time `json:"scheduledAt"`
	AssignedTo  string    `json:"assignedTo"`
	PostedBy    string    `json:"postedBy"`
}

type RecentJobResponse struct {
	Title       string  `json:"title"`
	Status      string  `json:"status"`
	Pay         float64 `json:"pay"`
	CompletedBy string  `json:"completedBy"`
}
