package models

import "time"

// UpcomingJob is the transient assignment record created when a client
// approves an applicant. It lives until the job is marked completed.
type UpcomingJob struct {
	BaseModel
	JobID       string    `gorm:"not null;index" json:"job_id"`
	Title       string    `gorm:"not null" json:"title"`
	ScheduledAt time.Time `gorm:"not null" json:"scheduledAt"`
	AssignedTo  string    `gorm:"not null;index" json:"assignedTo"` // professional email
	PostedBy    string    `gorm:"not null" json:"postedBy"`         // client email
}

func (UpcomingJob) TableName() string {
	return "upcomingjobs"
}

// RecentJob is the permanent completion record. Append-only history.
type RecentJob struct {
	BaseModel
	Title       string  `gorm:"not null" json:"title"`
	Status      string  `gorm:"not null;default:'Completed'" json:"status"`
	Pay         float64 `gorm:"not null" json:"pay"`
	CompletedBy string  `gorm:"not null;index" json:"completedBy"`
}

func (RecentJob) TableName() string {
	return "recentjobs"
}
