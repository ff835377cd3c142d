package models

import "gorm.io/datatypes"

// Job is a posted task moving through open -> assigned -> completed.
// AssignedTo is empty while the job is open and holds the approved
// professional's user id afterwards. Jobs are never deleted.
type Job struct {
	BaseModel
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"not null" json:"description"`
	Category    string         `gorm:"not null" json:"category"`
	Pay         float64        `gorm:"not null" json:"pay"`
	Location    string         `gorm:"not null" json:"location"`
	JobType     string         `gorm:"not null" json:"jobType"`
	Skills      datatypes.JSON `gorm:"type:jsonb" json:"skills"`
	PostedBy    string         `gorm:"not null;index" json:"postedBy"`
	Status      JobStatus      `gorm:"type:varchar(20);default:'open'" json:"status"`
	AssignedTo  string         `json:"assignedTo"`

	Applicants []Applicant `gorm:"foreignKey:JobID" json:"applicants,omitempty"`
}

// Applicant is one professional's application to a job. The unique
// (job_id, email) index replaces the source's applicant1/applicant2
// slot keys and makes concurrent applies conflict-free.
type Applicant struct {
	BaseModel
	JobID  string `gorm:"not null;index;uniqueIndex:idx_applicants_job_email" json:"job_id"`
	Email  string `gorm:"not null;uniqueIndex:idx_applicants_job_email" json:"email"`
	UserID string `json:"uid"`
}

func (Applicant) TableName() string {
	return "applicants"
}
