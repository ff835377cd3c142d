package repositories

import (
	"errors"

	"gorm.io/gorm"

	"localgigs_backend/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	ListOpen(titleFilter string) ([]models.Job, error)
	ListByPoster(email string) ([]models.Job, error)

	// Assign atomically records the approval: the upcoming-job record is
	// inserted and the job moves to assigned with assignedTo set, in one
	// transaction.
	Assign(jobID string, assignedTo string, upcoming *models.UpcomingJob) error

	// Complete atomically finishes the job: status flips to completed,
	// upcoming records matching (title, assignee email) are removed and
	// the recent-job record is appended.
	Complete(jobID string, assigneeEmail string, recent *models.RecentJob) error
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// ListOpen returns open jobs, newest first, optionally filtered by a
// case-insensitive title substring.
func (r *JobRepositoryImpl) ListOpen(titleFilter string) ([]models.Job, error) {
	q := r.db.Where("status = ?", models.JobStatusOpen)
	if titleFilter != "" {
		q = q.Where("title ILIKE ?", "%"+titleFilter+"%")
	}

	var jobs []models.Job
	err := q.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) ListByPoster(email string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("posted_by = ?", email).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) Assign(jobID string, assignedTo string, upcoming *models.UpcomingJob) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(upcoming).Error; err != nil {
			return err
		}

		result := tx.Model(&models.Job{}).
			Where("id = ? AND status = ?", jobID, models.JobStatusOpen).
			Updates(map[string]interface{}{
				"status":      models.JobStatusAssigned,
				"assigned_to": assignedTo,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobNotFound
		}
		return nil
	})
}

func (r *JobRepositoryImpl) Complete(jobID string, assigneeEmail string, recent *models.RecentJob) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Job{}).
			Where("id = ? AND status = ?", jobID, models.JobStatusAssigned).
			Update("status", models.JobStatusCompleted)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobNotFound
		}

		if err := tx.Where("title = ? AND assigned_to = ?", recent.Title, assigneeEmail).
			Delete(&models.UpcomingJob{}).Error; err != nil {
			return err
		}

		return tx.Create(recent).Error
	})
}
