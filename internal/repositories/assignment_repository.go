package repositories

import (
	"gorm.io/gorm"

	"localgigs_backend/internal/models"
)

// AssignmentRepository serves the home-page views over the assignment
// and completion records. Writes to these tables happen through
// JobRepository.Assign / Complete so they stay transactional with the
// job row.
type AssignmentRepository interface {
	ListUpcomingByAssignee(email string) ([]models.UpcomingJob, error)
	ListRecent() ([]models.RecentJob, error)
}

type AssignmentRepositoryImpl struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &AssignmentRepositoryImpl{db: db}
}

func (r *AssignmentRepositoryImpl) ListUpcomingByAssignee(email string) ([]models.UpcomingJob, error) {
	var upcoming []models.UpcomingJob
	err := r.db.Where("assigned_to = ?", email).Order("scheduled_at ASC").Find(&upcoming).Error
	return upcoming, err
}

func (r *AssignmentRepositoryImpl) ListRecent() ([]models.RecentJob, error) {
	var recent []models.RecentJob
	err := r.db.Order("created_at DESC").Find(&recent).Error
	return recent, err
}
