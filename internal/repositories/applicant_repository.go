package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"localgigs_backend/internal/models"
)

var ErrApplicantExists = errors.New("applicant already exists for this job")

type ApplicantRepository interface {
	Create(applicant *models.Applicant) error
	ListByJob(jobID string) ([]models.Applicant, error)
	ExistsForJob(jobID, email string) (bool, error)
}

type ApplicantRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicantRepository(db *gorm.DB) ApplicantRepository {
	return &ApplicantRepositoryImpl{db: db}
}

// Create inserts the application. The unique (job_id, email) index is
// the last line of defense against two concurrent applies from the
// same address; the violation surfaces as ErrApplicantExists.
func (r *ApplicantRepositoryImpl) Create(applicant *models.Applicant) error {
	err := r.db.Create(applicant).Error
	if err != nil && isUniqueViolation(err) {
		return ErrApplicantExists
	}
	return err
}

// ListByJob returns applications in insertion order.
func (r *ApplicantRepositoryImpl) ListByJob(jobID string) ([]models.Applicant, error) {
	var applicants []models.Applicant
	err := r.db.Where("job_id = ?", jobID).Order("created_at ASC").Find(&applicants).Error
	return applicants, err
}

func (r *ApplicantRepositoryImpl) ExistsForJob(jobID, email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Applicant{}).
		Where("job_id = ? AND email = ?", jobID, email).
		Count(&count).Error
	return count > 0, err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// pgx surfaces SQLSTATE 23505 for unique violations
	return strings.Contains(err.Error(), "23505") ||
		strings.Contains(err.Error(), "duplicate key")
}
