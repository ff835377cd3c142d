package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localgigs_backend/internal/appErrors"
	"localgigs_backend/internal/models"
	"localgigs_backend/internal/services/dto"
)

func newJobServiceForTest() (*JobService, *memStore) {
	store := newMemStore()
	svc := NewJobService(
		&fakeJobRepo{store: store},
		&fakeApplicantRepo{store: store},
		&fakeAssignmentRepo{store: store},
		&fakeUserRepo{store: store},
	)
	return svc, store
}

func seedUser(t *testing.T, store *memStore, firstName, lastName, email string, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Role:      role,
	}
	repo := &fakeUserRepo{store: store}
	require.NoError(t, repo.Create(user))
	return user
}

func validPostJobRequest() *dto.PostJobRequest {
	return &dto.PostJobRequest{
		Title:       "Fix kitchen sink",
		Description: "Leaking pipe under the sink",
		Category:    "Plumbing",
		Pay:         "120.50",
		Location:    "Austin",
		JobType:     "One-time",
		Skills:      []string{"plumbing"},
	}
}

func TestJobService_PostJob(t *testing.T) {
	svc, _ := newJobServiceForTest()

	job, err := svc.PostJob("client@example.com", validPostJobRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, job.ID)
	assert.Equal(t, "Fix kitchen sink", job.Title)
	assert.Equal(t, 120.50, job.Pay)
	assert.Equal(t, "client@example.com", job.PostedBy)
	assert.Equal(t, string(models.JobStatusOpen), job.Status)
	assert.Equal(t, []string{"plumbing"}, job.Skills)
	assert.Empty(t, job.AssignedTo)
}

func TestJobService_PostJob_MissingFields(t *testing.T) {
	svc, _ := newJobServiceForTest()

	req := validPostJobRequest()
	req.Title = "  "
	req.Skills = nil

	_, err := svc.PostJob("client@example.com", req)
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.True(t, appErrors.As(err, &appErr))
	assert.Equal(t, appErrors.CodeValidationFailed, appErr.Code)
	assert.Contains(t, appErr.Details, "title")
	assert.Contains(t, appErr.Details, "skills")
}

func TestJobService_PostJob_RejectsNonNumericPay(t *testing.T) {
	svc, _ := newJobServiceForTest()

	for _, pay := range []string{"abc", "-5", "0"} {
		req := validPostJobRequest()
		req.Pay = pay
		_, err := svc.PostJob("client@example.com", req)
		require.Error(t, err, "pay=%q", pay)

		var appErr *appErrors.AppError
		require.True(t, appErrors.As(err, &appErr))
		assert.Equal(t, appErrors.CodeValidationFailed, appErr.Code)
	}
}

// The full lifecycle: post, apply, approve, complete. Each stage is
// checked through the same read operations the mobile screens use.
func TestJobService_Lifecycle(t *testing.T) {
	svc, store := newJobServiceForTest()
	pro := seedUser(t, store, "Paula", "Pro", "paula@example.com", models.UserRoleProfessional)

	job, err := svc.PostJob("client@example.com", validPostJobRequest())
	require.NoError(t, err)

	// Professional applies.
	require.NoError(t, svc.Apply(job.ID, pro.Email))

	applicants, err := svc.ListApplicants(job.ID)
	require.NoError(t, err)
	require.Len(t, applicants, 1)
	assert.Equal(t, "Paula Pro", applicants[0].Name)
	assert.Equal(t, pro.Email, applicants[0].Email)
	assert.Equal(t, pro.ID, applicants[0].UID)

	// Client approves.
	require.NoError(t, svc.Approve(job.ID, pro.Email))

	assigned, err := svc.GetJob(job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.JobStatusAssigned), assigned.Status)
	assert.Equal(t, pro.ID, assigned.AssignedTo)

	upcoming, err := svc.ListUpcoming(pro.Email)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, job.Title, upcoming[0].Title)
	assert.Equal(t, "client@example.com", upcoming[0].PostedBy)

	// Assigned jobs no longer advertise their applicant list.
	applicants, err = svc.ListApplicants(job.ID)
	require.NoError(t, err)
	assert.Empty(t, applicants)

	// Client marks the work done.
	require.NoError(t, svc.MarkCompleted(job.ID))

	completed, err := svc.GetJob(job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.JobStatusCompleted), completed.Status)

	upcoming, err = svc.ListUpcoming(pro.Email)
	require.NoError(t, err)
	assert.Empty(t, upcoming)

	recent, err := svc.ListRecent()
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "Completed", recent[0].Status)
	assert.Equal(t, job.Title, recent[0].Title)
	assert.Equal(t, job.Pay, recent[0].Pay)
	assert.Equal(t, pro.Email, recent[0].CompletedBy)
}

func TestJobService_Apply_Twice(t *testing.T) {
	svc, store := newJobServiceForTest()
	pro := seedUser(t, store, "Paula", "Pro", "paula@example.com", models.UserRoleProfessional)

	job, err := svc.PostJob("client@example.com", validPostJobRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Apply(job.ID, pro.Email))
	err = svc.Apply(job.ID, pro.Email)
	assert.True(t, appErrors.Is(err, appErrors.ErrAlreadyApplied))
}

func TestJobService_Apply_ClosedJob(t *testing.T) {
	svc, store := newJobServiceForTest()
	first := seedUser(t, store, "Paula", "Pro", "paula@example.com", models.UserRoleProfessional)
	second := seedUser(t, store, "Sam", "Smith", "sam@example.com", models.UserRoleProfessional)

	job, err := svc.PostJob("client@example.com", validPostJobRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Apply(job.ID, first.Email))
	require.NoError(t, svc.Approve(job.ID, first.Email))

	err = svc.Apply(job.ID, second.Email)
	assert.True(t, appErrors.Is(err, appErrors.ErrJobNotOpen))
}

func TestJobService_Approve_WithoutApplication(t *testing.T) {
	svc, store := newJobServiceForTest()
	pro := seedUser(t, store, "Paula", "Pro", "paula@example.com", models.UserRoleProfessional)

	job, err := svc.PostJob("client@example.com", validPostJobRequest())
	require.NoError(t, err)

	err = svc.Approve(job.ID, pro.Email)
	assert.True(t, appErrors.Is(err, appErrors.ErrApplicantNotFound))
}

func TestJobService_Approve_Twice(t *testing.T) {
	svc, store := newJobServiceForTest()
	pro := seedUser(t, store, "Paula", "Pro", "paula@example.com", models.UserRoleProfessional)

	job, err := svc.PostJob("client@example.com", validPostJobRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Apply(job.ID, pro.Email))
	require.NoError(t, svc.Approve(job.ID, pro.Email))

	err = svc.Approve(job.ID, pro.Email)
	assert.True(t, appErrors.Is(err, appErrors.ErrJobNotOpen))
}

func TestJobService_MarkCompleted_OpenJob(t *testing.T) {
	svc, _ := newJobServiceForTest()

	job, err := svc.PostJob("client@example.com", validPostJobRequest())
	require.NoError(t, err)

	err = svc.MarkCompleted(job.ID)
	assert.True(t, appErrors.Is(err, appErrors.ErrJobNotAssigned))
}

func TestJobService_GetJob_Unknown(t *testing.T) {
	svc, _ := newJobServiceForTest()

	_, err := svc.GetJob("no-such-job")
	assert.True(t, appErrors.Is(err, appErrors.ErrJobNotFound))
}

func TestJobService_ListOpenJobs_TitleFilter(t *testing.T) {
	svc, _ := newJobServiceForTest()

	first := validPostJobRequest()
	first.Title = "Paint the fence"
	second := validPostJobRequest()
	second.Title = "Mow the lawn"

	_, err := svc.PostJob("client@example.com", first)
	require.NoError(t, err)
	_, err = svc.PostJob("client@example.com", second)
	require.NoError(t, err)

	jobs, err := svc.ListOpenJobs("paint")
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Paint the fence", jobs[0].Title)

	jobs, err = svc.ListOpenJobs("")
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
}
