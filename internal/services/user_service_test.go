package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localgigs_backend/internal/appErrors"
	"localgigs_backend/internal/models"
	"localgigs_backend/internal/services/dto"
)

func TestUserService_GetProfile(t *testing.T) {
	store := newMemStore()
	svc := NewUserService(&fakeUserRepo{store: store})
	user := seedUser(t, store, "Paula", "Pro", "paula@example.com", models.UserRoleProfessional)

	profile, err := svc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Paula", profile.FirstName)
	assert.Equal(t, "paula@example.com", profile.Email)
	assert.Equal(t, "Professional", profile.UserType)

	_, err = svc.GetProfile("missing")
	assert.True(t, appErrors.Is(err, appErrors.ErrUserNotFound))
}

func TestUserService_UpdateProfile_PartialMerge(t *testing.T) {
	store := newMemStore()
	svc := NewUserService(&fakeUserRepo{store: store})
	user := seedUser(t, store, "Paula", "Pro", "paula@example.com", models.UserRoleProfessional)

	jobTitle := "Electrician"
	skills := []string{"wiring", "lighting"}
	updated, err := svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{
		JobTitle: &jobTitle,
		Skills:   &skills,
	})
	require.NoError(t, err)

	// Untouched fields survive the partial update.
	assert.Equal(t, "Paula", updated.FirstName)
	assert.Equal(t, "Electrician", updated.JobTitle)
	assert.Equal(t, skills, updated.Skills)

	reloaded, err := svc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Electrician", reloaded.JobTitle)
	assert.Equal(t, skills, reloaded.Skills)
}

func TestUserService_SetRole(t *testing.T) {
	store := newMemStore()
	svc := NewUserService(&fakeUserRepo{store: store})
	user := seedUser(t, store, "Paula", "Pro", "paula@example.com", models.UserRoleProfessional)

	require.NoError(t, svc.SetRole(user.ID, models.UserRoleClient))

	profile, err := svc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Client", profile.UserType)

	err = svc.SetRole(user.ID, models.UserRole("Admin"))
	assert.True(t, appErrors.Is(err, appErrors.ErrInvalidRole))
}

func TestSearchService_Professionals(t *testing.T) {
	store := newMemStore()
	svc := NewSearchService(&fakeJobRepo{store: store}, &fakeUserRepo{store: store})

	electrician := seedUser(t, store, "Paula", "Pro", "paula@example.com", models.UserRoleProfessional)
	electrician.JobTitle = "Electrician"
	require.NoError(t, (&fakeUserRepo{store: store}).Update(electrician))

	plumber := seedUser(t, store, "Sam", "Smith", "sam@example.com", models.UserRoleProfessional)
	plumber.JobTitle = "Plumber"
	require.NoError(t, (&fakeUserRepo{store: store}).Update(plumber))

	seedUser(t, store, "Cleo", "Client", "cleo@example.com", models.UserRoleClient)

	results, err := svc.SearchProfessionals("electric")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "paula@example.com", results[0].Email)

	// Empty query lists every professional, never clients.
	results, err = svc.SearchProfessionals("")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearchService_Jobs(t *testing.T) {
	store := newMemStore()
	jobRepo := &fakeJobRepo{store: store}
	svc := NewSearchService(jobRepo, &fakeUserRepo{store: store})

	require.NoError(t, jobRepo.Create(&models.Job{
		Title:    "Paint the fence",
		PostedBy: "client@example.com",
		Status:   models.JobStatusOpen,
	}))
	require.NoError(t, jobRepo.Create(&models.Job{
		Title:    "Mow the lawn",
		PostedBy: "client@example.com",
		Status:   models.JobStatusAssigned,
	}))

	results, err := svc.SearchJobs("")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Paint the fence", results[0].Title)
}
