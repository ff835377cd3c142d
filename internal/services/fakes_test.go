package services

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"localgigs_backend/internal/models"
	chatmodels "localgigs_backend/internal/models/chat"
	"localgigs_backend/internal/repositories"
	chatrepo "localgigs_backend/internal/repositories/chat"
)

// memStore backs the in-memory repository fakes. One store is shared
// by all fakes of a test so cross-repository workflows behave like the
// real database.
type memStore struct {
	mu sync.Mutex

	users         map[string]*models.User
	refreshTokens map[string]*models.RefreshToken
	jobs          map[string]*models.Job
	applicants    []*models.Applicant
	upcoming      []*models.UpcomingJob
	recent        []*models.RecentJob
	conversations map[string]*chatmodels.Conversation
	messages      []*chatmodels.Message
}

func newMemStore() *memStore {
	return &memStore{
		users:         make(map[string]*models.User),
		refreshTokens: make(map[string]*models.RefreshToken),
		jobs:          make(map[string]*models.Job),
		conversations: make(map[string]*chatmodels.Conversation),
	}
}

// User repository fake

type fakeUserRepo struct{ store *memStore }

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if user, ok := r.store.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.users {
		if existing.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	copied := *user
	r.store.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	copied := *user
	r.store.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) UpdateRole(userID string, role models.UserRole) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.Role = role
	return nil
}

func (r *fakeUserRepo) UpdatePassword(userID string, passwordHash string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

func (r *fakeUserRepo) FindProfessionals(query string) ([]models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	query = strings.ToLower(query)
	var out []models.User
	for _, user := range r.store.users {
		if user.Role != models.UserRoleProfessional {
			continue
		}
		haystack := strings.ToLower(user.JobTitle + " " + user.FirstName + " " + user.LastName)
		if query == "" || strings.Contains(haystack, query) {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) FindByEmails(emails []string) ([]models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	wanted := make(map[string]bool, len(emails))
	for _, email := range emails {
		wanted[email] = true
	}
	var out []models.User
	for _, user := range r.store.users {
		if wanted[user.Email] {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) CreateRefreshToken(token *models.RefreshToken) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *token
	r.store.refreshTokens[token.Token] = &copied
	return nil
}

func (r *fakeUserRepo) FindRefreshToken(token string) (*models.RefreshToken, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if stored, ok := r.store.refreshTokens[token]; ok {
		copied := *stored
		return &copied, nil
	}
	return nil, repositories.ErrTokenNotFound
}

func (r *fakeUserRepo) DeleteRefreshToken(token string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.refreshTokens, token)
	return nil
}

func (r *fakeUserRepo) DeleteUserRefreshTokens(userID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for token, stored := range r.store.refreshTokens {
		if stored.UserID == userID {
			delete(r.store.refreshTokens, token)
		}
	}
	return nil
}

// Job repository fake

type fakeJobRepo struct{ store *memStore }

func (r *fakeJobRepo) Create(job *models.Job) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	job.CreatedAt = time.Now()
	copied := *job
	r.store.jobs[job.ID] = &copied
	return nil
}

func (r *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if job, ok := r.store.jobs[id]; ok {
		copied := *job
		return &copied, nil
	}
	return nil, repositories.ErrJobNotFound
}

func (r *fakeJobRepo) ListOpen(titleFilter string) ([]models.Job, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	titleFilter = strings.ToLower(titleFilter)
	var out []models.Job
	for _, job := range r.store.jobs {
		if job.Status != models.JobStatusOpen {
			continue
		}
		if titleFilter == "" || strings.Contains(strings.ToLower(job.Title), titleFilter) {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) ListByPoster(email string) ([]models.Job, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []models.Job
	for _, job := range r.store.jobs {
		if job.PostedBy == email {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) Assign(jobID string, assignedTo string, upcoming *models.UpcomingJob) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	job, ok := r.store.jobs[jobID]
	if !ok || job.Status != models.JobStatusOpen {
		return repositories.ErrJobNotFound
	}
	job.Status = models.JobStatusAssigned
	job.AssignedTo = assignedTo
	if upcoming.ID == "" {
		upcoming.ID = uuid.NewString()
	}
	copied := *upcoming
	r.store.upcoming = append(r.store.upcoming, &copied)
	return nil
}

func (r *fakeJobRepo) Complete(jobID string, assigneeEmail string, recent *models.RecentJob) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	job, ok := r.store.jobs[jobID]
	if !ok || job.Status != models.JobStatusAssigned {
		return repositories.ErrJobNotFound
	}
	job.Status = models.JobStatusCompleted

	kept := r.store.upcoming[:0]
	for _, u := range r.store.upcoming {
		if !(u.Title == job.Title && u.AssignedTo == assigneeEmail) {
			kept = append(kept, u)
		}
	}
	r.store.upcoming = kept

	if recent.ID == "" {
		recent.ID = uuid.NewString()
	}
	copied := *recent
	r.store.recent = append(r.store.recent, &copied)
	return nil
}

// Applicant repository fake

type fakeApplicantRepo struct{ store *memStore }

func (r *fakeApplicantRepo) Create(applicant *models.Applicant) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.applicants {
		if existing.JobID == applicant.JobID && existing.Email == applicant.Email {
			return repositories.ErrApplicantExists
		}
	}
	if applicant.ID == "" {
		applicant.ID = uuid.NewString()
	}
	applicant.CreatedAt = time.Now()
	copied := *applicant
	r.store.applicants = append(r.store.applicants, &copied)
	return nil
}

func (r *fakeApplicantRepo) ListByJob(jobID string) ([]models.Applicant, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []models.Applicant
	for _, a := range r.store.applicants {
		if a.JobID == jobID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicantRepo) ExistsForJob(jobID, email string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, a := range r.store.applicants {
		if a.JobID == jobID && a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// Assignment repository fake

type fakeAssignmentRepo struct{ store *memStore }

func (r *fakeAssignmentRepo) ListUpcomingByAssignee(email string) ([]models.UpcomingJob, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []models.UpcomingJob
	for _, u := range r.store.upcoming {
		if u.AssignedTo == email {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeAssignmentRepo) ListRecent() ([]models.RecentJob, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []models.RecentJob
	for _, rec := range r.store.recent {
		out = append(out, *rec)
	}
	return out, nil
}

// Conversation repository fake

type fakeConversationRepo struct{ store *memStore }

func (r *fakeConversationRepo) FindByID(id string) (*chatmodels.Conversation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if conversation, ok := r.store.conversations[id]; ok {
		copied := *conversation
		return &copied, nil
	}
	return nil, chatrepo.ErrConversationNotFound
}

func (r *fakeConversationRepo) FindByPair(userA, userB string) (*chatmodels.Conversation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	pairKey := chatmodels.PairKeyFor(userA, userB)
	for _, conversation := range r.store.conversations {
		if conversation.PairKey == pairKey {
			copied := *conversation
			return &copied, nil
		}
	}
	return nil, chatrepo.ErrConversationNotFound
}

func (r *fakeConversationRepo) Create(conversation *chatmodels.Conversation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.conversations {
		if existing.PairKey == conversation.PairKey {
			*conversation = *existing
			return nil
		}
	}
	if conversation.ID == "" {
		conversation.ID = uuid.NewString()
	}
	conversation.CreatedAt = time.Now()
	copied := *conversation
	r.store.conversations[conversation.ID] = &copied
	return nil
}

func (r *fakeConversationRepo) FindAllByUser(userID string) ([]chatmodels.Conversation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []chatmodels.Conversation
	for _, conversation := range r.store.conversations {
		if conversation.HasParticipant(userID) {
			out = append(out, *conversation)
		}
	}
	return out, nil
}

func (r *fakeConversationRepo) UpdateLastMessage(conversationID, lastMessage string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	conversation, ok := r.store.conversations[conversationID]
	if !ok {
		return chatrepo.ErrConversationNotFound
	}
	conversation.LastMessage = lastMessage
	return nil
}

// Message repository fake

type fakeMessageRepo struct{ store *memStore }

func (r *fakeMessageRepo) Create(message *chatmodels.Message) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	message.CreatedAt = time.Now()
	copied := *message
	r.store.messages = append(r.store.messages, &copied)
	return nil
}

func (r *fakeMessageRepo) ListByConversation(conversationID string) ([]chatmodels.Message, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []chatmodels.Message
	for _, m := range r.store.messages {
		if m.ConversationID == conversationID {
			out = append(out, *m)
		}
	}
	return out, nil
}
