package chat

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	chatmodels "localgigs_backend/internal/models/chat"
)

var ErrConversationNotFound = errors.New("conversation not found")

type ConversationRepository interface {
	FindByID(id string) (*chatmodels.Conversation, error)
	FindByPair(userA, userB string) (*chatmodels.Conversation, error)
	Create(conversation *chatmodels.Conversation) error
	FindAllByUser(userID string) ([]chatmodels.Conversation, error)
	UpdateLastMessage(conversationID, lastMessage string) error
}

type ConversationRepositoryImpl struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &ConversationRepositoryImpl{db: db}
}

func (r *ConversationRepositoryImpl) FindByID(id string) (*chatmodels.Conversation, error) {
	var conversation chatmodels.Conversation
	err := r.db.First(&conversation, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	return &conversation, nil
}

// FindByPair looks up the single conversation for an unordered user pair.
func (r *ConversationRepositoryImpl) FindByPair(userA, userB string) (*chatmodels.Conversation, error) {
	var conversation chatmodels.Conversation
	err := r.db.First(&conversation, "pair_key = ?", chatmodels.PairKeyFor(userA, userB)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	return &conversation, nil
}

// Create inserts the conversation. When a concurrent creator won the
// race on the pair key, the existing row is loaded into conversation
// instead, so callers always end up with the one conversation per pair.
func (r *ConversationRepositoryImpl) Create(conversation *chatmodels.Conversation) error {
	err := r.db.Create(conversation).Error
	if err == nil {
		return nil
	}

	if isUniqueViolation(err) {
		existing, lookupErr := r.FindByPair(conversation.UserA, conversation.UserB)
		if lookupErr != nil {
			return err
		}
		*conversation = *existing
		return nil
	}
	return err
}

func (r *ConversationRepositoryImpl) FindAllByUser(userID string) ([]chatmodels.Conversation, error) {
	var conversations []chatmodels.Conversation
	err := r.db.
		Where("user_a = ? OR user_b = ?", userID, userID).
		Order("updated_at DESC").
		Find(&conversations).Error
	return conversations, err
}

func (r *ConversationRepositoryImpl) UpdateLastMessage(conversationID, lastMessage string) error {
	return r.db.Model(&chatmodels.Conversation{}).
		Where("id = ?", conversationID).
		Update("last_message", lastMessage).Error
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "23505") ||
		strings.Contains(err.Error(), "duplicate key")
}
