package chat

import (
	"gorm.io/gorm"

	chatmodels "localgigs_backend/internal/models/chat"
)

type MessageRepository interface {
	Create(message *chatmodels.Message) error
	ListByConversation(conversationID string) ([]chatmodels.Message, error)
}

type MessageRepositoryImpl struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

func (r *MessageRepositoryImpl) Create(message *chatmodels.Message) error {
	return r.db.Create(message).Error
}

// ListByConversation returns messages ascending by timestamp. CreatedAt
// breaks ties so the order stays stable while new messages stream in.
func (r *MessageRepositoryImpl) ListByConversation(conversationID string) ([]chatmodels.Message, error) {
	var messages []chatmodels.Message
	err := r.db.
		Where("conversation_id = ?", conversationID).
		Order("timestamp ASC, created_at ASC").
		Find(&messages).Error
	return messages, err
}
