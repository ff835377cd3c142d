package chat

import "time"

// Message belongs to exactly one conversation. Timestamp is the
// server-observed send time in Unix milliseconds, matching the wire
// format the mobile client already orders by.
type Message struct {
	ID             string    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	ConversationID string    `gorm:"not null;index" json:"conversation_id"`
	SenderID       string    `gorm:"not null" json:"senderId"`
	Content        string    `gorm:"not null" json:"content"`
	Timestamp      int64     `gorm:"not null;index" json:"timestamp"`
	CreatedAt      time.Time `gorm:"default:now()" json:"created_at"`
}
