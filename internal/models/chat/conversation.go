package chat

import (
	"strings"
	"time"
)

// Conversation is a two-party message thread. PairKey is the
// lexicographically ordered "userA|userB" pair, unique per pair, so
// concurrent get-or-create calls converge on a single conversation.
type Conversation struct {
	ID          string    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserA       string    `gorm:"not null;index" json:"user_a"`
	UserB       string    `gorm:"not null;index" json:"user_b"`
	PairKey     string    `gorm:"not null;uniqueIndex" json:"-"`
	LastMessage string    `json:"lastMessage"`
	CreatedAt   time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// OtherParticipant returns the participant that is not userID.
func (c *Conversation) OtherParticipant(userID string) string {
	if c.UserA == userID {
		return c.UserB
	}
	return c.UserA
}

// HasParticipant reports whether userID is one of the two parties.
func (c *Conversation) HasParticipant(userID string) bool {
	return c.UserA == userID || c.UserB == userID
}

// PairKeyFor builds the order-independent lookup key for two user ids.
func PairKeyFor(userA, userB string) string {
	if strings.Compare(userA, userB) > 0 {
		userA, userB = userB, userA
	}
	return userA + "|" + userB
}
